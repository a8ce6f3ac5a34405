package transform

import (
	"bytes"
	"errors"
	"fmt"
	"pxsteg/pkg/model"
	"pxsteg/test"
	"strings"
	"testing"
)

var allErrorCorrectionLevels = []model.ErrorCorrectionLevel{
	model.ErrorCorrectionNone, model.ErrorCorrectionLow, model.ErrorCorrectionMedium, model.ErrorCorrectionHigh,
}

func TestApplyInvertAllCombinations(t *testing.T) {
	payloads := map[string][]byte{
		"empty":        {},
		"short":        []byte("HELLO"),
		"compressible": []byte(strings.Repeat("steganography ", 200)),
		"random":       test.GenerateRandomBytes(1000),
	}

	for name, payload := range payloads {
		for _, compress := range []bool{false, true} {
			for _, password := range []string{"", "pw123"} {
				for _, level := range allErrorCorrectionLevels {
					name, payload, compress, password, level := name, payload, compress, password, level
					t.Run(fmt.Sprintf("%s/compress=%t/password=%t/ecc=%s", name, compress, password != "", level), func(t *testing.T) {
						t.Parallel()
						res, err := Apply(payload, Options{Compress: compress, Password: password, ErrorCorrection: level})
						if err != nil {
							t.Fatalf("Error applying transforms: %s", err)
						}
						if res.Flags.Encrypted != (password != "") || res.Flags.ErrorCorrection != level {
							t.Errorf("Unexpected flags %+v", res.Flags)
						}
						if res.Flags.Compressed && !compress {
							t.Errorf("Payload compressed without being asked to")
						}

						out, err := Invert(res.Payload, res.Flags, password, 0)
						if err != nil {
							t.Fatalf("Error inverting transforms: %s", err)
						}
						if !bytes.Equal(out, payload) {
							t.Errorf("Inverted payload does not match the original")
						}
					})
				}
			}
		}
	}
}

func TestCompressionOnlyKeptWhenSmaller(t *testing.T) {
	random := test.GenerateRandomBytes(512)
	out, applied, err := Compress(random)
	if err != nil {
		t.Fatal(err)
	}
	if applied || !bytes.Equal(out, random) {
		t.Errorf("Random data should not be reported as compressed")
	}

	text := []byte(strings.Repeat("a", 4096))
	res, err := Apply(text, Options{Compress: true})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Flags.Compressed || len(res.Payload) >= len(text) || res.CompressionRatio <= 1 {
		t.Errorf("Expected compression to shrink repetitive data, got %d bytes, ratio %f", len(res.Payload), res.CompressionRatio)
	}
}

func TestDecryptWrongPassword(t *testing.T) {
	encrypted, err := Encrypt([]byte("HELLO"), "pw123")
	if err != nil {
		t.Fatal(err)
	}
	if len(encrypted) != len("HELLO")+EncryptionOverhead {
		t.Errorf("Expected %d encrypted bytes, got %d", len("HELLO")+EncryptionOverhead, len(encrypted))
	}
	if _, err = Decrypt(encrypted, "wrong"); !errors.Is(err, model.ErrDecryption) {
		t.Errorf("Expected ErrDecryption with a wrong password, got %v", err)
	}
	if _, err = Decrypt(encrypted, ""); !errors.Is(err, model.ErrDecryption) {
		t.Errorf("Expected ErrDecryption without a password, got %v", err)
	}
	if _, err = Decrypt(encrypted[:EncryptionOverhead-1], "pw123"); !errors.Is(err, model.ErrCorruptPayload) {
		t.Errorf("Expected ErrCorruptPayload for a truncated envelope, got %v", err)
	}
}

func TestEncryptionIsRandomized(t *testing.T) {
	a, err := Encrypt([]byte("HELLO"), "pw123")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Encrypt([]byte("HELLO"), "pw123")
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a, b) {
		t.Errorf("Two encryptions of the same payload must use fresh salt and nonce")
	}
}

func TestDecompressGarbage(t *testing.T) {
	if _, err := Decompress([]byte("definitely not zstd"), 0); !errors.Is(err, model.ErrCorruptPayload) {
		t.Errorf("Expected ErrCorruptPayload, got %v", err)
	}
}

func TestDecompressLimit(t *testing.T) {
	zeros := make([]byte, 4<<20)
	compressed, applied, err := Compress(zeros)
	if err != nil || !applied {
		t.Fatalf("Expected zeros to compress, applied=%t err=%v", applied, err)
	}

	testCases := []struct {
		maxSize     int
		expectedErr error
	}{
		{1 << 20, model.ErrCorruptPayload},
		{len(zeros) - 1, model.ErrCorruptPayload},
		{len(zeros), nil},
		{0, nil},
	}
	for _, tc := range testCases {
		out, err := Decompress(compressed, tc.maxSize)
		if !errors.Is(err, tc.expectedErr) {
			t.Errorf("maxSize=%d: expected %v, got %v", tc.maxSize, tc.expectedErr, err)
			continue
		}
		if err == nil && len(out) != len(zeros) {
			t.Errorf("maxSize=%d: expected %d bytes, got %d", tc.maxSize, len(zeros), len(out))
		}
	}

	if _, err := Invert(compressed, model.Flags{Compressed: true}, "", 1<<20); !errors.Is(err, model.ErrCorruptPayload) {
		t.Errorf("Expected Invert to enforce the limit, got %v", err)
	}
}
