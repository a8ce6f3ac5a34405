package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"pxsteg/pkg/config"
	"pxsteg/pkg/model"
	"pxsteg/pkg/transform"
	"pxsteg/test"
	"strings"
	"testing"
)

var testText = strings.Repeat("pixels keep secrets ", 10)

var allErrorCorrectionLevels = []model.ErrorCorrectionLevel{
	model.ErrorCorrectionNone,
	model.ErrorCorrectionLow,
	model.ErrorCorrectionMedium,
	model.ErrorCorrectionHigh,
}

func TestHideRevealText(t *testing.T) {
	runImageTestsWithAllDepthsAndAlphaSettings(t, func(t *testing.T, bitsPerChannel byte, randomizeAlpha bool) {
		img := generateImage(testImageSize, testImageSize, randomizeAlpha)
		original := copyPix(img)

		for _, mask := range testChannelMasks {
			for _, compress := range []bool{false, true} {
				for _, level := range allErrorCorrectionLevels {
					// key derivation is slow, so only the heaviest pipeline is run with a password
					var password string
					if compress && level == model.ErrorCorrectionHigh {
						password = "correct horse battery staple"
					}
					label := fmt.Sprintf("mask=%s,compress=%t,ecc=%s,encrypted=%t", mask, compress, level, password != "")

					iConfig := config.ImageEncodeConfig{
						BitsPerChannel:  bitsPerChannel,
						Channels:        mask,
						Compress:        compress,
						Password:        password,
						ErrorCorrection: level,
					}
					encoder, err := NewImageEncoder(img, iConfig)
					if err != nil {
						t.Fatalf("%s: error creating image encoder: %s", label, err)
					}
					result, err := encoder.HideText(testText)
					if err != nil {
						t.Fatalf("%s: error hiding text: %s", label, err)
					}
					if !bytes.Equal(img.Pix, original) {
						t.Fatalf("%s: source image was modified", label)
					}
					if result.Compressed != compress || result.Encrypted != (password != "") || result.ErrorCorrection != level {
						t.Fatalf("%s: unexpected result %+v", label, result)
					}
					if result.UsedCapacityBits != (HeaderSize+result.PayloadSizeBytes)*8 {
						t.Fatalf("%s: used capacity of %d bits does not match payload of %d bytes", label, result.UsedCapacityBits,
							result.PayloadSizeBytes)
					}

					payloadPixels := copyPix(encoder.Image())
					// the header touches bit 0 of every channel, the payload only the masked ones
					assertOnlyLowBitsChanged(t, original, encoder.Image(), model.MaskRGB, bitsPerChannel)

					decoder, err := NewImageDecoder(encoder.Image())
					if err != nil {
						t.Fatalf("%s: error creating image decoder: %s", label, err)
					}
					h := decoder.Header()
					if h.BitsPerChannel != bitsPerChannel || h.Channels != mask || h.Flags.File {
						t.Fatalf("%s: unexpected header %+v", label, h)
					}
					revealed, err := decoder.RevealText(password)
					if err != nil {
						t.Fatalf("%s: error revealing text: %s", label, err)
					}
					if revealed != testText {
						t.Fatalf("%s: revealed text does not match", label)
					}
					if !bytes.Equal(payloadPixels, encoder.Image().Pix) {
						t.Fatalf("%s: revealing modified the image", label)
					}
				}
			}
		}
	})
}

func TestHideRevealFile(t *testing.T) {
	runImageTestsWithAllDepthsAndAlphaSettings(t, func(t *testing.T, bitsPerChannel byte, randomizeAlpha bool) {
		img := generateImage(testImageSize, testImageSize, randomizeAlpha)
		content := test.GenerateRandomBytes(int(bitsPerChannel) * 100)

		encoder, err := NewImageEncoder(img, config.ImageEncodeConfig{BitsPerChannel: bitsPerChannel})
		if err != nil {
			t.Fatal(err)
		}
		if _, err = encoder.HideFile("../../etc/report.pdf", content); err != nil {
			t.Fatalf("Error hiding file: %s", err)
		}

		decoder, err := NewImageDecoder(encoder.Image())
		if err != nil {
			t.Fatal(err)
		}
		if _, err = decoder.RevealText(""); !errors.Is(err, model.ErrInvalidParameter) {
			t.Errorf("Expected revealing a file as text to fail with ErrInvalidParameter, got %v", err)
		}
		file, err := decoder.RevealFile("")
		if err != nil {
			t.Fatalf("Error revealing file: %s", err)
		}
		if file.Name != "report.pdf" {
			t.Errorf("Expected the file name to be reduced to report.pdf, got %q", file.Name)
		}
		if !bytes.Equal(file.Content, content) {
			t.Errorf("Revealed file content does not match")
		}
	})
}

func TestHideFileWithoutName(t *testing.T) {
	encoder, err := NewImageEncoder(generateImage(64, 64, false), config.ImageEncodeConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err = encoder.HideFile("", []byte("anonymous")); err != nil {
		t.Fatal(err)
	}
	decoder, err := NewImageDecoder(encoder.Image())
	if err != nil {
		t.Fatal(err)
	}
	file, err := decoder.RevealFile("")
	if err != nil {
		t.Fatal(err)
	}
	if file.Name != DefaultRecoveredFileName || string(file.Content) != "anonymous" {
		t.Errorf("Unexpected file %q with content %q", file.Name, file.Content)
	}
	if _, err = decoder.RevealText(""); !errors.Is(err, model.ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter, got %v", err)
	}
}

func TestHideRevealHello(t *testing.T) {
	img := generateImage(100, 100, false)

	testCases := []struct {
		name           string
		password       string
		revealPassword string
		expectedErr    error
	}{
		{"plain", "", "", nil},
		{"plain with unneeded password", "", "ignored", nil},
		{"encrypted", "pw", "pw", nil},
		{"wrong password", "pw", "wrong", model.ErrDecryption},
		{"missing password", "pw", "", model.ErrDecryption},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			encoder, err := NewImageEncoder(img, config.ImageEncodeConfig{BitsPerChannel: 1, Password: tc.password})
			if err != nil {
				t.Fatal(err)
			}
			result, err := encoder.HideText("HELLO")
			if err != nil {
				t.Fatal(err)
			}
			expectedPayload := 5
			if tc.password != "" {
				expectedPayload += 44
			}
			if result.PayloadSizeBytes != expectedPayload {
				t.Errorf("Expected a payload of %d bytes, got %d", expectedPayload, result.PayloadSizeBytes)
			}

			decoder, err := NewImageDecoder(encoder.Image())
			if err != nil {
				t.Fatal(err)
			}
			text, err := decoder.RevealText(tc.revealPassword)
			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("Expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if text != "HELLO" {
				t.Errorf("Expected HELLO, got %q", text)
			}
		})
	}
}

func TestHideEmptyText(t *testing.T) {
	encoder, err := NewImageEncoder(generateImage(10, 10, false), config.ImageEncodeConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err = encoder.HideText(""); err != nil {
		t.Fatal(err)
	}
	decoder, err := NewImageDecoder(encoder.Image())
	if err != nil {
		t.Fatal(err)
	}
	text, err := decoder.RevealText("")
	if err != nil || text != "" {
		t.Errorf("Expected empty text, got %q and %v", text, err)
	}
}

func TestHideCapacityExceeded(t *testing.T) {
	testCases := []struct {
		name    string
		img     *image.NRGBA
		payload []byte
	}{
		{"payload larger than capacity", generateImage(20, 20, false), test.GenerateRandomBytes(131)},
		{"image smaller than header", generateImage(5, 5, false), nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			original := copyPix(tc.img)
			encoder, err := NewImageEncoder(tc.img, config.ImageEncodeConfig{})
			if err != nil {
				t.Fatal(err)
			}
			if _, err = encoder.Encode(tc.payload); !errors.Is(err, model.ErrCapacityExceeded) {
				t.Fatalf("Expected ErrCapacityExceeded, got %v", err)
			}
			if encoder.Image() != nil {
				t.Errorf("Expected no encoded image after a failed encode")
			}
			if !bytes.Equal(tc.img.Pix, original) {
				t.Errorf("Source image was modified")
			}
			if err = encoder.WriteEncodedImage(&bytes.Buffer{}); !errors.Is(err, ErrNothingEncoded) {
				t.Errorf("Expected ErrNothingEncoded, got %v", err)
			}
		})
	}

	// exactly at capacity still fits
	encoder, err := NewImageEncoder(generateImage(20, 20, false), config.ImageEncodeConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err = encoder.Encode(test.GenerateRandomBytes(130)); err != nil {
		t.Errorf("Expected a payload of exactly the usable capacity to fit, got %s", err)
	}
}

func TestNewImageEncoderInvalidConfig(t *testing.T) {
	img := generateImage(10, 10, false)
	for _, iConfig := range []config.ImageEncodeConfig{
		{BitsPerChannel: 9},
		{Channels: 8},
		{ErrorCorrection: 4},
		{OutputFormat: "jpeg"},
	} {
		if _, err := NewImageEncoder(img, iConfig); !errors.Is(err, model.ErrInvalidParameter) {
			t.Errorf("Expected ErrInvalidParameter for %+v, got %v", iConfig, err)
		}
	}
	if _, err := NewImageEncoder(nil, config.ImageEncodeConfig{}); !errors.Is(err, model.ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter for a nil image, got %v", err)
	}
}

func TestRevealWithoutHiddenData(t *testing.T) {
	if _, err := NewImageDecoder(image.NewNRGBA(image.Rect(0, 0, 100, 100))); !errors.Is(err, model.ErrNoHiddenData) {
		t.Errorf("Expected ErrNoHiddenData, got %v", err)
	}
}

// corruptPayloadByte inverts one embedded payload byte. At 8 bits per channel over RGB every payload byte occupies
// exactly one channel
func corruptPayloadByte(img *image.NRGBA, index int) {
	img.Pix[pixelOffset(img, HeaderPixels+index/3)+index%3] ^= 0xFF
}

func TestRevealCorruptedPayload(t *testing.T) {
	encoder, err := NewImageEncoder(generateImage(64, 64, false), config.ImageEncodeConfig{BitsPerChannel: 8})
	if err != nil {
		t.Fatal(err)
	}
	if _, err = encoder.HideText(testText); err != nil {
		t.Fatal(err)
	}
	corruptPayloadByte(encoder.Image(), 20)

	decoder, err := NewImageDecoder(encoder.Image())
	if err != nil {
		t.Fatal(err)
	}
	if _, err = decoder.RevealText(""); !errors.Is(err, model.ErrCorruptPayload) {
		t.Errorf("Expected ErrCorruptPayload, got %v", err)
	}
}

func TestRevealRepairsWithErrorCorrection(t *testing.T) {
	encoder, err := NewImageEncoder(generateImage(64, 64, false), config.ImageEncodeConfig{
		BitsPerChannel:  8,
		ErrorCorrection: model.ErrorCorrectionLow,
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err = encoder.HideText(testText); err != nil {
		t.Fatal(err)
	}
	// past the three length copies, inside the first shard
	corruptPayloadByte(encoder.Image(), 14)

	decoder, err := NewImageDecoder(encoder.Image())
	if err != nil {
		t.Fatal(err)
	}
	text, err := decoder.RevealText("")
	if err != nil {
		t.Fatalf("Expected the damage to be repaired, got %s", err)
	}
	if text != testText {
		t.Errorf("Repaired text does not match")
	}
	if !decoder.ChecksumRepaired() {
		t.Errorf("Expected the checksum mismatch to be reported as repaired")
	}
}

func TestRevealDamageBeyondErrorCorrection(t *testing.T) {
	encoder, err := NewImageEncoder(generateImage(64, 64, false), config.ImageEncodeConfig{
		BitsPerChannel:  8,
		ErrorCorrection: model.ErrorCorrectionLow,
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err = encoder.HideText(testText); err != nil {
		t.Fatal(err)
	}
	decoder, err := NewImageDecoder(encoder.Image())
	if err != nil {
		t.Fatal(err)
	}
	// every shard damaged, far more than two parity shards can repair
	for i := 14; i < int(decoder.Header().PayloadLength); i++ {
		corruptPayloadByte(encoder.Image(), i)
	}

	if _, err = decoder.RevealText(""); !errors.Is(err, model.ErrCorruptPayload) {
		t.Errorf("Expected ErrCorruptPayload, got %v", err)
	}
}

func TestRevealLengthBeyondImage(t *testing.T) {
	img := generateImage(64, 64, false)
	h := model.Header{Version: HeaderVersion, BitsPerChannel: 1, Channels: model.MaskRGB, PayloadLength: 1 << 20}
	if err := WriteHeader(img, h); err != nil {
		t.Fatal(err)
	}
	decoder, err := NewImageDecoder(img)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = decoder.Reveal(""); !errors.Is(err, model.ErrCorruptPayload) {
		t.Errorf("Expected ErrCorruptPayload, got %v", err)
	}
}

func TestHideRevealThroughImageFiles(t *testing.T) {
	testCases := []struct {
		format         config.OutputFormat
		randomizeAlpha bool
	}{
		{config.OutputFormatPNG, false},
		{config.OutputFormatPNG, true},
		{config.OutputFormatBMP, false},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(fmt.Sprintf("%s-%s", tc.format, getAlphaLabel(tc.randomizeAlpha)), func(t *testing.T) {
			t.Parallel()
			encoder, err := NewImageEncoder(generateImage(testImageSize, testImageSize, tc.randomizeAlpha), config.ImageEncodeConfig{
				BitsPerChannel:  2,
				Compress:        true,
				ErrorCorrection: model.ErrorCorrectionMedium,
				OutputFormat:    tc.format,
			})
			if err != nil {
				t.Fatal(err)
			}
			if _, err = encoder.HideText(testText); err != nil {
				t.Fatal(err)
			}

			var buf bytes.Buffer
			if err = encoder.WriteEncodedImage(&buf); err != nil {
				t.Fatalf("Error writing %s: %s", tc.format, err)
			}
			decoded, format, err := DecodeImage(&buf)
			if err != nil {
				t.Fatalf("Error decoding %s: %s", tc.format, err)
			}
			if format != string(tc.format) {
				t.Errorf("Expected format %s, got %s", tc.format, format)
			}

			decoder, err := NewImageDecoder(decoded)
			if err != nil {
				t.Fatal(err)
			}
			text, err := decoder.RevealText("")
			if err != nil {
				t.Fatal(err)
			}
			if text != testText {
				t.Errorf("Revealed text does not match after a %s round trip", tc.format)
			}
		})
	}
}

func TestRevealDecompressionLimit(t *testing.T) {
	// a few hundred compressed bytes expanding to 8 MiB, far more than a 64x64 carrier should ever reveal
	zeros := make([]byte, 8<<20)
	encoder, err := NewImageEncoder(generateImage(64, 64, false), config.ImageEncodeConfig{BitsPerChannel: 8, Compress: true})
	if err != nil {
		t.Fatal(err)
	}
	if _, err = encoder.Encode(zeros); err != nil {
		t.Fatalf("Error hiding compressible payload: %s", err)
	}

	decoder, err := NewImageDecoder(encoder.Image())
	if err != nil {
		t.Fatal(err)
	}
	if decoder.MaxRevealedBytes() != MinRevealLimit {
		t.Errorf("Expected default limit %d for a 64x64 image, got %d", MinRevealLimit, decoder.MaxRevealedBytes())
	}
	if _, err = decoder.RevealText(""); !errors.Is(err, model.ErrCorruptPayload) {
		t.Fatalf("Expected ErrCorruptPayload, got %v", err)
	}

	decoder.SetMaxRevealedBytes(len(zeros))
	text, err := decoder.RevealText("")
	if err != nil {
		t.Fatalf("Error revealing within a raised limit: %s", err)
	}
	if len(text) != len(zeros) {
		t.Errorf("Expected %d revealed bytes, got %d", len(zeros), len(text))
	}

	decoder.SetMaxRevealedBytes(0)
	if decoder.MaxRevealedBytes() != MinRevealLimit {
		t.Errorf("Expected a non positive limit to restore the default, got %d", decoder.MaxRevealedBytes())
	}
}

func TestDefaultRevealLimitScalesWithImage(t *testing.T) {
	testCases := []struct {
		bounds   image.Rectangle
		expected int
	}{
		{image.Rect(0, 0, 10, 10), MinRevealLimit},
		{image.Rect(0, 0, 1000, 1000), 1000 * 1000 * RevealedBytesPerPixel},
		{image.Rect(0, 0, 100_000, 100_000), transform.MaxDecodedSize},
	}
	for _, tc := range testCases {
		if limit := defaultMaxRevealedBytes(tc.bounds); limit != tc.expected {
			t.Errorf("%v: expected %d, got %d", tc.bounds, tc.expected, limit)
		}
	}
}
