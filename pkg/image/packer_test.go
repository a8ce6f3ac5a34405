package image

import (
	"bytes"
	"errors"
	"image"
	"pxsteg/pkg/model"
	"pxsteg/test"
	"testing"
)

func TestPackUnpack(t *testing.T) {
	runImageTestsWithAllDepthsAndAlphaSettings(t, func(t *testing.T, bitsPerChannel byte, randomizeAlpha bool) {
		for _, mask := range testChannelMasks {
			img := generateImage(64, 64, randomizeAlpha)
			original := copyPix(img)
			data := test.GenerateRandomBytes(AvailableBits(img, mask, bitsPerChannel, 10) / 8)

			if err := Pack(img, data, mask, bitsPerChannel, 10); err != nil {
				t.Fatalf("Error packing with mask %s: %s", mask, err)
			}
			assertOnlyLowBitsChanged(t, original, img, mask, bitsPerChannel)
			if !bytes.Equal(img.Pix[:10*4], original[:10*4]) {
				t.Fatalf("Pixels before the start pixel were modified")
			}

			unpacked, err := Unpack(img, mask, bitsPerChannel, 10, len(data))
			if err != nil {
				t.Fatalf("Error unpacking with mask %s: %s", mask, err)
			}
			if !bytes.Equal(unpacked, data) {
				t.Fatalf("Unpacked data does not match packed data with mask %s", mask)
			}
		}
	})
}

func TestPackBitOrder(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	if err := Pack(img, []byte{0b10110100}, model.MaskRGB, 1, 0); err != nil {
		t.Fatal(err)
	}

	// bits are consumed least significant first: 0 0 1 0 1 1 0 1
	expected := []byte{
		0, 0, 1, 0,
		0, 1, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 0,
	}
	if !bytes.Equal(img.Pix, expected) {
		t.Errorf("Expected %v, got %v", expected, img.Pix)
	}
}

func TestPackPartialChunkKeepsRemainingBits(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}

	// 8 bits at 3 bits per channel are split 3, 3, 2, so bit 2 of blue must survive
	if err := Pack(img, []byte{0}, model.MaskRGB, 3, 0); err != nil {
		t.Fatal(err)
	}
	expected := []byte{0xF8, 0xF8, 0xFC, 0xFF}
	if !bytes.Equal(img.Pix, expected) {
		t.Errorf("Expected %08b, got %08b", expected, img.Pix)
	}
}

func TestPackCapacityExceeded(t *testing.T) {
	img := generateImage(16, 16, false)
	original := copyPix(img)
	data := test.GenerateRandomBytes(AvailableBits(img, model.MaskRGB, 2, 0)/8 + 1)

	err := Pack(img, data, model.MaskRGB, 2, 0)
	if !errors.Is(err, model.ErrCapacityExceeded) {
		t.Fatalf("Expected ErrCapacityExceeded, got %v", err)
	}
	if !bytes.Equal(img.Pix, original) {
		t.Errorf("Image was modified by a pack that did not fit")
	}

	if _, err = Unpack(img, model.MaskRGB, 2, 0, len(data)); !errors.Is(err, model.ErrCapacityExceeded) {
		t.Errorf("Expected ErrCapacityExceeded when unpacking, got %v", err)
	}
}

func TestPackInvalidParameters(t *testing.T) {
	img := generateImage(8, 8, false)
	testCases := []struct {
		name           string
		mask           model.ChannelMask
		bitsPerChannel byte
		startPixel     int
	}{
		{"zero depth", model.MaskRGB, 0, 0},
		{"depth above 8", model.MaskRGB, 9, 0},
		{"empty mask", 0, 1, 0},
		{"alpha bit in mask", model.MaskRGB | 8, 1, 0},
		{"negative start pixel", model.MaskRGB, 1, -1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := Pack(img, []byte{1}, tc.mask, tc.bitsPerChannel, tc.startPixel); !errors.Is(err, model.ErrInvalidParameter) {
				t.Errorf("Expected ErrInvalidParameter from Pack, got %v", err)
			}
			if _, err := Unpack(img, tc.mask, tc.bitsPerChannel, tc.startPixel, 1); !errors.Is(err, model.ErrInvalidParameter) {
				t.Errorf("Expected ErrInvalidParameter from Unpack, got %v", err)
			}
		})
	}
}

func TestPackSubImage(t *testing.T) {
	parent := generateImage(32, 32, false)
	sub := parent.SubImage(image.Rect(8, 8, 24, 24)).(*image.NRGBA)
	data := test.GenerateRandomBytes(64)

	if err := Pack(sub, data, model.MaskRGB, 2, 0); err != nil {
		t.Fatal(err)
	}
	unpacked, err := Unpack(sub, model.MaskRGB, 2, 0, len(data))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(unpacked, data) {
		t.Errorf("Unpacked data does not match when working on a sub image")
	}
}
