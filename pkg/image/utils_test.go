package image

import (
	"bytes"
	"fmt"
	"image"
	"pxsteg/pkg/model"
	"pxsteg/test"
	"testing"
)

const testImageSize = 96

var testChannelMasks = []model.ChannelMask{
	model.MaskRed,
	model.MaskGreen | model.MaskBlue,
	model.MaskRGB,
}

type testFunc func(t *testing.T, bitsPerChannel byte, randomizeAlpha bool)

func runImageTestsWithAllDepthsAndAlphaSettings(t *testing.T, testFunc testFunc) {
	for bitsPerChannel := byte(1); bitsPerChannel <= 8; bitsPerChannel++ {
		bitsPerChannelCopy := bitsPerChannel
		t.Run(fmt.Sprintf("BitsPerChannel-%d", bitsPerChannel), func(t *testing.T) {
			t.Parallel()
			t.Run("opaque", func(t *testing.T) {
				t.Parallel()
				testFunc(t, bitsPerChannelCopy, false)
			})
			t.Run("translucent", func(t *testing.T) {
				t.Parallel()
				testFunc(t, bitsPerChannelCopy, true)
			})
		})
	}
}

func getAlphaLabel(randomizeAlpha bool) string {
	if randomizeAlpha {
		return "translucent"
	}
	return "opaque"
}

func generateImage(width, height int, randomizeAlpha bool) *image.NRGBA {
	return test.GenerateImage(width, height, randomizeAlpha)
}

// copyPix returns a snapshot of the pixel buffer, to check later that an image was left untouched
func copyPix(img *image.NRGBA) []byte {
	return bytes.Clone(img.Pix)
}

// assertOnlyLowBitsChanged fails if any channel outside mask, or any bit above bitsPerChannel, differs between the
// two images
func assertOnlyLowBitsChanged(t *testing.T, original []byte, modified *image.NRGBA, mask model.ChannelMask, bitsPerChannel byte) {
	t.Helper()
	for i := range original {
		diff := original[i] ^ modified.Pix[i]
		switch c := i % 4; {
		case c == 3 && diff != 0:
			t.Fatalf("Alpha of pixel %d changed from %d to %d", i/4, original[i], modified.Pix[i])
		case c < 3 && !mask.Has(model.Channel(c)) && diff != 0:
			t.Fatalf("Channel %s of pixel %d is not in mask %s but changed", model.Channel(c), i/4, mask)
		case c < 3 && diff>>bitsPerChannel != 0:
			t.Fatalf("Bits above the lowest %d changed in pixel %d: %08b -> %08b", bitsPerChannel, i/4, original[i], modified.Pix[i])
		}
	}
}
