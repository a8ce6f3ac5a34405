package test

import (
	"image"
	"image/color"
	"math/rand"
)

func GenerateRandomBytes(numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	_, err := rand.Read(generatedBytes)
	if err != nil {
		panic(err)
	}
	return generatedBytes
}

// GenerateImage returns an image filled with random colors. When randomizeAlpha is set, roughly a quarter of the
// pixels get a random alpha value instead of being fully opaque
func GenerateImage(width, height int, randomizeAlpha bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			alpha := uint8(255)
			if randomizeAlpha && rand.Intn(4) == 0 {
				alpha = randUint8()
			}
			img.SetNRGBA(x, y, color.NRGBA{R: randUint8(), G: randUint8(), B: randUint8(), A: alpha})
		}
	}
	return img
}

func randUint8() uint8 {
	return uint8(rand.Intn(256))
}
