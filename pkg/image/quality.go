package image

import (
	"image"
	"math"
)

// MaxPSNR is reported instead of +Inf when two images are identical
const MaxPSNR = 100.0

// MSE is the mean squared error over the R, G and B channels of two images with the same bounds
func MSE(a, b *image.NRGBA) float64 {
	bounds := a.Rect
	if bounds != b.Rect || bounds.Empty() {
		return 0
	}

	var sum float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			offsetA, offsetB := a.PixOffset(x, y), b.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				diff := float64(a.Pix[offsetA+c]) - float64(b.Pix[offsetB+c])
				sum += diff * diff
			}
		}
	}
	return sum / float64(bounds.Dx()*bounds.Dy()*3)
}

// PSNR in dB for 8 bit channels, capped at MaxPSNR
func PSNR(mse float64) float64 {
	if mse == 0 {
		return MaxPSNR
	}
	return min(MaxPSNR, 10*math.Log10(255*255/mse))
}
