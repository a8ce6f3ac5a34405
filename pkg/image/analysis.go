package image

import (
	"fmt"
	"image"
	"math"
	"pxsteg/pkg/model"
)

// Analyze looks at the least significant bit plane of every color channel. Natural images tend to have spatially
// correlated LSBs, while embedded data (especially compressed or encrypted) makes them look like coin flips: a ones
// ratio near 0.5, entropy near 1 and neighbouring bits differing about half of the time
func Analyze(img image.Image) (model.AnalysisResult, error) {
	if img == nil {
		return model.AnalysisResult{}, fmt.Errorf("%w: no image supplied", model.ErrInvalidParameter)
	}
	src := asNRGBA(img)
	result := model.AnalysisResult{Width: src.Rect.Dx(), Height: src.Rect.Dy()}

	var suspicion float64
	channels := newChannelSource(img)
	for c := model.Red; c <= model.Blue; c++ {
		stats := analyzePlane(extractPlane(channels, c, 0))
		stats.Channel = c
		result.Channels = append(result.Channels, stats)
		suspicion += stats.Entropy * (1 - math.Abs(stats.Transitions-0.5)*2)
	}
	result.Suspicion = suspicion / 3

	if header, err := ReadHeader(src); err == nil {
		result.HeaderDetected = true
		result.Header = &header
		result.Suspicion = 1
	}
	return result, nil
}

func analyzePlane(plane *image.Gray) model.ChannelAnalysis {
	var ones, transitions, pairs int
	b := plane.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := plane.Pix[plane.PixOffset(b.Min.X, y):plane.PixOffset(b.Max.X, y)]
		for x, v := range row {
			if v != 0 {
				ones++
			}
			if x > 0 {
				pairs++
				if row[x-1] != v {
					transitions++
				}
			}
		}
	}

	var stats model.ChannelAnalysis
	if total := b.Dx() * b.Dy(); total > 0 {
		stats.OnesRatio = float64(ones) / float64(total)
		stats.Entropy = binaryEntropy(stats.OnesRatio)
	}
	if pairs > 0 {
		stats.Transitions = float64(transitions) / float64(pairs)
	}
	return stats
}

func binaryEntropy(p float64) float64 {
	if p <= 0 || p >= 1 {
		return 0
	}
	return -p*math.Log2(p) - (1-p)*math.Log2(1-p)
}
