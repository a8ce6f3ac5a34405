package image

import (
	"fmt"
	"image"
	"pxsteg/pkg/model"
)

// SafetyMarginBytes is kept free at the end of the usable capacity
const SafetyMarginBytes = 2

// Capacity returns how many bytes of transformed payload fit in a width x height image. The header region is
// subtracted at the payload's own depth and channels, since the payload starts right after it
func Capacity(width, height int, mask model.ChannelMask, bitsPerChannel int) (int, error) {
	if bitsPerChannel < 1 || bitsPerChannel > 8 {
		return 0, fmt.Errorf("%w: bits per channel must be between 1 and 8, got %d", model.ErrInvalidParameter, bitsPerChannel)
	}
	if !mask.Valid() {
		return 0, fmt.Errorf("%w: channel mask must select at least one of R, G, B", model.ErrInvalidParameter)
	}
	if width < 0 || height < 0 {
		return 0, fmt.Errorf("%w: invalid image dimensions %dx%d", model.ErrInvalidParameter, width, height)
	}

	rawBits := width * height * mask.Count() * bitsPerChannel
	reservedBits := HeaderPixels * mask.Count() * bitsPerChannel
	if rawBits <= reservedBits {
		return 0, nil
	}
	return max(0, (rawBits-reservedBits)/8-SafetyMarginBytes), nil
}

func NewCapacityReport(width, height int, mask model.ChannelMask) (model.CapacityReport, error) {
	report := model.CapacityReport{
		Width:    width,
		Height:   height,
		Channels: mask,
		Rows:     make([]model.CapacityRow, 0, 8),
	}
	for bitsPerChannel := 1; bitsPerChannel <= 8; bitsPerChannel++ {
		usable, err := Capacity(width, height, mask, bitsPerChannel)
		if err != nil {
			return model.CapacityReport{}, err
		}
		report.Rows = append(report.Rows, model.CapacityRow{
			BitsPerChannel: bitsPerChannel,
			CapacityBits:   width * height * mask.Count() * bitsPerChannel,
			UsableBytes:    usable,
		})
	}
	return report, nil
}

// NewCapacityReportForDepth is NewCapacityReport with the row for bitsPerChannel also set as the selected answer
func NewCapacityReportForDepth(width, height int, mask model.ChannelMask, bitsPerChannel int) (model.CapacityReport, error) {
	if _, err := Capacity(width, height, mask, bitsPerChannel); err != nil {
		return model.CapacityReport{}, err
	}
	report, err := NewCapacityReport(width, height, mask)
	if err != nil {
		return model.CapacityReport{}, err
	}
	selected := report.Rows[bitsPerChannel-1]
	report.Selected = &selected
	return report, nil
}

func ImageCapacityReport(img image.Image, mask model.ChannelMask) (model.CapacityReport, error) {
	if img == nil {
		return model.CapacityReport{}, fmt.Errorf("%w: no image supplied", model.ErrInvalidParameter)
	}
	return NewCapacityReport(img.Bounds().Dx(), img.Bounds().Dy(), mask)
}
