package config

import (
	"fmt"
	"image/png"
	"pxsteg/pkg/model"
	"strings"
)

const (
	DefaultBitsPerChannel = 1
	DefaultOutputFormat   = OutputFormatPNG
)

type OutputFormat string

const (
	OutputFormatPNG OutputFormat = "png"
	OutputFormatBMP OutputFormat = "bmp"
)

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return DefaultOutputFormat, nil
	case OutputFormatPNG, OutputFormatBMP:
		return f, nil
	}
	return "", fmt.Errorf("%w: unsupported output format %q, expected png or bmp", model.ErrInvalidParameter, s)
}

// ImageEncodeConfig holds the parameters for hiding a payload. Zero values are replaced with defaults by
// PopulateUnsetConfigVars, except for BitsPerChannel which is only defaulted when zero so out of range values are
// reported by Validate instead of silently corrected
type ImageEncodeConfig struct {
	BitsPerChannel      byte
	Channels            model.ChannelMask
	Compress            bool
	Password            string
	ErrorCorrection     model.ErrorCorrectionLevel
	PngCompressionLevel png.CompressionLevel
	OutputFormat        OutputFormat
}

func (c *ImageEncodeConfig) PopulateUnsetConfigVars() {
	if c.BitsPerChannel == 0 {
		c.BitsPerChannel = DefaultBitsPerChannel
	}
	if c.Channels == 0 {
		c.Channels = model.MaskRGB
	}
	if c.OutputFormat == "" {
		c.OutputFormat = DefaultOutputFormat
	}
}

func (c ImageEncodeConfig) Validate() error {
	if c.BitsPerChannel < 1 || c.BitsPerChannel > 8 {
		return fmt.Errorf("%w: bits per channel must be between 1 and 8, got %d", model.ErrInvalidParameter, c.BitsPerChannel)
	}
	if !c.Channels.Valid() {
		return fmt.Errorf("%w: channel mask must select at least one of R, G, B", model.ErrInvalidParameter)
	}
	if !c.ErrorCorrection.Valid() {
		return fmt.Errorf("%w: unknown error correction level %d", model.ErrInvalidParameter, c.ErrorCorrection)
	}
	if _, err := ParseOutputFormat(string(c.OutputFormat)); err != nil {
		return err
	}
	return nil
}
