package model

import (
	"errors"
	"testing"
)

func TestParseChannelMask(t *testing.T) {
	tests := map[string]ChannelMask{
		"":      MaskRGB,
		"RGB":   MaskRGB,
		"all":   MaskRGB,
		"r":     MaskRed,
		"G":     MaskGreen,
		"B,R":   MaskRed | MaskBlue,
		"gb":    MaskGreen | MaskBlue,
		"R G B": MaskRGB,
	}
	for input, expected := range tests {
		mask, err := ParseChannelMask(input)
		if err != nil {
			t.Errorf("Unexpected error parsing %q: %s", input, err)
			continue
		}
		if mask != expected {
			t.Errorf("Parsing %q gave %s, expected %s", input, mask, expected)
		}
	}

	for _, invalid := range []string{"A", "RGBA", "X", ","} {
		if _, err := ParseChannelMask(invalid); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Expected ErrInvalidParameter parsing %q, got %v", invalid, err)
		}
	}
}

func TestChannelMaskOrder(t *testing.T) {
	channels := (MaskBlue | MaskRed).Channels()
	if len(channels) != 2 || channels[0] != Red || channels[1] != Blue {
		t.Errorf("Expected channels in R, B order, got %v", channels)
	}
	if MaskRGB.String() != "RGB" || MaskRGB.Count() != 3 {
		t.Errorf("Unexpected RGB mask representation %s/%d", MaskRGB, MaskRGB.Count())
	}
	if ChannelMask(0).Valid() || ChannelMask(8).Valid() {
		t.Errorf("Empty mask and alpha bit must not be valid")
	}
}

func TestParseErrorCorrectionLevel(t *testing.T) {
	for level := ErrorCorrectionNone; level <= ErrorCorrectionHigh; level++ {
		parsed, err := ParseErrorCorrectionLevel(level.String())
		if err != nil || parsed != level {
			t.Errorf("Round trip of %s gave %s, %v", level, parsed, err)
		}
	}
	if _, err := ParseErrorCorrectionLevel("extreme"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter, got %v", err)
	}
}
