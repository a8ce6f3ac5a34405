package config

import (
	"errors"
	"pxsteg/pkg/model"
	"testing"
)

func TestPopulateUnsetConfigVars(t *testing.T) {
	c := ImageEncodeConfig{}
	c.PopulateUnsetConfigVars()
	if c.BitsPerChannel != DefaultBitsPerChannel || c.Channels != model.MaskRGB || c.OutputFormat != OutputFormatPNG {
		t.Errorf("Unexpected defaults %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Defaults should be valid: %s", err)
	}
}

func TestValidate(t *testing.T) {
	invalid := []ImageEncodeConfig{
		{BitsPerChannel: 9, Channels: model.MaskRGB, OutputFormat: OutputFormatPNG},
		{BitsPerChannel: 1, Channels: 8, OutputFormat: OutputFormatPNG},
		{BitsPerChannel: 1, Channels: model.MaskRGB, ErrorCorrection: 7, OutputFormat: OutputFormatPNG},
		{BitsPerChannel: 1, Channels: model.MaskRGB, OutputFormat: "jpeg"},
	}
	for i, c := range invalid {
		if err := c.Validate(); !errors.Is(err, model.ErrInvalidParameter) {
			t.Errorf("Config %d: expected ErrInvalidParameter, got %v", i, err)
		}
	}
}

func TestServerConfigPortFallback(t *testing.T) {
	t.Setenv("PXSTEG_PORT", "")
	t.Setenv("PORT", "9999")
	c := ServerConfig{}
	c.PopulateUnsetConfigVars()
	if c.Port != "9999" {
		t.Errorf("Expected port from PORT env var, got %s", c.Port)
	}
	if len(c.AllowedOrigins) != 1 || c.AllowedOrigins[0] != "*" {
		t.Errorf("Expected wildcard origins, got %v", c.AllowedOrigins)
	}
}

func TestServerConfigLimits(t *testing.T) {
	c := ServerConfig{Port: "8080", MaxRequestBytes: -1, MaxRevealedBytes: -5}
	c.PopulateUnsetConfigVars()
	if c.MaxRequestBytes != DefaultMaxRequestBytes {
		t.Errorf("Expected default request limit, got %d", c.MaxRequestBytes)
	}
	if c.MaxRevealedBytes != 0 {
		t.Errorf("Expected a negative revealed limit to fall back to the image derived one, got %d", c.MaxRevealedBytes)
	}
}
