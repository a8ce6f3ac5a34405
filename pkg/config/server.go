package config

import (
	"os"
)

const (
	DefaultPort            = "8080"
	DefaultMaxRequestBytes = 64 << 20
)

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	// MaxRequestBytes bounds the size of a request body, 0 disables the limit
	MaxRequestBytes int64
	// MaxCoverPixels bounds width*height of any supplied image, 0 disables the limit
	MaxCoverPixels int
	// MaxRevealedBytes bounds the decompressed size of a revealed payload, 0 derives the limit from the image size
	MaxRevealedBytes int
}

// PopulateUnsetConfigVars fills unset values, the port falls back to the PXSTEG_PORT and PORT environment variables
func (c *ServerConfig) PopulateUnsetConfigVars() {
	if c.Port == "" {
		c.Port = os.Getenv("PXSTEG_PORT")
	}
	if c.Port == "" {
		c.Port = os.Getenv("PORT")
	}
	if c.Port == "" {
		c.Port = DefaultPort
	}
	if c.MaxRequestBytes < 0 {
		c.MaxRequestBytes = DefaultMaxRequestBytes
	}
	if c.MaxRevealedBytes < 0 {
		c.MaxRevealedBytes = 0
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
}
