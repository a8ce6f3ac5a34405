package cli

import (
	"fmt"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"image/png"
	"os"
	"path/filepath"
	"pxsteg/pkg/config"
	"strings"
	"time"
)

var (
	pngCompressionMapping = map[string]png.CompressionLevel{
		"default": png.DefaultCompression,
		"none":    png.NoCompression,
		"fast":    png.BestSpeed,
		"best":    png.BestCompression,
	}
)

func MarkFlagsRequired(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			panic(err)
		}
	}
}

// NewSpinner writes to stderr so that revealed text printed on stdout can be piped
func NewSpinner() *spinner.Spinner {
	return spinner.New(spinner.CharSets[4], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
}

func parsePngCompression(name string) (png.CompressionLevel, error) {
	level, found := pngCompressionMapping[strings.ToLower(name)]
	if !found {
		return 0, fmt.Errorf("unknown png compression %q, options are default, none, fast, best", name)
	}
	return level, nil
}

// outputFormatFor picks the output format from the flag, or from the extension of the output path when unset
func outputFormatFor(formatFlag, outputPath string) (config.OutputFormat, error) {
	if formatFlag == "" {
		formatFlag = strings.TrimPrefix(filepath.Ext(outputPath), ".")
	}
	return config.ParseOutputFormat(formatFlag)
}
