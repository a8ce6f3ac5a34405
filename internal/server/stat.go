package server

import (
	"github.com/dustin/go-humanize"
	"pxsteg/pkg/model"
)

// hideLogStats is what a successful hide request logs, durations are rendered as strings so log lines stay readable
type hideLogStats struct {
	Transform        string `json:"transform"`
	Embedding        string `json:"embedding"`
	OutputEncoding   string `json:"output_encoding"`
	Payload          string `json:"payload"`
	Embedded         string `json:"embedded"`
	CompressionRatio string `json:"compression_ratio,omitempty"`
}

type revealLogStats struct {
	Header    string `json:"header"`
	Payload   string `json:"payload"`
	Transform string `json:"transform"`
	Total     string `json:"total"`
}

func newHideLogStats(stats model.EncodeStats, result model.HideResult) hideLogStats {
	s := hideLogStats{
		Transform:      stats.Transform.String(),
		Embedding:      (stats.HeaderEmbedding + stats.PayloadEmbedding).String(),
		OutputEncoding: stats.OutputImageEncoding.String(),
		Payload:        humanize.Bytes(uint64(result.PayloadSizeBytes)),
		Embedded:       humanize.Bytes(uint64(result.UsedCapacityBits / 8)),
	}
	if result.Compressed {
		s.CompressionRatio = humanize.FtoaWithDigits(result.CompressionRatio, 3)
	}
	return s
}

func newRevealLogStats(stats model.DecodeStats) revealLogStats {
	return revealLogStats{
		Header:    stats.HeaderExtraction.String(),
		Payload:   stats.PayloadExtraction.String(),
		Transform: stats.Transform.String(),
		Total:     (stats.HeaderExtraction + stats.PayloadExtraction + stats.Transform).String(),
	}
}
