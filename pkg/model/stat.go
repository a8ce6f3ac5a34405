package model

import (
	"time"
)

// EncodeStats times each stage of a hide operation. OutputImageEncoding is only set once the stego image is written
type EncodeStats struct {
	Transform           time.Duration `json:"transform"`
	HeaderEmbedding     time.Duration `json:"header_embedding"`
	PayloadEmbedding    time.Duration `json:"payload_embedding"`
	OutputImageEncoding time.Duration `json:"output_image_encoding"`
}

// DecodeStats times each stage of a reveal operation
type DecodeStats struct {
	HeaderExtraction  time.Duration `json:"header_extraction"`
	PayloadExtraction time.Duration `json:"payload_extraction"`
	Transform         time.Duration `json:"transform"`
}
