package model

type CapacityRow struct {
	BitsPerChannel int `json:"bits_per_channel"`
	CapacityBits   int `json:"capacity_bits"`
	UsableBytes    int `json:"usable_bytes"`
}

// CapacityReport holds the usable capacity of an image for every bit depth with a fixed channel selection
type CapacityReport struct {
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Channels ChannelMask   `json:"channels"`
	Rows     []CapacityRow `json:"rows"`
	// Selected is the row for the depth a caller asked about, if any
	Selected *CapacityRow `json:"selected,omitempty"`
}

// UsableBytes returns the usable capacity at the given depth, or 0 if the depth is not part of the report
func (r CapacityReport) UsableBytes(bitsPerChannel int) int {
	for _, row := range r.Rows {
		if row.BitsPerChannel == bitsPerChannel {
			return row.UsableBytes
		}
	}
	return 0
}

type HideResult struct {
	UsedCapacityBits int                  `json:"used_capacity_bits"`
	PayloadSizeBytes int                  `json:"payload_size_bytes"`
	OverheadBytes    int                  `json:"overhead_bytes"`
	Encrypted        bool                 `json:"encrypted"`
	Encryption       string               `json:"encryption,omitempty"`
	KDF              string               `json:"kdf,omitempty"`
	Compressed       bool                 `json:"compressed"`
	Compression      string               `json:"compression,omitempty"`
	CompressionRatio float64              `json:"compression_ratio,omitempty"`
	ErrorCorrection  ErrorCorrectionLevel `json:"error_correction"`
	BitsPerChannel   byte                 `json:"bits_per_channel"`
	Channels         ChannelMask          `json:"channels"`
	MSE              float64              `json:"mse"`
	// PSNR is +Inf when the cover and stego image are identical, which JSON cannot represent, so it is capped
	PSNR float64 `json:"psnr"`
}

type ChannelAnalysis struct {
	Channel     Channel `json:"channel"`
	OnesRatio   float64 `json:"ones_ratio"`
	Entropy     float64 `json:"entropy"`
	Transitions float64 `json:"transitions"`
}

type AnalysisResult struct {
	Width          int               `json:"width"`
	Height         int               `json:"height"`
	Channels       []ChannelAnalysis `json:"channels"`
	HeaderDetected bool              `json:"header_detected"`
	Header         *Header           `json:"header,omitempty"`
	Suspicion      float64           `json:"suspicion"`
}
