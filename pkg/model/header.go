package model

// Flags records which transform stages were applied to a payload, and what kind of payload it is
type Flags struct {
	Compressed      bool                 `json:"compressed"`
	Encrypted       bool                 `json:"encrypted"`
	ErrorCorrection ErrorCorrectionLevel `json:"error_correction"`
	File            bool                 `json:"file"`
}

// Header is the self describing preamble embedded ahead of every payload
type Header struct {
	Version        byte        `json:"version"`
	Flags          Flags       `json:"flags"`
	BitsPerChannel byte        `json:"bits_per_channel"`
	Channels       ChannelMask `json:"channels"`
	// PayloadLength is the length of the fully transformed payload, which is what is embedded after the header
	PayloadLength uint32 `json:"payload_length"`
	Checksum      uint32 `json:"checksum"`
}
