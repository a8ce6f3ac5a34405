package api

import "pxsteg/pkg/model"

// EncodeOptions are shared by every hide request. Empty values fall back to the defaults: 1 bit per channel over R, G
// and B, no compression, no encryption, no error correction and PNG output
type EncodeOptions struct {
	BitsPerChannel  byte   `json:"bits_per_channel" example:"1"`
	Channels        string `json:"channels" example:"RGB"`
	Compress        bool   `json:"compress"`
	Password        string `json:"password,omitempty"`
	ErrorCorrection string `json:"error_correction" example:"none"`
	OutputFormat    string `json:"output_format" example:"png"`
}

// CapacityRequest asks for the capacity table of an image. BitsPerChannel is optional, when set the report also
// carries the answer for that depth alone
type CapacityRequest struct {
	Image          []byte `json:"image" binding:"required"`
	Channels       string `json:"channels" example:"RGB"`
	BitsPerChannel int    `json:"bits_per_channel,omitempty" example:"2"`
}

type HideTextRequest struct {
	Image []byte `json:"image" binding:"required"`
	Text  string `json:"text"`
	EncodeOptions
}

type HideFileRequest struct {
	Image       []byte `json:"image" binding:"required"`
	FileName    string `json:"file_name"`
	FileContent []byte `json:"file_content"`
	EncodeOptions
}

type HideResponse struct {
	EncodedImage []byte           `json:"encoded_image"`
	Format       string           `json:"format"`
	Result       model.HideResult `json:"result"`
}

type RevealRequest struct {
	Image    []byte `json:"image" binding:"required"`
	Password string `json:"password,omitempty"`
}

type RevealTextResponse struct {
	Text   string       `json:"text"`
	Header model.Header `json:"header"`
}

type RevealFileResponse struct {
	File   model.OutputFile `json:"file"`
	Header model.Header     `json:"header"`
}

type VisualizeRequest struct {
	Image   []byte `json:"image" binding:"required"`
	Channel string `json:"channel" example:"R"`
	Bit     int    `json:"bit" example:"0"`
}

// VisualizeResponse carries the bit plane as a PNG
type VisualizeResponse struct {
	Plane []byte `json:"plane"`
}

type VisualizeAllRequest struct {
	Image   []byte `json:"image" binding:"required"`
	Channel string `json:"channel" example:"R"`
}

// VisualizeAllResponse carries eight PNGs, index 0 being the least significant bit plane
type VisualizeAllResponse struct {
	Planes [][]byte `json:"planes"`
}

type AnalyzeRequest struct {
	Image []byte `json:"image" binding:"required"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type Error struct {
	Code  string `json:"code,omitempty"`
	Error string `json:"error"`
}
