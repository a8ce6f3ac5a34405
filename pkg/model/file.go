package model

type PayloadKind string

const (
	PayloadText PayloadKind = "text"
	PayloadFile PayloadKind = "file"
)

type RevealedPayload struct {
	Kind           PayloadKind `json:"kind"`
	Name           string      `json:"name,omitempty"`
	Content        []byte      `json:"content"`
	Flags          Flags       `json:"flags"`
	BitsPerChannel byte        `json:"bits_per_channel"`
	Channels       ChannelMask `json:"channels"`
}

type OutputFile struct {
	Name    string `json:"name"`
	Content []byte `json:"content"`
}
