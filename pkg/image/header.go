package image

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"pxsteg/pkg/model"
)

const (
	HeaderVersion = 1
	// HeaderSize is the size in bytes of a marshalled header
	HeaderSize = 17
	// HeaderPixels is how many pixels the header occupies, since it is always written with 1 bit per channel over R, G
	// and B. The payload starts on the pixel following them
	HeaderPixels = (HeaderSize*8 + 2) / 3
)

const (
	flagCompressed byte = 1 << iota
	flagEncrypted
	flagErrorCorrected
	flagFile

	knownFlags = flagCompressed | flagEncrypted | flagErrorCorrected | flagFile
)

// Magic marks an image as carrying a payload. A random image matches it with probability 2^-32
var Magic = [4]byte{'P', 'X', 'S', 'G'}

func packFlags(f model.Flags) byte {
	var b byte
	if f.Compressed {
		b |= flagCompressed
	}
	if f.Encrypted {
		b |= flagEncrypted
	}
	if f.ErrorCorrection != model.ErrorCorrectionNone {
		b |= flagErrorCorrected
	}
	if f.File {
		b |= flagFile
	}
	return b
}

func unpackFlags(b, errorCorrectionLevel byte) (model.Flags, error) {
	if b&^knownFlags != 0 {
		return model.Flags{}, fmt.Errorf("%w: unknown header flags %08b", model.ErrUnsupportedCombination, b)
	}
	level := model.ErrorCorrectionLevel(errorCorrectionLevel)
	if !level.Valid() {
		return model.Flags{}, fmt.Errorf("%w: unknown error correction level %d", model.ErrUnsupportedCombination, errorCorrectionLevel)
	}
	if (b&flagErrorCorrected != 0) != (level != model.ErrorCorrectionNone) {
		return model.Flags{}, fmt.Errorf("%w: error correction flag and level %s disagree", model.ErrUnsupportedCombination, level)
	}
	return model.Flags{
		Compressed:      b&flagCompressed != 0,
		Encrypted:       b&flagEncrypted != 0,
		ErrorCorrection: level,
		File:            b&flagFile != 0,
	}, nil
}

// MarshalHeader lays out a header as
// magic(4) | version(1) | flags(1) | error correction level(1) | bits per channel(1) | channel mask(1) |
// payload length(4, BE) | payload CRC-32(4, BE)
func MarshalHeader(h model.Header) []byte {
	b := make([]byte, 0, HeaderSize)
	b = append(b, Magic[:]...)
	b = append(b, h.Version, packFlags(h.Flags), byte(h.Flags.ErrorCorrection), h.BitsPerChannel, byte(h.Channels))
	b = binary.BigEndian.AppendUint32(b, h.PayloadLength)
	b = binary.BigEndian.AppendUint32(b, h.Checksum)
	return b
}

func UnmarshalHeader(b []byte) (model.Header, error) {
	if len(b) < HeaderSize || !bytes.Equal(b[:len(Magic)], Magic[:]) {
		return model.Header{}, model.ErrNoHiddenData
	}

	h := model.Header{
		Version:        b[4],
		BitsPerChannel: b[7],
		Channels:       model.ChannelMask(b[8]),
		PayloadLength:  binary.BigEndian.Uint32(b[9:13]),
		Checksum:       binary.BigEndian.Uint32(b[13:17]),
	}
	if h.Version != HeaderVersion {
		return model.Header{}, fmt.Errorf("%w: header version %d", model.ErrUnsupportedCombination, h.Version)
	}

	var err error
	if h.Flags, err = unpackFlags(b[5], b[6]); err != nil {
		return model.Header{}, err
	}
	if h.BitsPerChannel < 1 || h.BitsPerChannel > 8 {
		return model.Header{}, fmt.Errorf("%w: header bits per channel is %d", model.ErrCorruptPayload, h.BitsPerChannel)
	}
	if !h.Channels.Valid() {
		return model.Header{}, fmt.Errorf("%w: header channel mask is %03b", model.ErrCorruptPayload, byte(h.Channels))
	}
	return h, nil
}

// WriteHeader stores the header in the first HeaderPixels pixels using 1 bit per channel over R, G and B, regardless
// of the parameters the payload itself is written with
func WriteHeader(img *image.NRGBA, h model.Header) error {
	return Pack(img, MarshalHeader(h), model.MaskRGB, 1, 0)
}

// ReadHeader returns model.ErrNoHiddenData when the image does not start with a header
func ReadHeader(img *image.NRGBA) (model.Header, error) {
	if img.Rect.Dx()*img.Rect.Dy() < HeaderPixels {
		return model.Header{}, model.ErrNoHiddenData
	}
	b, err := Unpack(img, model.MaskRGB, 1, 0, HeaderSize)
	if err != nil {
		return model.Header{}, err
	}
	return UnmarshalHeader(b)
}
