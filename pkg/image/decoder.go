package image

import (
	"fmt"
	"hash/crc32"
	"image"
	"pxsteg/pkg/model"
	"pxsteg/pkg/transform"
	"time"
)

const (
	// RevealedBytesPerPixel scales the default limit on a revealed payload with the pixel count of the carrier
	RevealedBytesPerPixel = 16
	// MinRevealLimit is the smallest default limit, so small carriers can still hold well compressed text
	MinRevealLimit = 1 << 20
)

type Decoder struct {
	header model.Header
	// maxRevealedBytes bounds the size of the payload after decompression
	maxRevealedBytes int
	// checksumMismatch is set when the extracted payload failed its checksum but error correction repaired it
	checksumMismatch bool

	image *image.NRGBA
	stats model.DecodeStats
}

// NewImageDecoder reads the header of img, returning model.ErrNoHiddenData if there is none
func NewImageDecoder(img image.Image) (*Decoder, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: no image supplied", model.ErrInvalidParameter)
	}

	d := &Decoder{
		image: asNRGBA(img),
	}
	d.maxRevealedBytes = defaultMaxRevealedBytes(d.image.Rect)
	headerStart := time.Now()
	header, err := ReadHeader(d.image)
	if err != nil {
		return nil, err
	}
	d.header = header
	d.stats.HeaderExtraction = time.Since(headerStart)
	return d, nil
}

func (d *Decoder) Header() model.Header {
	return d.header
}

func (d *Decoder) Stats() model.DecodeStats {
	return d.stats
}

func (d *Decoder) ChecksumRepaired() bool {
	return d.checksumMismatch
}

// SetMaxRevealedBytes overrides the limit on the decompressed payload size. A value of 0 or less restores the default,
// which is RevealedBytesPerPixel per carrier pixel, at least MinRevealLimit and at most transform.MaxDecodedSize
func (d *Decoder) SetMaxRevealedBytes(maxBytes int) {
	if maxBytes <= 0 || maxBytes > transform.MaxDecodedSize {
		d.maxRevealedBytes = defaultMaxRevealedBytes(d.image.Rect)
		return
	}
	d.maxRevealedBytes = maxBytes
}

func (d *Decoder) MaxRevealedBytes() int {
	return d.maxRevealedBytes
}

func defaultMaxRevealedBytes(bounds image.Rectangle) int {
	pixels := bounds.Dx() * bounds.Dy()
	if pixels > transform.MaxDecodedSize/RevealedBytesPerPixel {
		return transform.MaxDecodedSize
	}
	return max(pixels*RevealedBytesPerPixel, MinRevealLimit)
}

// Reveal extracts and inverts the hidden payload. The checksum over the embedded bytes is verified before any transform
// is inverted. Without error correction a mismatch is reported as model.ErrCorruptPayload straight away. With error
// correction a mismatch is expected whenever a few embedded bits were flipped, so decoding carries on and the
// Reed-Solomon stage decides: it either repairs the shards, which ChecksumRepaired then reports, or fails with
// model.ErrCorruptPayload itself. A payload that decompresses beyond MaxRevealedBytes is also model.ErrCorruptPayload
func (d *Decoder) Reveal(password string) (model.RevealedPayload, error) {
	h := d.header
	d.checksumMismatch = false
	d.stats.PayloadExtraction, d.stats.Transform = 0, 0

	payloadStart := time.Now()
	if available := AvailableBits(d.image, h.Channels, h.BitsPerChannel, HeaderPixels); int(h.PayloadLength)*8 > available {
		return model.RevealedPayload{}, fmt.Errorf("%w: header announces %d bytes, the image can hold %d", model.ErrCorruptPayload, h.PayloadLength, available/8)
	}
	data, err := Unpack(d.image, h.Channels, h.BitsPerChannel, HeaderPixels, int(h.PayloadLength))
	d.stats.PayloadExtraction = time.Since(payloadStart)
	if err != nil {
		return model.RevealedPayload{}, err
	}

	if crc32.ChecksumIEEE(data) != h.Checksum {
		if h.Flags.ErrorCorrection == model.ErrorCorrectionNone {
			return model.RevealedPayload{}, fmt.Errorf("%w: checksum mismatch", model.ErrCorruptPayload)
		}
		d.checksumMismatch = true
	}

	transformStart := time.Now()
	envelope, err := transform.Invert(data, h.Flags, password, d.maxRevealedBytes)
	d.stats.Transform = time.Since(transformStart)
	if err != nil {
		return model.RevealedPayload{}, err
	}

	revealed := model.RevealedPayload{
		Kind:           model.PayloadText,
		Content:        envelope,
		Flags:          h.Flags,
		BitsPerChannel: h.BitsPerChannel,
		Channels:       h.Channels,
	}
	if h.Flags.File {
		revealed.Kind = model.PayloadFile
		if revealed.Name, revealed.Content, err = openFileEnvelope(envelope); err != nil {
			return model.RevealedPayload{}, err
		}
	}
	return revealed, nil
}

func (d *Decoder) RevealText(password string) (string, error) {
	if d.header.Flags.File {
		return "", fmt.Errorf("%w: hidden payload is a file, not text", model.ErrInvalidParameter)
	}
	revealed, err := d.Reveal(password)
	if err != nil {
		return "", err
	}
	return string(revealed.Content), nil
}

func (d *Decoder) RevealFile(password string) (model.OutputFile, error) {
	if !d.header.Flags.File {
		return model.OutputFile{}, fmt.Errorf("%w: hidden payload is text, not a file", model.ErrInvalidParameter)
	}
	revealed, err := d.Reveal(password)
	if err != nil {
		return model.OutputFile{}, err
	}
	return model.OutputFile{Name: revealed.Name, Content: revealed.Content}, nil
}
