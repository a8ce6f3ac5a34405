package image

import (
	"errors"
	"fmt"
	"hash/crc32"
	"image"
	"io"
	"math"
	"pxsteg/pkg/config"
	"pxsteg/pkg/model"
	"pxsteg/pkg/transform"
	"time"
)

var (
	ErrNothingEncoded = errors.New("no payload has been encoded yet")
)

// Encoder hides payloads in a copy of the image it is created with, the source image is never modified
type Encoder struct {
	source  *image.NRGBA
	encoded *image.NRGBA

	config config.ImageEncodeConfig
	stats  model.EncodeStats
}

func NewImageEncoder(img image.Image, iConfig config.ImageEncodeConfig) (*Encoder, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: no image supplied", model.ErrInvalidParameter)
	}
	iConfig.PopulateUnsetConfigVars()
	if err := iConfig.Validate(); err != nil {
		return nil, err
	}

	return &Encoder{
		source: asNRGBA(img),
		config: iConfig,
	}, nil
}

func (e *Encoder) Stats() model.EncodeStats {
	return e.stats
}

// Image returns the image produced by the last successful encode, or nil
func (e *Encoder) Image() *image.NRGBA {
	return e.encoded
}

func (e *Encoder) Config() config.ImageEncodeConfig {
	return e.config
}

func (e *Encoder) HideText(text string) (model.HideResult, error) {
	return e.encode([]byte(text), false, len(text))
}

// HideFile hides content along with its file name, so revealing can restore both
func (e *Encoder) HideFile(name string, content []byte) (model.HideResult, error) {
	envelope, err := fileEnvelope(name, content)
	if err != nil {
		return model.HideResult{}, err
	}
	return e.encode(envelope, true, len(content))
}

// Encode hides raw bytes, revealing them behaves like revealing text
func (e *Encoder) Encode(payload []byte) (model.HideResult, error) {
	return e.encode(payload, false, len(payload))
}

func (e *Encoder) encode(payload []byte, isFile bool, originalSize int) (model.HideResult, error) {
	e.stats = model.EncodeStats{}

	transformStart := time.Now()
	transformed, err := transform.Apply(payload, transform.Options{
		Compress:        e.config.Compress,
		Password:        e.config.Password,
		ErrorCorrection: e.config.ErrorCorrection,
	})
	e.stats.Transform = time.Since(transformStart)
	if err != nil {
		return model.HideResult{}, err
	}
	transformed.Flags.File = isFile

	bounds := e.source.Rect
	usable, err := Capacity(bounds.Dx(), bounds.Dy(), e.config.Channels, int(e.config.BitsPerChannel))
	if err != nil {
		return model.HideResult{}, err
	}
	if bounds.Dx()*bounds.Dy() < HeaderPixels || len(transformed.Payload) > usable || uint64(len(transformed.Payload)) > math.MaxUint32 {
		return model.HideResult{}, fmt.Errorf("%w: transformed payload is %d bytes, usable capacity with %d bits per channel over %s is %d bytes",
			model.ErrCapacityExceeded, len(transformed.Payload), e.config.BitsPerChannel, e.config.Channels, usable)
	}

	header := model.Header{
		Version:        HeaderVersion,
		Flags:          transformed.Flags,
		BitsPerChannel: e.config.BitsPerChannel,
		Channels:       e.config.Channels,
		PayloadLength:  uint32(len(transformed.Payload)),
		Checksum:       crc32.ChecksumIEEE(transformed.Payload),
	}

	out := cloneNRGBA(e.source)
	headerStart := time.Now()
	if err = WriteHeader(out, header); err != nil {
		return model.HideResult{}, err
	}
	e.stats.HeaderEmbedding = time.Since(headerStart)

	payloadStart := time.Now()
	if err = Pack(out, transformed.Payload, header.Channels, header.BitsPerChannel, HeaderPixels); err != nil {
		return model.HideResult{}, err
	}
	e.stats.PayloadEmbedding = time.Since(payloadStart)
	e.encoded = out

	mse := MSE(e.source, out)
	result := model.HideResult{
		UsedCapacityBits: (HeaderSize + len(transformed.Payload)) * 8,
		PayloadSizeBytes: len(transformed.Payload),
		OverheadBytes:    len(transformed.Payload) - originalSize,
		Encrypted:        transformed.Flags.Encrypted,
		Compressed:       transformed.Flags.Compressed,
		CompressionRatio: transformed.CompressionRatio,
		ErrorCorrection:  transformed.Flags.ErrorCorrection,
		BitsPerChannel:   header.BitsPerChannel,
		Channels:         header.Channels,
		MSE:              mse,
		PSNR:             PSNR(mse),
	}
	if result.Encrypted {
		result.Encryption = transform.EncryptionName
		result.KDF = transform.KDFName
	}
	if result.Compressed {
		result.Compression = transform.CompressionName
	}
	return result, nil
}

// WriteEncodedImage writes the encoded image in the configured output format
func (e *Encoder) WriteEncodedImage(output io.Writer) error {
	if e.encoded == nil {
		return ErrNothingEncoded
	}

	imageEncodeStart := time.Now()
	defer func() {
		e.stats.OutputImageEncoding = time.Since(imageEncodeStart)
	}()
	return EncodeImage(output, e.encoded, e.config.OutputFormat, e.config.PngCompressionLevel)
}
