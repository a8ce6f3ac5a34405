package transform

import (
	"errors"
	"fmt"
	"pxsteg/pkg/model"

	"github.com/klauspost/compress/zstd"
)

const (
	CompressionName = "zstd"
	// MaxDecodedSize is the ceiling for any decompression limit
	MaxDecodedSize = 1 << 30
)

// Compress returns the zstd compressed payload and true, or the payload untouched and false when compressing does not
// make it smaller
func Compress(payload []byte) ([]byte, bool, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression), zstd.WithEncoderConcurrency(1))
	if err != nil {
		return nil, false, err
	}
	defer enc.Close()

	compressed := enc.EncodeAll(payload, make([]byte, 0, len(payload)))
	if len(compressed) >= len(payload) {
		return payload, false, nil
	}
	return compressed, true, nil
}

// Decompress inflates a zstd payload, failing with model.ErrCorruptPayload once the output would exceed maxSize bytes.
// A maxSize outside (0, MaxDecodedSize] is clamped to MaxDecodedSize
func Decompress(compressed []byte, maxSize int) ([]byte, error) {
	if maxSize <= 0 || maxSize > MaxDecodedSize {
		maxSize = MaxDecodedSize
	}
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1), zstd.WithDecoderMaxMemory(uint64(maxSize)))
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	payload, err := dec.DecodeAll(compressed, nil)
	if errors.Is(err, zstd.ErrDecoderSizeExceeded) {
		return nil, fmt.Errorf("%w: decompressed payload exceeds %d bytes", model.ErrCorruptPayload, maxSize)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: decompressing payload: %s", model.ErrCorruptPayload, err)
	}
	if len(payload) > maxSize {
		return nil, fmt.Errorf("%w: decompressed payload exceeds %d bytes", model.ErrCorruptPayload, maxSize)
	}
	return payload, nil
}
