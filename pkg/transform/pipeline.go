// Package transform implements the reversible payload pipeline applied before embedding: compression, then password
// based encryption, then error correction. Decoding runs the inverse stages in the exact reverse order
package transform

import (
	"fmt"
	"pxsteg/pkg/model"
)

type Options struct {
	Compress        bool
	Password        string
	ErrorCorrection model.ErrorCorrectionLevel
}

// Result describes what Apply did to a payload
type Result struct {
	Payload          []byte
	Flags            model.Flags
	CompressionRatio float64
}

func Apply(payload []byte, opts Options) (Result, error) {
	if !opts.ErrorCorrection.Valid() {
		return Result{}, fmt.Errorf("%w: unknown error correction level %d", model.ErrInvalidParameter, opts.ErrorCorrection)
	}

	res := Result{Payload: payload}
	if opts.Compress {
		compressed, applied, err := Compress(res.Payload)
		if err != nil {
			return Result{}, err
		}
		if applied {
			res.CompressionRatio = float64(len(res.Payload)) / float64(len(compressed))
			res.Payload = compressed
			res.Flags.Compressed = true
		}
	}

	if opts.Password != "" {
		encrypted, err := Encrypt(res.Payload, opts.Password)
		if err != nil {
			return Result{}, err
		}
		res.Payload = encrypted
		res.Flags.Encrypted = true
	}

	if opts.ErrorCorrection != model.ErrorCorrectionNone {
		corrected, err := AddErrorCorrection(res.Payload, opts.ErrorCorrection)
		if err != nil {
			return Result{}, err
		}
		res.Payload = corrected
		res.Flags.ErrorCorrection = opts.ErrorCorrection
	}

	return res, nil
}

// Invert undoes Apply using the stages recorded in flags. A password supplied for an unencrypted payload is ignored.
// maxDecodedSize bounds the decompressed output, see Decompress
func Invert(data []byte, flags model.Flags, password string, maxDecodedSize int) ([]byte, error) {
	var err error
	if flags.ErrorCorrection != model.ErrorCorrectionNone {
		if data, _, err = CorrectErrors(data, flags.ErrorCorrection); err != nil {
			return nil, err
		}
	}
	if flags.Encrypted {
		if data, err = Decrypt(data, password); err != nil {
			return nil, err
		}
	}
	if flags.Compressed {
		if data, err = Decompress(data, maxDecodedSize); err != nil {
			return nil, err
		}
	}
	return data, nil
}
