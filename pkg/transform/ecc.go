package transform

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"pxsteg/pkg/model"

	"github.com/klauspost/reedsolomon"
)

const (
	dataShards = 8
	// the original length is stored this many times and recovered by bitwise majority
	lengthCopies    = 3
	lengthFieldSize = 4 * lengthCopies
	shardCRCSize    = 4
)

// ParityShards is the number of Reed-Solomon parity shards added on top of the 8 data shards for each level. Up to that
// many shards can be corrupted in any way and still be repaired
func ParityShards(level model.ErrorCorrectionLevel) int {
	switch level {
	case model.ErrorCorrectionLow:
		return 2
	case model.ErrorCorrectionMedium:
		return 4
	case model.ErrorCorrectionHigh:
		return 8
	}
	return 0
}

func shardSize(payloadLength int) int {
	return max(1, (payloadLength+dataShards-1)/dataShards)
}

// ErrorCorrectedLength returns the size of a payload of payloadLength bytes once error correction is added
func ErrorCorrectedLength(payloadLength int, level model.ErrorCorrectionLevel) int {
	if level == model.ErrorCorrectionNone {
		return payloadLength
	}
	return lengthFieldSize + (dataShards+ParityShards(level))*(shardSize(payloadLength)+shardCRCSize)
}

func newRSEncoder(level model.ErrorCorrectionLevel) (reedsolomon.Encoder, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("%w: unknown error correction level %d", model.ErrUnsupportedCombination, level)
	}
	return reedsolomon.New(dataShards, ParityShards(level))
}

// AddErrorCorrection splits the payload into Reed-Solomon shards. Layout:
// length (uint32 BE) x3 | for each shard: shard bytes | CRC-32 of the shard (uint32 BE)
func AddErrorCorrection(payload []byte, level model.ErrorCorrectionLevel) ([]byte, error) {
	if level == model.ErrorCorrectionNone {
		return payload, nil
	}
	enc, err := newRSEncoder(level)
	if err != nil {
		return nil, err
	}

	totalShards := dataShards + ParityShards(level)
	size := shardSize(len(payload))
	shardBuffer := make([]byte, totalShards*size)
	copy(shardBuffer, payload)
	shards := make([][]byte, totalShards)
	for i := range shards {
		shards[i] = shardBuffer[i*size : (i+1)*size]
	}
	if err = enc.Encode(shards); err != nil {
		return nil, err
	}

	out := make([]byte, 0, ErrorCorrectedLength(len(payload), level))
	for i := 0; i < lengthCopies; i++ {
		out = binary.BigEndian.AppendUint32(out, uint32(len(payload)))
	}
	for _, shard := range shards {
		out = append(out, shard...)
		out = binary.BigEndian.AppendUint32(out, crc32.ChecksumIEEE(shard))
	}
	return out, nil
}

// CorrectErrors reverses AddErrorCorrection. Shards failing their CRC are treated as erasures and rebuilt from the
// parity shards, the number of rebuilt shards is returned alongside the payload
func CorrectErrors(data []byte, level model.ErrorCorrectionLevel) ([]byte, int, error) {
	if level == model.ErrorCorrectionNone {
		return data, 0, nil
	}
	enc, err := newRSEncoder(level)
	if err != nil {
		return nil, 0, err
	}

	totalShards := dataShards + ParityShards(level)
	if len(data) < lengthFieldSize {
		return nil, 0, fmt.Errorf("%w: error corrected payload too short", model.ErrCorruptPayload)
	}
	payloadLength := majorityUint32(data[0:4], data[4:8], data[8:12])

	shardData := data[lengthFieldSize:]
	if len(shardData)%totalShards != 0 || len(shardData)/totalShards <= shardCRCSize {
		return nil, 0, fmt.Errorf("%w: error corrected payload has an invalid length of %d bytes", model.ErrCorruptPayload, len(data))
	}
	size := len(shardData)/totalShards - shardCRCSize
	if int(payloadLength) > size*dataShards {
		return nil, 0, fmt.Errorf("%w: recorded length %d exceeds the shard data", model.ErrCorruptPayload, payloadLength)
	}

	shards := make([][]byte, totalShards)
	var repaired int
	for i := range shards {
		chunk := shardData[i*(size+shardCRCSize) : (i+1)*(size+shardCRCSize)]
		shard := chunk[:size]
		if crc32.ChecksumIEEE(shard) != binary.BigEndian.Uint32(chunk[size:]) {
			repaired++
			continue
		}
		shards[i] = shard
	}

	if repaired > 0 {
		if err = enc.ReconstructData(shards); err != nil {
			return nil, 0, fmt.Errorf("%w: %d of %d shards damaged, cannot repair: %s", model.ErrCorruptPayload, repaired, totalShards, err)
		}
	}

	out := bytes.NewBuffer(make([]byte, 0, payloadLength))
	if err = enc.Join(out, shards, int(payloadLength)); err != nil {
		return nil, 0, fmt.Errorf("%w: %s", model.ErrCorruptPayload, err)
	}
	return out.Bytes(), repaired, nil
}

func majorityUint32(a, b, c []byte) uint32 {
	x, y, z := binary.BigEndian.Uint32(a), binary.BigEndian.Uint32(b), binary.BigEndian.Uint32(c)
	return (x & y) | (x & z) | (y & z)
}
