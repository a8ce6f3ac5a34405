package bits

// BitWriter is the inverse of BitReader, bits are appended from least significant to most significant
type BitWriter struct {
	bytes         []byte
	currentBitIdx uint
}

func NewBitWriter(expectedBytes int) *BitWriter {
	return &BitWriter{
		bytes: make([]byte, 0, expectedBytes),
	}
}

// WriteBits appends the numOfBits low bits of bits
func (bw *BitWriter) WriteBits(bits byte, numOfBits uint) {
	for numOfBits > 0 {
		if bw.currentBitIdx == 0 {
			bw.bytes = append(bw.bytes, 0)
		}
		n := min(numOfBits, 8-bw.currentBitIdx)
		bw.bytes[len(bw.bytes)-1] |= (bits & (1<<n - 1)) << bw.currentBitIdx
		bits >>= n
		numOfBits -= n
		bw.currentBitIdx = (bw.currentBitIdx + n) % 8
	}
}

func (bw *BitWriter) BitsWritten() int {
	if bw.currentBitIdx == 0 {
		return len(bw.bytes) * 8
	}
	return (len(bw.bytes)-1)*8 + int(bw.currentBitIdx)
}

// Bytes returns the written bytes, a trailing partially written byte is included with its unwritten bits set to zero
func (bw *BitWriter) Bytes() []byte {
	return bw.bytes
}
