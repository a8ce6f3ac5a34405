package bits

// BitReader implements methods to help with reading bits from an array of bytes. Bits are read from least significant
// to most significant
type BitReader struct {
	bytes         []byte
	currentBitIdx uint
}

func NewBitReader(bytes []byte) *BitReader {
	return &BitReader{
		bytes: bytes,
	}
}

func (br *BitReader) BytesLeftToRead() int {
	return len(br.bytes)
}

func (br *BitReader) BitsLeftToRead() int {
	if len(br.bytes) == 0 {
		return 0
	}
	return (len(br.bytes)-1)*8 + (8 - int(br.currentBitIdx))
}

func (br *BitReader) Reset() {
	br.bytes = nil
	br.currentBitIdx = 0
}

// ReadBits returns up to 8 bits packed into the low bits of the result, the first bit read ending up in bit 0. If the
// reader runs out of bytes the missing high bits are left as zero
func (br *BitReader) ReadBits(bitsToRead uint) (byteWithRequestedBits byte) {
	var numOfBitsRead uint
	for numOfBitsRead < bitsToRead && len(br.bytes) > 0 {
		bitsLeftInByte := 8 - br.currentBitIdx
		bitsWanted := bitsToRead - numOfBitsRead
		if bitsWanted < bitsLeftInByte {
			chunk := (br.bytes[0] >> br.currentBitIdx) & (1<<bitsWanted - 1)
			byteWithRequestedBits |= chunk << numOfBitsRead
			br.currentBitIdx += bitsWanted
			numOfBitsRead += bitsWanted
		} else {
			byteWithRequestedBits |= (br.bytes[0] >> br.currentBitIdx) << numOfBitsRead
			br.bytes = br.bytes[1:]
			numOfBitsRead += bitsLeftInByte
			br.currentBitIdx = 0
		}
	}
	return byteWithRequestedBits
}
