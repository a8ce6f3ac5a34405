package image

import (
	"fmt"
	"image"
	"pxsteg/internal/bits"
	"pxsteg/pkg/model"
)

func validatePackParams(mask model.ChannelMask, bitsPerChannel byte, startPixel int) error {
	if bitsPerChannel < 1 || bitsPerChannel > 8 {
		return fmt.Errorf("%w: bits per channel must be between 1 and 8, got %d", model.ErrInvalidParameter, bitsPerChannel)
	}
	if !mask.Valid() {
		return fmt.Errorf("%w: channel mask must select at least one of R, G, B", model.ErrInvalidParameter)
	}
	if startPixel < 0 {
		return fmt.Errorf("%w: negative start pixel %d", model.ErrInvalidParameter, startPixel)
	}
	return nil
}

// AvailableBits returns how many bits can be stored from startPixel onwards
func AvailableBits(img *image.NRGBA, mask model.ChannelMask, bitsPerChannel byte, startPixel int) int {
	pixels := img.Rect.Dx()*img.Rect.Dy() - startPixel
	if pixels <= 0 {
		return 0
	}
	return pixels * mask.Count() * int(bitsPerChannel)
}

// pixelOffset maps a raster order pixel index to its offset in Pix
func pixelOffset(img *image.NRGBA, pixel int) int {
	width := img.Rect.Dx()
	return img.PixOffset(img.Rect.Min.X+pixel%width, img.Rect.Min.Y+pixel/width)
}

// Pack stores data in the bitsPerChannel least significant bits of the channels in mask, starting at startPixel and
// moving in raster order, visiting channels in R, G, B order. Data is consumed least significant bit first, and the
// n-th bit stored in a channel goes to bit n of the channel value. Nothing is written if data does not fit
func Pack(img *image.NRGBA, data []byte, mask model.ChannelMask, bitsPerChannel byte, startPixel int) error {
	if err := validatePackParams(mask, bitsPerChannel, startPixel); err != nil {
		return err
	}
	if available := AvailableBits(img, mask, bitsPerChannel, startPixel); len(data)*8 > available {
		return fmt.Errorf("%w: %d bits to write, %d available", model.ErrCapacityExceeded, len(data)*8, available)
	}

	br := bits.NewBitReader(data)
	channels := mask.Channels()
	for pixel := startPixel; br.BitsLeftToRead() > 0; pixel++ {
		offset := pixelOffset(img, pixel)
		for _, channel := range channels {
			// the last chunk may be shorter than bitsPerChannel, in which case only its bits are replaced
			numOfBits := min(uint(bitsPerChannel), uint(br.BitsLeftToRead()))
			if numOfBits == 0 {
				break
			}
			subPixel := offset + int(channel)
			img.Pix[subPixel] = img.Pix[subPixel]&^byte(1<<numOfBits-1) | br.ReadBits(numOfBits)
		}
	}
	return nil
}

// Unpack reads byteCount bytes written by Pack with the same parameters. The image is never modified
func Unpack(img *image.NRGBA, mask model.ChannelMask, bitsPerChannel byte, startPixel, byteCount int) ([]byte, error) {
	if err := validatePackParams(mask, bitsPerChannel, startPixel); err != nil {
		return nil, err
	}
	if byteCount < 0 {
		return nil, fmt.Errorf("%w: negative byte count %d", model.ErrInvalidParameter, byteCount)
	}
	bitsLeft := byteCount * 8
	if available := AvailableBits(img, mask, bitsPerChannel, startPixel); bitsLeft > available {
		return nil, fmt.Errorf("%w: %d bits to read, %d available", model.ErrCapacityExceeded, bitsLeft, available)
	}

	bw := bits.NewBitWriter(byteCount)
	channels := mask.Channels()
	for pixel := startPixel; bitsLeft > 0; pixel++ {
		offset := pixelOffset(img, pixel)
		for _, channel := range channels {
			numOfBits := min(int(bitsPerChannel), bitsLeft)
			if numOfBits == 0 {
				break
			}
			bw.WriteBits(img.Pix[offset+int(channel)]&byte(1<<numOfBits-1), uint(numOfBits))
			bitsLeft -= numOfBits
		}
	}
	return bw.Bytes(), nil
}
