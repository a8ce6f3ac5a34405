package image

import (
	"fmt"
	"image"
	"pxsteg/pkg/model"
)

// ExtractPlane renders one bit plane of one channel as a grayscale image, white where the bit is set and black where it
// is not. It works on any image, whether it carries hidden data or not. For *image.NRGBA and *image.RGBA the bit is read
// from the stored channel byte, premultiplied in the RGBA case. Any other image is first converted to non-premultiplied
// 8-bit channels, so the plane shows the bits of the converted values
func ExtractPlane(img image.Image, channel model.Channel, bit int) (*image.Gray, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: no image supplied", model.ErrInvalidParameter)
	}
	if !channel.Valid() {
		return nil, fmt.Errorf("%w: channel must be R, G or B", model.ErrInvalidParameter)
	}
	if bit < 0 || bit > 7 {
		return nil, fmt.Errorf("%w: bit index must be between 0 and 7, got %d", model.ErrInvalidParameter, bit)
	}
	return extractPlane(newChannelSource(img), channel, bit), nil
}

// channelSource gives access to the stored 8-bit channel values of an image laid out as R, G, B, A bytes
type channelSource struct {
	pix    []byte
	stride int
	rect   image.Rectangle
}

func newChannelSource(img image.Image) channelSource {
	switch src := img.(type) {
	case *image.NRGBA:
		return channelSource{pix: src.Pix, stride: src.Stride, rect: src.Rect}
	case *image.RGBA:
		return channelSource{pix: src.Pix, stride: src.Stride, rect: src.Rect}
	}
	converted := cloneNRGBA(img)
	return channelSource{pix: converted.Pix, stride: converted.Stride, rect: converted.Rect}
}

func (s channelSource) offset(x, y int) int {
	return (y-s.rect.Min.Y)*s.stride + (x-s.rect.Min.X)*4
}

func extractPlane(src channelSource, channel model.Channel, bit int) *image.Gray {
	b := src.rect
	plane := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if src.pix[src.offset(x, y)+int(channel)]>>bit&1 == 1 {
				plane.Pix[plane.PixOffset(x, y)] = 255
			}
		}
	}
	return plane
}

// ExtractAllPlanes renders the eight bit planes of a channel, index 0 being the least significant
func ExtractAllPlanes(img image.Image, channel model.Channel) ([8]*image.Gray, error) {
	var planes [8]*image.Gray
	if img == nil {
		return planes, fmt.Errorf("%w: no image supplied", model.ErrInvalidParameter)
	}
	if !channel.Valid() {
		return planes, fmt.Errorf("%w: channel must be R, G or B", model.ErrInvalidParameter)
	}
	src := newChannelSource(img)
	for bit := range planes {
		planes[bit] = extractPlane(src, channel, bit)
	}
	return planes, nil
}
