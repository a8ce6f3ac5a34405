package image

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"pxsteg/pkg/config"
	"pxsteg/pkg/model"

	"golang.org/x/image/bmp"
)

// DecodeImage reads PNG, JPEG, GIF or BMP. Lossy formats are accepted as carriers, but stego output is always written
// losslessly
func DecodeImage(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: malformed image: %s", model.ErrInvalidParameter, err)
	}
	return img, format, nil
}

func LoadImageFromFile(filePath string) (image.Image, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := DecodeImage(f)
	return img, err
}

// EncodeImage writes img as PNG or BMP
func EncodeImage(w io.Writer, img image.Image, format config.OutputFormat, pngCompression png.CompressionLevel) error {
	switch format {
	case config.OutputFormatBMP:
		return bmp.Encode(w, img)
	case config.OutputFormatPNG, "":
		enc := png.Encoder{CompressionLevel: pngCompression}
		return enc.Encode(w, img)
	}
	return fmt.Errorf("%w: unsupported output format %q", model.ErrInvalidParameter, format)
}

// asNRGBA returns img itself when it is already non premultiplied 8 bit RGBA, otherwise a converted copy. The result
// must be treated as read only
func asNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba
	}
	return cloneNRGBA(img)
}

// cloneNRGBA copies img into a fresh NRGBA. NRGBA sources are copied byte for byte so channel values of translucent
// pixels survive, which a premultiplied round trip through draw.Draw would not guarantee
func cloneNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	if src, ok := img.(*image.NRGBA); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			copy(out.Pix[out.PixOffset(b.Min.X, y):out.PixOffset(b.Max.X, y)], src.Pix[src.PixOffset(b.Min.X, y):src.PixOffset(b.Max.X, y)])
		}
		return out
	}
	// TODO: Work with 16-bit images, they are reduced to 8 bits per channel here
	draw.Draw(out, b, img, b.Min, draw.Src)
	return out
}
