package imgio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Sentinel errors for inputs that decode fine but cannot be dumped.
var (
	// ErrChannelLayout marks images whose native decoded representation
	// has no per-pixel alpha channel (JPEG's YCbCr, grayscale, CMYK).
	ErrChannelLayout = errors.New("image has no 4-channel pixel representation")

	// ErrBitDepth marks images decoded at more than 8 bits per channel.
	ErrBitDepth = errors.New("image has more than 8 bits per channel")
)

// Decode decodes data into an 8-bit RGBA raster. The native decoded
// representation must carry four 8-bit channels per pixel: NRGBA and RGBA
// rasters are accepted directly, paletted rasters through their palette.
// Everything else is rejected with ErrChannelLayout or ErrBitDepth before
// any pixel is converted.
func Decode(data []byte) (*Image, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	switch img := src.(type) {
	case *image.NRGBA:
		return fromNRGBA(img), nil
	case *image.RGBA:
		return fromNRGBA(toNRGBA(img)), nil
	case *image.Paletted:
		return fromNRGBA(toNRGBA(img)), nil
	case *image.NRGBA64, *image.RGBA64, *image.Gray16:
		return nil, fmt.Errorf("%s (%s): %w", format, modelName(src), ErrBitDepth)
	default:
		return nil, fmt.Errorf("%s (%s): %w", format, modelName(src), ErrChannelLayout)
	}
}

// fromNRGBA flattens an NRGBA raster into the interleaved representation,
// normalizing away any stride padding and non-zero bounds origin.
func fromNRGBA(src *image.NRGBA) *Image {
	b := src.Bounds()
	m := &Image{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    make([]byte, b.Dx()*b.Dy()*4),
	}
	for y := 0; y < m.Height; y++ {
		row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
		copy(m.Pix[y*m.Width*4:(y+1)*m.Width*4], row[:m.Width*4])
	}
	return m
}

// toNRGBA converts an accepted 4-channel image to NRGBA. For fully opaque
// pixels (the common case for RGBA and GIF palettes) channel values pass
// through unchanged.
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.SetNRGBA(x, y, color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA))
		}
	}
	return dst
}

// modelName names an image's native color model for error messages.
func modelName(img image.Image) string {
	switch img.(type) {
	case *image.NRGBA:
		return "NRGBA"
	case *image.RGBA:
		return "RGBA"
	case *image.Paletted:
		return "paletted"
	case *image.NRGBA64:
		return "NRGBA64"
	case *image.RGBA64:
		return "RGBA64"
	case *image.Gray:
		return "grayscale"
	case *image.Gray16:
		return "16-bit grayscale"
	case *image.YCbCr:
		return "YCbCr"
	case *image.CMYK:
		return "CMYK"
	default:
		return fmt.Sprintf("%T", img)
	}
}
