package imgio

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
)

// Info describes an image file without fully decoding it. No channel or
// depth validation is applied; identify reports what is there.
type Info struct {
	Width    int
	Height   int
	Format   string // registry name: "png", "jpeg", "bmp", ...
	Model    string // native color model
	Channels int    // channels per pixel in the native model
	BitDepth int    // bits per channel in the native model
}

// GetInfo parses just enough of data to report its format and geometry.
func GetInfo(data []byte) (*Info, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing header: %w", err)
	}

	info := &Info{
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: format,
	}
	info.Model, info.Channels, info.BitDepth = describeModel(cfg.ColorModel)
	return info, nil
}

func describeModel(m color.Model) (name string, channels, bitDepth int) {
	switch m {
	case color.NRGBAModel:
		return "NRGBA", 4, 8
	case color.RGBAModel:
		return "RGBA", 4, 8
	case color.NRGBA64Model:
		return "NRGBA64", 4, 16
	case color.RGBA64Model:
		return "RGBA64", 4, 16
	case color.GrayModel:
		return "grayscale", 1, 8
	case color.Gray16Model:
		return "16-bit grayscale", 1, 16
	case color.CMYKModel:
		return "CMYK", 4, 8
	case color.YCbCrModel:
		return "YCbCr", 3, 8
	}
	if _, ok := m.(color.Palette); ok {
		return "paletted", 4, 8
	}
	return "unknown", 0, 0
}
