// Package ppm writes the textual pixel-dump format: a "P3" tag line, a
// "width height" line, then one line per pixel in row-major order carrying
// the blue, red and green channel values as space-separated decimals.
//
// The format is deliberately not valid PNM: the channels are reordered and
// there is no maxval line.
package ppm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lmarchetti/img2ppm/internal/imgio"
)

// Tag is the fixed format marker on the first output line.
const Tag = "P3"

// Options controls the encoder output.
type Options struct {
	Alpha bool // append the alpha value as a fourth column
}

// Encode writes img to w. Output is 2 + Width*Height lines; each pixel line
// is "b r g" (or "b r g a" with Alpha set).
func Encode(w io.Writer, img *imgio.Image, opts Options) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n", Tag, img.Width, img.Height); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b, a := img.At(x, y)
			var err error
			if opts.Alpha {
				_, err = fmt.Fprintf(bw, "%d %d %d %d\n", b, r, g, a)
			} else {
				_, err = fmt.Fprintf(bw, "%d %d %d\n", b, r, g)
			}
			if err != nil {
				return fmt.Errorf("writing pixel (%d,%d): %w", x, y, err)
			}
		}
	}

	return bw.Flush()
}
