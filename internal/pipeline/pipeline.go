package pipeline

import (
	"bytes"
	"fmt"

	"github.com/lmarchetti/img2ppm/internal/imgio"
	"github.com/lmarchetti/img2ppm/internal/ppm"
)

// Options controls the image → text conversion.
type Options struct {
	Alpha bool // emit the alpha channel as a fourth column
}

// Result holds the output of a pipeline run.
type Result struct {
	Data   []byte // complete textual dump
	Width  int
	Height int
}

// Run executes the full conversion: decode → validate → encode. It does no
// file I/O and produces the output entirely in memory, so a caller that
// writes Result.Data on success never leaves a partial file behind.
func Run(src []byte, opts Options) (*Result, error) {
	img, err := imgio.Decode(src)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(ppm.Tag) + 16 + img.Width*img.Height*16)
	if err := ppm.Encode(&buf, img, ppm.Options{Alpha: opts.Alpha}); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &Result{
		Data:   buf.Bytes(),
		Width:  img.Width,
		Height: img.Height,
	}, nil
}
