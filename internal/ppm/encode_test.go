package ppm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lmarchetti/img2ppm/internal/imgio"
)

// makeImage builds a raster from interleaved r,g,b,a tuples.
func makeImage(t *testing.T, width, height int, pix []byte) *imgio.Image {
	t.Helper()
	if len(pix) != width*height*4 {
		t.Fatalf("fixture has %d bytes, want %d", len(pix), width*height*4)
	}
	return &imgio.Image{Width: width, Height: height, Pix: pix}
}

func TestEncode_SingleRedPixel(t *testing.T) {
	img := makeImage(t, 1, 1, []byte{255, 0, 0, 255})

	var buf bytes.Buffer
	if err := Encode(&buf, img, Options{}); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := "P3\n1 1\n0 255 0\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestEncode_TwoPixelsRowMajor(t *testing.T) {
	img := makeImage(t, 2, 1, []byte{
		10, 20, 30, 255,
		40, 50, 60, 255,
	})

	var buf bytes.Buffer
	if err := Encode(&buf, img, Options{}); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := "P3\n2 1\n30 10 20\n60 40 50\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestEncode_AlphaColumn(t *testing.T) {
	img := makeImage(t, 1, 1, []byte{255, 0, 0, 128})

	var buf bytes.Buffer
	if err := Encode(&buf, img, Options{Alpha: true}); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := "P3\n1 1\n0 255 0 128\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestEncode_AlphaNeverWrittenByDefault(t *testing.T) {
	img := makeImage(t, 1, 1, []byte{1, 2, 3, 77})

	var buf bytes.Buffer
	if err := Encode(&buf, img, Options{}); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if strings.Contains(buf.String(), "77") {
		t.Errorf("alpha value leaked into output: %q", buf.String())
	}
}

func TestEncode_LineCountAndHeader(t *testing.T) {
	const w, h = 3, 4
	img := makeImage(t, w, h, make([]byte, w*h*4))

	var buf bytes.Buffer
	if err := Encode(&buf, img, Options{}); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2+w*h {
		t.Errorf("got %d lines, want %d", len(lines), 2+w*h)
	}
	if lines[0] != Tag {
		t.Errorf("tag line = %q, want %q", lines[0], Tag)
	}
	if lines[1] != "3 4" {
		t.Errorf("dimension line = %q, want %q", lines[1], "3 4")
	}
}

func TestEncode_RowMajorOrder(t *testing.T) {
	// 2x2 with a unique red value per pixel; red is the second column.
	img := makeImage(t, 2, 2, []byte{
		1, 0, 0, 255, // (0,0)
		2, 0, 0, 255, // (1,0)
		3, 0, 0, 255, // (0,1)
		4, 0, 0, 255, // (1,1)
	})

	var buf bytes.Buffer
	if err := Encode(&buf, img, Options{}); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := "P3\n2 2\n0 1 0\n0 2 0\n0 3 0\n0 4 0\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
