package imgio

// Image is the intermediate representation passed from the decoder to the
// text encoder. Pixels are stored as interleaved R,G,B,A bytes (4 bytes per
// pixel, row-major order).
type Image struct {
	Width  int
	Height int
	Pix    []byte // len = Width * Height * 4
}

// At returns the four channel values of the pixel at (x, y).
func (m *Image) At(x, y int) (r, g, b, a uint8) {
	i := (y*m.Width + x) * 4
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2], m.Pix[i+3]
}
