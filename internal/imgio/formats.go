package imgio

// Register every input format the converter accepts with the stdlib image
// registry. Decoding dispatches on magic bytes via image.Decode.
import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/dolanor/qoi"
	_ "github.com/jbuchbinder/gopnm"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)
