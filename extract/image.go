package extract

import (
	"bytes"
	"fmt"
	"image"

	// Decoders for intrinsic-dimension sniffing in ImageResourceFromBytes.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/stratapdf/strata/model"
)

// ImageResource describes an XObject image available to the Do operator:
// its intrinsic pixel dimensions and, optionally, the encoded bytes for
// downstream embedding.
type ImageResource struct {
	Width  int
	Height int
	Format string // "png", "jpeg", "tiff", ...
	Data   []byte
}

// ImageResourceFromBytes builds an ImageResource by sniffing the encoded
// image's format and dimensions. PNG, JPEG, GIF, TIFF, BMP, and WebP are
// recognized.
func ImageResourceFromBytes(data []byte) (ImageResource, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ImageResource{}, fmt.Errorf("sniff image: %w", err)
	}
	return ImageResource{
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: format,
		Data:   data,
	}, nil
}

// ExtractedImage is one placed image, produced per Do operator naming a
// registered resource. Bounds are the CTM-mapped unit square in output
// space.
type ExtractedImage struct {
	Name        string
	Bounds      model.BBox
	Transform   model.Matrix
	PixelWidth  int
	PixelHeight int
	Format      string
	Data        []byte
	// Seq is the emission sequence number, shared with texts and paths.
	Seq int
}

// makeImage places a resource on the page. A PDF image occupies the unit
// square in its own space; its device footprint is that square through
// the CTM, flipped into output space.
func makeImage(name string, res ImageResource, ctm model.Matrix, pageHeight float64) ExtractedImage {
	acc := newBoundsAccumulator()
	for _, corner := range [4]model.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}} {
		x, y := mapPoint(ctm, pageHeight, corner.X, corner.Y)
		acc.add(x, y)
	}

	return ExtractedImage{
		Name:        name,
		Bounds:      acc.bbox(),
		Transform:   ctm,
		PixelWidth:  res.Width,
		PixelHeight: res.Height,
		Format:      res.Format,
		Data:        res.Data,
	}
}
