package tiles

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Quality is the JPEG quality tiles are encoded with
const Quality = 85

// Renderer cuts tiles out of a region. It is read-only after construction
// and safe for concurrent use.
type Renderer struct {
	region *Region
	img    *image.RGBA
}

// NewRenderer rasterizes region with palette
func NewRenderer(region *Region, palette Palette) *Renderer {
	img := image.NewRGBA(image.Rect(0, 0, region.Size, region.Size))
	for y := 0; y < region.Size; y++ {
		for x := 0; x < region.Size; x++ {
			img.SetRGBA(x, y, palette[region.At(x, y)])
		}
	}
	return &Renderer{region: region, img: img}
}

// Render returns the Size x Size image for tile (x, y) at zoom. At zoom z the
// region is split into 2^z x 2^z equal squares.
func (r *Renderer) Render(zoom, x, y int) (image.Image, error) {
	if !InGrid(zoom, x, y) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfRange, Path(zoom, x, y))
	}

	span := float64(r.region.Size) / float64(PerSide(zoom))
	k := Size / span
	x0 := float64(x) * span
	y0 := float64(y) * span

	dst := image.NewRGBA(image.Rect(0, 0, Size, Size))
	s2d := f64.Aff3{
		k, 0, -x0 * k,
		0, k, -y0 * k,
	}
	draw.NearestNeighbor.Transform(dst, s2d, r.img, r.img.Bounds(), draw.Src, nil)
	return dst, nil
}

// RenderJPEG renders and encodes a tile
func (r *Renderer) RenderJPEG(zoom, x, y int) ([]byte, error) {
	img, err := r.Render(zoom, x, y)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes img as a tile JPEG
func Encode(w io.Writer, img image.Image) error {
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: Quality}); err != nil {
		return fmt.Errorf("encoding tile: %w", err)
	}
	return nil
}
