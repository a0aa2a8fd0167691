package viewport

import (
	"math"
	"strconv"
)

// TileCoord identifies one tile at a given zoom level
type TileCoord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Tile is a display request for one tile image
type Tile struct {
	Coord TileCoord
	Zoom  int
	// Left and Top are in the container's local, unscaled space
	Left float64
	Top  float64
	Size float64
	Src  string
}

// Transform is applied once to the tile container: translate then scale
type Transform struct {
	TranslateX float64
	TranslateY float64
	Scale      float64
}

// CSS renders the transform as a CSS transform value
func (t Transform) CSS() string {
	return "translate(" + px(t.TranslateX) + ", " + px(t.TranslateY) + ") scale(" + num(t.Scale) + ")"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func px(v float64) string {
	return num(v) + "px"
}

// ComputeVisibleTiles returns the tiles whose footprint intersects a
// viewportWidth x viewportHeight viewport under state s, ordered by
// column then row. Indices outside [0, 2^zoom) are never returned.
func ComputeVisibleTiles(s State, tileSize int, viewportWidth, viewportHeight float64) []TileCoord {
	span := float64(tileSize) * s.Scale
	n := s.TilesPerSide()

	x0, x1 := tileRange(-s.OffsetX/span, (viewportWidth-s.OffsetX)/span, n)
	y0, y1 := tileRange(-s.OffsetY/span, (viewportHeight-s.OffsetY)/span, n)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	out := make([]TileCoord, 0, (x1-x0)*(y1-y0))
	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			out = append(out, TileCoord{X: x, Y: y})
		}
	}
	return out
}

// tileRange floors start and ceils end, clamped to [0, n). Clamping happens
// before the int conversion so extreme offsets yield an empty range.
func tileRange(start, end float64, n int) (int, int) {
	lo := math.Max(0, math.Floor(start))
	hi := math.Min(float64(n), math.Ceil(end))
	if math.IsNaN(lo) || math.IsNaN(hi) || hi <= lo {
		return 0, 0
	}
	return int(lo), int(hi)
}

// CoordinatesFor derives the world coordinate pair shown to the user
func CoordinatesFor(offsetX, offsetY, scale float64) (x, z int) {
	return int(math.Floor(-offsetX / scale)), int(math.Floor(-offsetY / scale))
}

// FormatCoordinates renders the coordinate readout text
func FormatCoordinates(x, z int) string {
	return "X: " + strconv.Itoa(x) + ", Z: " + strconv.Itoa(z)
}
