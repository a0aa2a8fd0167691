package preview

import (
	"tilemap.dev/internal/viewport"
)

// Pixel size of one terminal cell. Cells are roughly twice as tall as wide.
const (
	cellWidth  = 8
	cellHeight = 16
)

// termSurface is the map area of the terminal, measured in screen pixels
type termSurface struct {
	cols, rows int
	cursor     string
}

func (s *termSurface) Origin() (float64, float64) { return 0, 0 }

func (s *termSurface) Size() (float64, float64) {
	return float64(s.cols * cellWidth), float64(s.rows * cellHeight)
}

func (s *termSurface) SetCursor(c string) { s.cursor = c }

// cellCenter converts a terminal cell to the screen pixel at its center
func cellCenter(col, row int) (float64, float64) {
	return float64(col*cellWidth) + cellWidth/2, float64(row*cellHeight) + cellHeight/2
}

// gridContainer records the last render pass
type gridContainer struct {
	transform viewport.Transform
	tiles     map[viewport.TileCoord]viewport.Tile
}

func newGridContainer() *gridContainer {
	return &gridContainer{tiles: make(map[viewport.TileCoord]viewport.Tile)}
}

func (g *gridContainer) Clear() {
	clear(g.tiles)
}

func (g *gridContainer) SetTransform(t viewport.Transform) { g.transform = t }

func (g *gridContainer) AddTile(t viewport.Tile) { g.tiles[t.Coord] = t }

// tileAt returns the displayed tile covering screen pixel (px, py)
func (g *gridContainer) tileAt(px, py, tileSize float64) (viewport.Tile, bool) {
	if g.transform.Scale == 0 {
		return viewport.Tile{}, false
	}
	lx := (px - g.transform.TranslateX) / g.transform.Scale
	ly := (py - g.transform.TranslateY) / g.transform.Scale
	if lx < 0 || ly < 0 {
		return viewport.Tile{}, false
	}
	t, ok := g.tiles[viewport.TileCoord{X: int(lx / tileSize), Y: int(ly / tileSize)}]
	return t, ok
}

type readout struct {
	text string
}

func (r *readout) SetText(s string) { r.text = s }
