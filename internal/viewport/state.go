// Package viewport holds the pan/zoom transform of the tile map viewer and
// computes which tiles are visible through it.
//
// A Controller owns a single mutable State and is driven synchronously by
// input handlers. Display is delegated to the Container, CoordinateSink and
// Surface it is constructed with, so the transform math runs without any
// live display.
package viewport

import (
	"math"

	"tilemap.dev/internal/tiles"
)

// State is the viewport transform
type State struct {
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
	Zoom    int     `json:"zoom"`
	Scale   float64 `json:"scale"`
}

// NewState returns a state at the given offset and zoom with Scale derived from zoom
func NewState(offsetX, offsetY float64, zoom int) State {
	return State{OffsetX: offsetX, OffsetY: offsetY, Zoom: zoom, Scale: ScaleFor(zoom)}
}

// TilesPerSide returns the grid edge length at the state's zoom level
func (s State) TilesPerSide() int {
	return tiles.PerSide(s.Zoom)
}

// ScaleFor returns 2^zoom
func ScaleFor(zoom int) float64 {
	return math.Ldexp(1, zoom)
}

// Config holds the fixed parameters of a viewer
type Config struct {
	TileSize    int `json:"tile_size" koanf:"tile_size"`
	MinZoom     int `json:"min_zoom" koanf:"min_zoom"`
	MaxZoom     int `json:"max_zoom" koanf:"max_zoom"`
	DefaultZoom int `json:"default_zoom" koanf:"default_zoom"`

	// TileURL addresses a tile image; tiles.URL when nil.
	TileURL func(zoom, x, y int) string `json:"-" koanf:"-"`
}

// DefaultConfig returns the stock viewer parameters
func DefaultConfig() Config {
	return Config{
		TileSize:    tiles.Size,
		MinZoom:     0,
		MaxZoom:     4,
		DefaultZoom: 1,
	}
}

// Clamp limits a zoom level to [MinZoom, MaxZoom]
func (c Config) Clamp(level int) int {
	if level < c.MinZoom {
		return c.MinZoom
	}
	if level > c.MaxZoom {
		return c.MaxZoom
	}
	return level
}

func (c Config) tileURL(zoom, x, y int) string {
	if c.TileURL != nil {
		return c.TileURL(zoom, x, y)
	}
	return tiles.URL(zoom, x, y)
}
