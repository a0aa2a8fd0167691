package tiles

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Size is the edge length of every tile image in pixels
const Size = 256

// Ext is the file extension of tile images
const Ext = ".jpg"

// MaxLevel bounds zoom levels accepted anywhere tiles are addressed
const MaxLevel = 20

var (
	// ErrBadName is returned when a tile file name is not of the form {x}_{y}.jpg
	ErrBadName = errors.New("malformed tile name")
	// ErrOutOfRange is returned for tile coordinates outside the grid of a zoom level
	ErrOutOfRange = errors.New("tile out of range")
)

// Name returns the file name of a tile within its zoom directory
func Name(x, y int) string {
	return strconv.Itoa(x) + "_" + strconv.Itoa(y) + Ext
}

// Path returns the tile path relative to the tile root: {zoom}/{x}_{y}.jpg
func Path(zoom, x, y int) string {
	return strconv.Itoa(zoom) + "/" + Name(x, y)
}

// URL returns the path the viewer requests for a tile: tiles/{zoom}/{x}_{y}.jpg
func URL(zoom, x, y int) string {
	return "tiles/" + Path(zoom, x, y)
}

// ParseName parses a tile file name of the form {x}_{y}.jpg
func ParseName(name string) (x, y int, err error) {
	base, ok := strings.CutSuffix(name, Ext)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadName, name)
	}
	xs, ys, ok := strings.Cut(base, "_")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadName, name)
	}
	if x, err = strconv.Atoi(xs); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadName, name)
	}
	if y, err = strconv.Atoi(ys); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadName, name)
	}
	return x, y, nil
}

// PerSide returns the number of tiles along one edge of the grid at a zoom level
func PerSide(zoom int) int {
	if zoom < 0 {
		return 0
	}
	return 1 << zoom
}

// InGrid reports whether (x, y) addresses a tile at the given zoom level
func InGrid(zoom, x, y int) bool {
	if zoom < 0 || zoom > MaxLevel {
		return false
	}
	n := PerSide(zoom)
	return x >= 0 && y >= 0 && x < n && y < n
}
