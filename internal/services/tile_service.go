package services

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dgraph-io/ristretto/v2"

	"tilemap.dev/internal/tiles"
)

// ErrTileNotFound is returned when a tile is neither on disk nor renderable
var ErrTileNotFound = errors.New("tile not found")

// Tile sources reported by TileService.GetTile
const (
	SourceDisk     = "disk"
	SourceCache    = "cache"
	SourceRendered = "rendered"
)

// TileServiceConfig configures a TileService
type TileServiceConfig struct {
	Dir        string          // pre-generated pyramid; empty disables disk lookup
	MaxZoom    int             // deepest zoom level served
	Renderer   *tiles.Renderer // renders missing tiles when non-nil
	CacheBytes int64           // rendered tile cache budget; 0 disables caching
}

// TileService serves tile images. Safe for concurrent use.
type TileService struct {
	dir      string
	maxZoom  int
	renderer *tiles.Renderer
	cache    *ristretto.Cache[string, []byte]
}

// NewTileService creates a new TileService
func NewTileService(cfg TileServiceConfig) (*TileService, error) {
	ts := &TileService{
		dir:      cfg.Dir,
		maxZoom:  cfg.MaxZoom,
		renderer: cfg.Renderer,
	}

	if cfg.Renderer != nil && cfg.CacheBytes > 0 {
		cache, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
			NumCounters: max(1000, cfg.CacheBytes/1024),
			MaxCost:     cfg.CacheBytes,
			BufferItems: 64,
		})
		if err != nil {
			return nil, fmt.Errorf("creating tile cache: %w", err)
		}
		ts.cache = cache
	}

	return ts, nil
}

// GetTile returns the JPEG bytes of a tile and where they came from
func (ts *TileService) GetTile(zoom, x, y int) ([]byte, string, error) {
	if zoom > ts.maxZoom || !tiles.InGrid(zoom, x, y) {
		return nil, "", fmt.Errorf("%w: %s", tiles.ErrOutOfRange, tiles.Path(zoom, x, y))
	}
	key := tiles.Path(zoom, x, y)

	if ts.dir != "" {
		data, err := os.ReadFile(filepath.Join(ts.dir, filepath.FromSlash(key)))
		if err == nil {
			return data, SourceDisk, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("failed to read tile %s: %w", key, err)
		}
	}

	if ts.renderer == nil {
		return nil, "", fmt.Errorf("%w: %s", ErrTileNotFound, key)
	}

	if ts.cache != nil {
		if data, ok := ts.cache.Get(key); ok {
			return data, SourceCache, nil
		}
	}

	data, err := ts.renderer.RenderJPEG(zoom, x, y)
	if err != nil {
		return nil, "", err
	}

	if ts.cache != nil {
		ts.cache.Set(key, data, int64(len(data)))
	}
	return data, SourceRendered, nil
}

// Close releases the tile cache
func (ts *TileService) Close() {
	if ts.cache != nil {
		ts.cache.Close()
	}
}
