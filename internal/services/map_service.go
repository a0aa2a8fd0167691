package services

import (
	"tilemap.dev/internal/models"
	"tilemap.dev/internal/theme"
	"tilemap.dev/internal/viewport"
)

// MapService describes the map to clients and computes viewport snapshots
type MapService struct {
	viewer viewport.Config
	theme  theme.Classes
}

// NewMapService creates a new MapService
func NewMapService(viewer viewport.Config, classes theme.Classes) *MapService {
	return &MapService{viewer: viewer, theme: classes}
}

// GetManifest returns the parameters the viewer is constructed with
func (s *MapService) GetManifest() *models.MapManifest {
	return &models.MapManifest{
		TileSize:    s.viewer.TileSize,
		MinZoom:     s.viewer.MinZoom,
		MaxZoom:     s.viewer.MaxZoom,
		DefaultZoom: s.viewer.DefaultZoom,
		TilePath:    "tiles/{z}/{x}_{y}.jpg",
		Theme: models.Theme{
			LightClass: s.theme.Light,
			DarkClass:  s.theme.Dark,
		},
	}
}

// GetViewport runs the viewer against an off-screen surface of the given
// size and reports what it would display at zoom and offset.
func (s *MapService) GetViewport(zoom int, offsetX, offsetY float64, width, height int) *models.ViewportData {
	surface := &snapshotSurface{width: float64(width), height: float64(height)}
	container := &snapshotContainer{}
	readout := &snapshotText{}

	ctrl := viewport.New(s.viewer, surface, container, readout)
	ctrl.ZoomTo(zoom)
	ctrl.Pan(offsetX, offsetY)

	state := ctrl.State()
	x, z := ctrl.Coordinates()
	data := &models.ViewportData{
		Zoom:        state.Zoom,
		Scale:       state.Scale,
		OffsetX:     state.OffsetX,
		OffsetY:     state.OffsetY,
		Width:       width,
		Height:      height,
		Transform:   container.transform.CSS(),
		Tiles:       make([]models.VisibleTile, 0, len(container.tiles)),
		Coordinates: models.Position{X: x, Z: z},
		Readout:     readout.text,
	}
	for _, t := range container.tiles {
		data.Tiles = append(data.Tiles, models.VisibleTile{
			X:    t.Coord.X,
			Y:    t.Coord.Y,
			Left: int(t.Left),
			Top:  int(t.Top),
			Src:  t.Src,
		})
	}
	return data
}

type snapshotSurface struct {
	width, height float64
}

func (s *snapshotSurface) Origin() (float64, float64) { return 0, 0 }
func (s *snapshotSurface) Size() (float64, float64)   { return s.width, s.height }
func (s *snapshotSurface) SetCursor(string)           {}

type snapshotContainer struct {
	transform viewport.Transform
	tiles     []viewport.Tile
}

func (c *snapshotContainer) Clear()                            { c.tiles = c.tiles[:0] }
func (c *snapshotContainer) SetTransform(t viewport.Transform) { c.transform = t }
func (c *snapshotContainer) AddTile(t viewport.Tile)           { c.tiles = append(c.tiles, t) }

type snapshotText struct {
	text string
}

func (t *snapshotText) SetText(s string) { t.text = s }
