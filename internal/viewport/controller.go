package viewport

// Container is the positionable, scalable element tiles are displayed in
type Container interface {
	// Clear discards every tile previously added
	Clear()
	SetTransform(t Transform)
	AddTile(t Tile)
}

// CoordinateSink displays the world coordinate readout
type CoordinateSink interface {
	SetText(text string)
}

// Surface is the draggable map surface that receives input
type Surface interface {
	// Origin is the top-left corner of the surface in screen space
	Origin() (x, y float64)
	// Size is the pixel size of the visible viewport
	Size() (width, height float64)
	SetCursor(cursor string)
}

// Controller owns the viewport transform and keeps the display in sync with it
type Controller struct {
	cfg       Config
	state     State
	drag      DragState
	surface   Surface
	container Container
	coords    CoordinateSink
}

// New creates a Controller at offset (0, 0) and the configured default zoom.
// Nothing is displayed until Init is called.
func New(cfg Config, surface Surface, container Container, coords CoordinateSink) *Controller {
	return &Controller{
		cfg:       cfg,
		state:     NewState(0, 0, cfg.Clamp(cfg.DefaultZoom)),
		drag:      Idle{},
		surface:   surface,
		container: container,
		coords:    coords,
	}
}

// Init performs the first render and coordinate update
func (c *Controller) Init() {
	c.refresh()
}

// State returns a copy of the current transform
func (c *Controller) State() State {
	return c.state
}

// Drag returns the current drag session state
func (c *Controller) Drag() DragState {
	return c.drag
}

// Config returns the viewer parameters
func (c *Controller) Config() Config {
	return c.cfg
}

// ZoomTo sets the zoom level, clamped to the configured range
func (c *Controller) ZoomTo(level int) {
	level = c.cfg.Clamp(level)
	if level == c.state.Zoom {
		return
	}
	c.setZoom(level)
	c.refresh()
}

// ZoomIn zooms in one level
func (c *Controller) ZoomIn() {
	if c.state.Zoom < c.cfg.MaxZoom {
		c.ZoomTo(c.state.Zoom + 1)
	}
}

// ZoomOut zooms out one level
func (c *Controller) ZoomOut() {
	if c.state.Zoom > c.cfg.MinZoom {
		c.ZoomTo(c.state.Zoom - 1)
	}
}

// ZoomToPoint changes the zoom level while keeping the map point under
// (screenX, screenY) at the same screen position.
func (c *Controller) ZoomToPoint(level int, screenX, screenY float64) {
	oldZoom := c.state.Zoom
	level = c.cfg.Clamp(level)
	if level == oldZoom {
		return
	}

	ox, oy := c.surface.Origin()
	relX := screenX - ox - c.state.OffsetX
	relY := screenY - oy - c.state.OffsetY

	c.setZoom(level)

	factor := ScaleFor(level - oldZoom)
	c.state.OffsetX = screenX - ox - relX*factor
	c.state.OffsetY = screenY - oy - relY*factor

	c.refresh()
}

// Pan moves the map by (dx, dy) screen pixels. The offset is not bounded;
// panning past the grid leaves the viewport blank.
func (c *Controller) Pan(dx, dy float64) {
	c.state.OffsetX += dx
	c.state.OffsetY += dy
	c.refresh()
}

// VisibleTiles returns the tiles intersecting the surface at the current transform
func (c *Controller) VisibleTiles() []TileCoord {
	w, h := c.surface.Size()
	return ComputeVisibleTiles(c.state, c.cfg.TileSize, w, h)
}

// Render replaces the container contents with the currently visible tiles.
// Tiles are positioned in unscaled space; scale is applied to the container.
func (c *Controller) Render() {
	c.container.Clear()
	c.container.SetTransform(Transform{
		TranslateX: c.state.OffsetX,
		TranslateY: c.state.OffsetY,
		Scale:      c.state.Scale,
	})

	size := float64(c.cfg.TileSize)
	for _, tc := range c.VisibleTiles() {
		c.container.AddTile(Tile{
			Coord: tc,
			Zoom:  c.state.Zoom,
			Left:  float64(tc.X) * size,
			Top:   float64(tc.Y) * size,
			Size:  size,
			Src:   c.cfg.tileURL(c.state.Zoom, tc.X, tc.Y),
		})
	}
}

// Coordinates returns the world coordinates at the current transform
func (c *Controller) Coordinates() (x, z int) {
	return CoordinatesFor(c.state.OffsetX, c.state.OffsetY, c.state.Scale)
}

// UpdateCoordinates writes the coordinate readout
func (c *Controller) UpdateCoordinates() {
	c.coords.SetText(FormatCoordinates(c.Coordinates()))
}

func (c *Controller) setZoom(level int) {
	c.state.Zoom = level
	c.state.Scale = ScaleFor(level)
}

func (c *Controller) refresh() {
	c.Render()
	c.UpdateCoordinates()
}
