package viewport

import (
	"math"
	"reflect"
	"testing"
)

type fakeSurface struct {
	originX, originY float64
	width, height    float64
	cursor           string
}

func (s *fakeSurface) Origin() (float64, float64) { return s.originX, s.originY }
func (s *fakeSurface) Size() (float64, float64)   { return s.width, s.height }
func (s *fakeSurface) SetCursor(c string)         { s.cursor = c }

type fakeContainer struct {
	transform Transform
	tiles     []Tile
	clears    int
}

func (c *fakeContainer) Clear()                   { c.tiles = nil; c.clears++ }
func (c *fakeContainer) SetTransform(t Transform) { c.transform = t }
func (c *fakeContainer) AddTile(t Tile)           { c.tiles = append(c.tiles, t) }

type fakeSink struct{ text string }

func (s *fakeSink) SetText(t string) { s.text = t }

func newTestController(w, h float64) (*Controller, *fakeSurface, *fakeContainer, *fakeSink) {
	surface := &fakeSurface{width: w, height: h}
	container := &fakeContainer{}
	sink := &fakeSink{}
	c := New(DefaultConfig(), surface, container, sink)
	c.Init()
	return c, surface, container, sink
}

func checkInvariant(t *testing.T, c *Controller) {
	t.Helper()
	s := c.State()
	cfg := c.Config()
	if s.Zoom < cfg.MinZoom || s.Zoom > cfg.MaxZoom {
		t.Fatalf("zoom %d outside [%d, %d]", s.Zoom, cfg.MinZoom, cfg.MaxZoom)
	}
	if s.Scale != math.Pow(2, float64(s.Zoom)) {
		t.Fatalf("scale %v != 2^%d", s.Scale, s.Zoom)
	}
}

func TestNewDefaults(t *testing.T) {
	c, _, container, sink := newTestController(800, 600)
	s := c.State()
	if s.OffsetX != 0 || s.OffsetY != 0 || s.Zoom != 1 || s.Scale != 2 {
		t.Errorf("unexpected initial state %+v", s)
	}
	if _, ok := c.Drag().(Idle); !ok {
		t.Errorf("expected Idle, got %T", c.Drag())
	}
	if container.clears != 1 {
		t.Errorf("expected one render on Init, got %d", container.clears)
	}
	if sink.text != "X: 0, Z: 0" {
		t.Errorf("coordinates: got %q", sink.text)
	}
}

func TestZoomToClamps(t *testing.T) {
	c, _, _, _ := newTestController(800, 600)
	for _, level := range []int{-100, -1, 0, 1, 2, 3, 4, 5, 99} {
		c.ZoomTo(level)
		checkInvariant(t, c)
		want := level
		if want < 0 {
			want = 0
		}
		if want > 4 {
			want = 4
		}
		if got := c.State().Zoom; got != want {
			t.Errorf("ZoomTo(%d): got zoom %d, want %d", level, got, want)
		}
	}
}

func TestZoomToUnchangedIsNoOp(t *testing.T) {
	c, _, container, _ := newTestController(800, 600)
	before := container.clears
	c.ZoomTo(1)
	if container.clears != before {
		t.Errorf("expected no render for unchanged zoom")
	}
}

func TestZoomInOut(t *testing.T) {
	c, _, _, _ := newTestController(800, 600)
	for i := 0; i < 10; i++ {
		c.ZoomIn()
		checkInvariant(t, c)
	}
	if c.State().Zoom != 4 {
		t.Errorf("expected max zoom 4, got %d", c.State().Zoom)
	}
	for i := 0; i < 10; i++ {
		c.ZoomOut()
		checkInvariant(t, c)
	}
	if c.State().Zoom != 0 {
		t.Errorf("expected min zoom 0, got %d", c.State().Zoom)
	}
}

func TestZoomToPointSameLevelIsNoOp(t *testing.T) {
	c, surface, container, _ := newTestController(800, 600)
	surface.originX, surface.originY = 10, 20
	c.Pan(-37, 55)
	before := c.State()
	clears := container.clears

	c.ZoomToPoint(1, 123, 456)
	c.ZoomTo(4)
	c.ZoomToPoint(9, 5, 5)

	if c.State().Zoom != 4 {
		t.Fatalf("setup: expected zoom 4")
	}
	after := c.State()
	if after.OffsetX != before.OffsetX || after.OffsetY != before.OffsetY {
		t.Errorf("offset changed on clamped no-op zoom: %+v -> %+v", before, after)
	}
	if container.clears != clears+1 {
		t.Errorf("expected only the ZoomTo(4) render, got %d renders", container.clears-clears)
	}
}

func TestZoomToPointKeepsAnchor(t *testing.T) {
	tests := []struct {
		name           string
		originX        float64
		originY        float64
		panX, panY     float64
		from, to       int
		screenX, scrnY float64
	}{
		{"in from origin", 0, 0, 0, 0, 1, 2, 400, 300},
		{"out with offset", 15, 40, -250.5, 130.25, 3, 1, 77, 512},
		{"jump to max", 8, 8, 1000, -1000, 0, 4, 1, 1},
		{"jump to min", 0, 64, -4096, -333, 4, 0, 799, 599},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, surface, _, _ := newTestController(800, 600)
			surface.originX, surface.originY = tt.originX, tt.originY
			c.ZoomTo(tt.from)
			c.Pan(tt.panX, tt.panY)

			s := c.State()
			worldX := (tt.screenX - tt.originX - s.OffsetX) / s.Scale
			worldY := (tt.scrnY - tt.originY - s.OffsetY) / s.Scale

			c.ZoomToPoint(tt.to, tt.screenX, tt.scrnY)
			checkInvariant(t, c)

			s = c.State()
			if s.Zoom != tt.to {
				t.Fatalf("zoom: got %d, want %d", s.Zoom, tt.to)
			}
			gotX := tt.originX + s.OffsetX + worldX*s.Scale
			gotY := tt.originY + s.OffsetY + worldY*s.Scale
			if math.Abs(gotX-tt.screenX) > 1e-9 || math.Abs(gotY-tt.scrnY) > 1e-9 {
				t.Errorf("anchor moved: (%v, %v) -> (%v, %v)", tt.screenX, tt.scrnY, gotX, gotY)
			}
		})
	}
}

func TestPanIsUnbounded(t *testing.T) {
	c, _, container, _ := newTestController(800, 600)
	c.Pan(1e6, -1e6)
	s := c.State()
	if s.OffsetX != 1e6 || s.OffsetY != -1e6 {
		t.Errorf("unexpected offset %+v", s)
	}
	if len(container.tiles) != 0 {
		t.Errorf("expected blank viewport, got %d tiles", len(container.tiles))
	}
}

func TestComputeVisibleTilesExamples(t *testing.T) {
	// zoom 1 tiles span 512 screen px, so a 512x512 view holds exactly one
	got := ComputeVisibleTiles(NewState(0, 0, 1), 256, 512, 512)
	want := []TileCoord{{0, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("zoom 1, 512x512: got %v, want %v", got, want)
	}

	got = ComputeVisibleTiles(NewState(0, 0, 1), 256, 1024, 1024)
	want = []TileCoord{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("zoom 1, 1024x1024: got %v, want %v", got, want)
	}

	// one pixel past the first tile pulls in the next column and row
	got = ComputeVisibleTiles(NewState(0, 0, 1), 256, 513, 513)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("zoom 1, 513x513: got %v, want %v", got, want)
	}

	// unclamped end index is 4; only the single zoom 0 tile exists
	got = ComputeVisibleTiles(NewState(-200, 0, 0), 256, 800, 600)
	want = []TileCoord{{0, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("zoom 0: got %v, want %v", got, want)
	}

	// tile (0,0) spans [-300, -44] on screen and is fully off the left edge
	if got := ComputeVisibleTiles(NewState(-300, 0, 0), 256, 800, 600); len(got) != 0 {
		t.Errorf("zoom 0 panned past tile: got %v, want none", got)
	}
}

func TestComputeVisibleTilesStaysInGrid(t *testing.T) {
	offsets := []float64{-1e12, -70000, -5000, -511, -256, -1, 0, 0.5, 255, 4096, 1e12}
	for zoom := 0; zoom <= 4; zoom++ {
		for _, ox := range offsets {
			for _, oy := range offsets {
				s := NewState(ox, oy, zoom)
				n := s.TilesPerSide()
				for _, tc := range ComputeVisibleTiles(s, 256, 1920, 1080) {
					if tc.X < 0 || tc.Y < 0 || tc.X >= n || tc.Y >= n {
						t.Fatalf("zoom %d offset (%v, %v): tile %v outside grid of %d", zoom, ox, oy, tc, n)
					}
				}
			}
		}
	}
}

func TestComputeVisibleTilesPartialView(t *testing.T) {
	// zoom 2: span 1024px per tile, 4 tiles per side
	got := ComputeVisibleTiles(NewState(-1500, -100, 2), 256, 600, 600)
	want := []TileCoord{{1, 0}, {2, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRenderPositionsTilesUnscaled(t *testing.T) {
	c, _, container, _ := newTestController(1024, 1024)

	if container.transform != (Transform{TranslateX: 0, TranslateY: 0, Scale: 2}) {
		t.Errorf("unexpected transform %+v", container.transform)
	}
	if len(container.tiles) != 4 {
		t.Fatalf("expected 4 tiles, got %d", len(container.tiles))
	}
	for _, tile := range container.tiles {
		if tile.Left != float64(tile.Coord.X*256) || tile.Top != float64(tile.Coord.Y*256) {
			t.Errorf("tile %v positioned at (%v, %v)", tile.Coord, tile.Left, tile.Top)
		}
		if tile.Size != 256 {
			t.Errorf("tile size %v", tile.Size)
		}
	}
	if src := container.tiles[1].Src; src != "tiles/1/0_1.jpg" {
		t.Errorf("src: got %q", src)
	}

	c.Pan(10, 10)
	if container.clears != 2 {
		t.Errorf("expected container cleared on every render, got %d", container.clears)
	}
}

func TestTransformCSS(t *testing.T) {
	tr := Transform{TranslateX: -300, TranslateY: 12.5, Scale: 4}
	if got := tr.CSS(); got != "translate(-300px, 12.5px) scale(4)" {
		t.Errorf("got %q", got)
	}
}

func TestCoordinatesAccumulateAcrossPans(t *testing.T) {
	c, _, _, sink := newTestController(800, 600)
	c.ZoomTo(2)
	var sumX, sumY float64
	for _, d := range []struct{ dx, dy float64 }{{-3, 7}, {-10, -1}, {5.5, 2}, {-100, 33}, {0.25, -0.75}} {
		c.Pan(d.dx, d.dy)
		sumX += d.dx
		sumY += d.dy

		wantX := int(math.Floor(-sumX / 4))
		wantZ := int(math.Floor(-sumY / 4))
		gotX, gotZ := c.Coordinates()
		if gotX != wantX || gotZ != wantZ {
			t.Errorf("after pan to (%v, %v): got (%d, %d), want (%d, %d)", sumX, sumY, gotX, gotZ, wantX, wantZ)
		}
		if sink.text != FormatCoordinates(wantX, wantZ) {
			t.Errorf("readout %q", sink.text)
		}
	}
}

func TestCoordinatesFor(t *testing.T) {
	x, z := CoordinatesFor(-300, 45, 2)
	if x != 150 || z != -23 {
		t.Errorf("got (%d, %d)", x, z)
	}
}

func TestDragStateMachine(t *testing.T) {
	c, surface, _, _ := newTestController(800, 600)

	c.PointerMove(50, 50)
	if s := c.State(); s.OffsetX != 0 || s.OffsetY != 0 {
		t.Fatalf("move while idle panned: %+v", s)
	}

	c.PointerDown(100, 100)
	if surface.cursor != CursorGrabbing {
		t.Errorf("cursor: got %q", surface.cursor)
	}
	c.PointerMove(110, 95)
	c.PointerMove(130, 90)
	if s := c.State(); s.OffsetX != 30 || s.OffsetY != -10 {
		t.Errorf("drag offset: %+v", s)
	}
	if d, ok := c.Drag().(Dragging); !ok || d.LastX != 130 || d.LastY != 90 {
		t.Errorf("drag state: %#v", c.Drag())
	}

	c.PointerUp()
	if surface.cursor != CursorGrab {
		t.Errorf("cursor: got %q", surface.cursor)
	}
	c.PointerMove(500, 500)
	if s := c.State(); s.OffsetX != 30 || s.OffsetY != -10 {
		t.Errorf("move after release panned: %+v", s)
	}
}

func TestTouchIgnoresMultiTouch(t *testing.T) {
	c, _, _, _ := newTestController(800, 600)

	c.TouchStart([]Point{{10, 10}, {20, 20}})
	c.TouchMove([]Point{{30, 30}})
	if s := c.State(); s.OffsetX != 0 || s.OffsetY != 0 {
		t.Fatalf("pan without single-touch start: %+v", s)
	}

	c.TouchStart([]Point{{10, 10}})
	c.TouchMove([]Point{{15, 30}})
	c.TouchMove([]Point{{100, 100}, {0, 0}})
	c.TouchMove([]Point{{20, 20}})
	if s := c.State(); s.OffsetX != 10 || s.OffsetY != 10 {
		t.Errorf("touch offset: %+v", s)
	}

	c.TouchEnd()
	c.TouchMove([]Point{{90, 90}})
	if s := c.State(); s.OffsetX != 10 || s.OffsetY != 10 {
		t.Errorf("move after touch end panned: %+v", s)
	}
}

func TestWheelZoomsAtPointer(t *testing.T) {
	c, _, _, _ := newTestController(800, 600)
	c.Wheel(-120, 200, 200)
	if c.State().Zoom != 2 {
		t.Fatalf("wheel up: zoom %d", c.State().Zoom)
	}
	// world point 100 at zoom 1 stays under screen 200 at zoom 2
	if s := c.State(); s.OffsetX != -200 || s.OffsetY != -200 {
		t.Errorf("offset after wheel: %+v", s)
	}
	c.Wheel(120, 200, 200)
	if s := c.State(); s.Zoom != 1 || s.OffsetX != 0 || s.OffsetY != 0 {
		t.Errorf("wheel down did not invert: %+v", s)
	}
}

func TestCustomTileURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TileURL = func(zoom, x, y int) string { return "/cdn/" + FormatCoordinates(x, y) }
	container := &fakeContainer{}
	c := New(cfg, &fakeSurface{width: 256, height: 256}, container, &fakeSink{})
	c.Render()
	if len(container.tiles) != 1 || container.tiles[0].Src != "/cdn/X: 0, Z: 0" {
		t.Errorf("unexpected tiles %+v", container.tiles)
	}
}

func TestSecondFingerEndsDrag(t *testing.T) {
	c, _, _, _ := newTestController(800, 600)

	c.TouchStart([]Point{{10, 10}})
	c.TouchMove([]Point{{20, 10}})
	c.TouchStart([]Point{{20, 10}, {200, 200}})
	if _, ok := c.Drag().(Idle); !ok {
		t.Fatalf("expected idle after second touch, got %#v", c.Drag())
	}

	c.TouchMove([]Point{{80, 80}})
	if s := c.State(); s.OffsetX != 10 || s.OffsetY != 0 {
		t.Errorf("single finger kept panning after pinch began: %+v", s)
	}
}
