package viewport

// DragState is either Idle or Dragging
type DragState interface {
	dragState()
}

// Idle ignores pointer movement
type Idle struct{}

// Dragging forwards pointer movement relative to the last position to Pan
type Dragging struct {
	LastX float64
	LastY float64
}

func (Idle) dragState()     {}
func (Dragging) dragState() {}

// Point is a screen position of a pointer or touch
type Point struct {
	X float64
	Y float64
}

const (
	CursorGrab     = "grab"
	CursorGrabbing = "grabbing"
)

// PointerDown starts a drag session at (x, y)
func (c *Controller) PointerDown(x, y float64) {
	c.drag = Dragging{LastX: x, LastY: y}
	c.surface.SetCursor(CursorGrabbing)
}

// PointerMove pans by the movement since the last pointer position while dragging
func (c *Controller) PointerMove(x, y float64) {
	c.dragTo(x, y)
}

// PointerUp ends any drag session
func (c *Controller) PointerUp() {
	c.drag = Idle{}
	c.surface.SetCursor(CursorGrab)
}

// TouchStart starts a drag session for single-finger gestures. Any other
// touch count ends the session.
func (c *Controller) TouchStart(touches []Point) {
	if len(touches) != 1 {
		// a second finger ends the pan; lifting back to one does not resume it
		c.drag = Idle{}
		return
	}
	c.drag = Dragging{LastX: touches[0].X, LastY: touches[0].Y}
}

// TouchMove pans for single-finger gestures; multi-touch is ignored
func (c *Controller) TouchMove(touches []Point) {
	if len(touches) != 1 {
		return
	}
	c.dragTo(touches[0].X, touches[0].Y)
}

// TouchEnd ends any drag session
func (c *Controller) TouchEnd() {
	c.drag = Idle{}
}

func (c *Controller) dragTo(x, y float64) {
	d, ok := c.drag.(Dragging)
	if !ok {
		return
	}
	c.drag = Dragging{LastX: x, LastY: y}
	c.Pan(x-d.LastX, y-d.LastY)
}

// Wheel zooms one level at the pointer: out for positive deltaY, in otherwise
func (c *Controller) Wheel(deltaY, x, y float64) {
	step := 1
	if deltaY > 0 {
		step = -1
	}
	c.ZoomToPoint(c.state.Zoom+step, x, y)
}
