//go:build js && wasm

// Package dom binds browser elements to the viewport and theme interfaces.
package dom

import (
	"syscall/js"

	"tilemap.dev/internal/viewport"
)

var (
	document = js.Global().Get("document")
	window   = js.Global().Get("window")
)

// Element wraps a DOM element
type Element struct {
	js.Value
}

// ByID returns the element with the given id
func ByID(id string) Element {
	return Element{document.Call("getElementById", id)}
}

// Query returns the first element matching selector
func Query(selector string) Element {
	return Element{document.Call("querySelector", selector)}
}

// Document returns the document as an event target
func Document() Element {
	return Element{document}
}

// Found reports whether the lookup matched an element
func (e Element) Found() bool {
	return !e.IsNull() && !e.IsUndefined()
}

// On registers fn for event. The returned js.Func must be kept alive for as
// long as the listener is registered.
func (e Element) On(event string, passive bool, fn func(ev js.Value)) js.Func {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	})
	e.Call("addEventListener", event, f, map[string]any{"passive": passive})
	return f
}

// TileContainer displays tiles as absolutely positioned images
type TileContainer struct {
	Element
}

func (c TileContainer) Clear() {
	c.Set("innerHTML", "")
}

func (c TileContainer) SetTransform(t viewport.Transform) {
	c.Get("style").Set("transform", t.CSS())
}

func (c TileContainer) AddTile(t viewport.Tile) {
	img := document.Call("createElement", "img")
	img.Set("className", "tile")
	img.Set("src", t.Src)

	style := img.Get("style")
	style.Set("left", px(t.Left))
	style.Set("top", px(t.Top))
	style.Set("width", px(t.Size))
	style.Set("height", px(t.Size))

	c.Call("appendChild", img)
}

// TextSink writes the coordinate readout into an element
type TextSink struct {
	Element
}

func (s TextSink) SetText(text string) {
	s.Set("textContent", text)
}

// MapSurface is the draggable map element. Its size is the browser window.
type MapSurface struct {
	Element
}

func (m MapSurface) Origin() (float64, float64) {
	rect := m.Call("getBoundingClientRect")
	return rect.Get("left").Float(), rect.Get("top").Float()
}

func (m MapSurface) Size() (float64, float64) {
	return window.Get("innerWidth").Float(), window.Get("innerHeight").Float()
}

func (m MapSurface) SetCursor(cursor string) {
	m.Get("style").Set("cursor", cursor)
}

// ClassList is an element's class list
type ClassList struct {
	Element
}

func (c ClassList) Toggle(name string) bool {
	return c.Get("classList").Call("toggle", name).Bool()
}

func (c ClassList) Contains(name string) bool {
	return c.Get("classList").Call("contains", name).Bool()
}

// Touches converts a TouchList to screen points
func Touches(list js.Value) []viewport.Point {
	n := list.Length()
	out := make([]viewport.Point, n)
	for i := 0; i < n; i++ {
		t := list.Index(i)
		out[i] = viewport.Point{X: t.Get("clientX").Float(), Y: t.Get("clientY").Float()}
	}
	return out
}

func px(v float64) string {
	return js.ValueOf(v).Call("toString").String() + "px"
}
