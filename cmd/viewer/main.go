//go:build js && wasm

// Command viewer is the browser tile map viewer, built with
// GOOS=js GOARCH=wasm and loaded by static/index.html.
package main

import (
	"syscall/js"

	"tilemap.dev/internal/dom"
	"tilemap.dev/internal/models"
	"tilemap.dev/internal/theme"
	"tilemap.dev/internal/viewport"
)

func main() {
	var manifest models.MapManifest
	dom.FetchJSON("api/map", &manifest, func(err error) {
		cfg := viewport.DefaultConfig()
		classes := theme.DefaultClasses()
		if err != nil {
			js.Global().Get("console").Call("warn", "map manifest unavailable, using defaults: "+err.Error())
		} else {
			cfg.TileSize = manifest.TileSize
			cfg.MinZoom = manifest.MinZoom
			cfg.MaxZoom = manifest.MaxZoom
			cfg.DefaultZoom = manifest.DefaultZoom
			classes = theme.Classes{Light: manifest.Theme.LightClass, Dark: manifest.Theme.DarkClass}
		}
		start(cfg, classes)
	})

	select {}
}

// listeners keeps every registered callback reachable for the page's lifetime
var listeners []js.Func

func start(cfg viewport.Config, classes theme.Classes) {
	mapEl := dom.MapSurface{Element: dom.ByID("map")}
	ctrl := viewport.New(cfg,
		mapEl,
		dom.TileContainer{Element: dom.ByID("tile-container")},
		dom.TextSink{Element: dom.ByID("coordinates")},
	)

	on := func(el dom.Element, event string, passive bool, fn func(ev js.Value)) {
		if el.Found() {
			listeners = append(listeners, el.On(event, passive, fn))
		}
	}
	doc := dom.Document()

	on(dom.ByID("zoom-in"), "click", true, func(js.Value) { ctrl.ZoomIn() })
	on(dom.ByID("zoom-out"), "click", true, func(js.Value) { ctrl.ZoomOut() })

	on(mapEl.Element, "wheel", false, func(ev js.Value) {
		ev.Call("preventDefault")
		ctrl.Wheel(ev.Get("deltaY").Float(), ev.Get("clientX").Float(), ev.Get("clientY").Float())
	})

	on(mapEl.Element, "mousedown", true, func(ev js.Value) {
		ctrl.PointerDown(ev.Get("clientX").Float(), ev.Get("clientY").Float())
	})
	on(doc, "mousemove", true, func(ev js.Value) {
		ctrl.PointerMove(ev.Get("clientX").Float(), ev.Get("clientY").Float())
	})
	on(doc, "mouseup", true, func(js.Value) { ctrl.PointerUp() })

	on(mapEl.Element, "touchstart", true, func(ev js.Value) {
		ctrl.TouchStart(dom.Touches(ev.Get("touches")))
	})
	on(mapEl.Element, "touchmove", false, func(ev js.Value) {
		touches := dom.Touches(ev.Get("touches"))
		if len(touches) == 1 {
			ev.Call("preventDefault")
		}
		ctrl.TouchMove(touches)
	})
	on(mapEl.Element, "touchend", true, func(js.Value) { ctrl.TouchEnd() })
	on(mapEl.Element, "touchcancel", true, func(js.Value) { ctrl.TouchEnd() })

	if page := dom.Query(".page"); page.Found() {
		switcher := theme.NewSwitcher(dom.ClassList{Element: page}, classes)
		if switcher.Mode() == theme.Unknown {
			switcher.Set(theme.Light)
		}
		on(dom.Query(".theme"), "click", true, func(js.Value) { switcher.Toggle() })
	}

	ctrl.Init()
}
