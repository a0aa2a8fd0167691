package handlers

import (
	"math"
	"net/http"
	"strconv"

	"tilemap.dev/internal/services"
)

// MapHandler handles map description endpoints
type MapHandler struct {
	mapService  *services.MapService
	defaultZoom int
}

// NewMapHandler creates a new MapHandler
func NewMapHandler(ms *services.MapService, defaultZoom int) *MapHandler {
	return &MapHandler{mapService: ms, defaultZoom: defaultZoom}
}

// GetManifest handles GET /api/map
func (h *MapHandler) GetManifest(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.mapService.GetManifest())
}

// GetView handles GET /api/view?zoom=&x=&y=&width=&height=
func (h *MapHandler) GetView(w http.ResponseWriter, r *http.Request) {
	zoom := parseIntParam(r, "zoom", h.defaultZoom)
	x := parseFloatParam(r, "x", 0)
	y := parseFloatParam(r, "y", 0)

	// Clamp to reasonable values
	width := clamp(parseIntParam(r, "width", 800), 1, 8192)
	height := clamp(parseIntParam(r, "height", 600), 1, 8192)

	respondJSON(w, http.StatusOK, h.mapService.GetViewport(zoom, x, y, width, height))
}

// parseIntParam parses an integer query parameter with a default value
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// parseFloatParam parses a finite float query parameter with a default value
func parseFloatParam(r *http.Request, name string, defaultVal float64) float64 {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return defaultVal
	}
	return f
}

// clamp limits a value to a range
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
