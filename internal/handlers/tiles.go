package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"tilemap.dev/internal/services"
	"tilemap.dev/internal/tiles"
)

// TileHandler serves tile images
type TileHandler struct {
	tileService *services.TileService
	logger      *log.Logger
}

// NewTileHandler creates a new TileHandler
func NewTileHandler(ts *services.TileService, logger *log.Logger) *TileHandler {
	return &TileHandler{tileService: ts, logger: logger}
}

// GetTile handles GET /tiles/{zoom}/{x}_{y}.jpg
func (h *TileHandler) GetTile(w http.ResponseWriter, r *http.Request) {
	zoom, err := strconv.Atoi(chi.URLParam(r, "zoom"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid zoom level")
		return
	}

	x, y, err := tiles.ParseName(chi.URLParam(r, "name"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, source, err := h.tileService.GetTile(zoom, x, y)
	switch {
	case errors.Is(err, tiles.ErrOutOfRange), errors.Is(err, services.ErrTileNotFound):
		respondError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		h.logger.Error("serving tile", "zoom", zoom, "x", x, "y", y, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load tile")
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("X-Tile-Source", source)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
