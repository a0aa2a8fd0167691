package models

// MapManifest describes the tile pyramid to the viewer
type MapManifest struct {
	TileSize    int    `json:"tile_size"`
	MinZoom     int    `json:"min_zoom"`
	MaxZoom     int    `json:"max_zoom"`
	DefaultZoom int    `json:"default_zoom"`
	TilePath    string `json:"tile_path"` // e.g. "tiles/{z}/{x}_{y}.jpg"
	Theme       Theme  `json:"theme"`
}

// Theme names the marker classes the page toggles between
type Theme struct {
	LightClass string `json:"light_class"`
	DarkClass  string `json:"dark_class"`
}

// Position is a world coordinate as shown in the readout
type Position struct {
	X int `json:"x"`
	Z int `json:"z"`
}

// VisibleTile is one tile the viewer would request
type VisibleTile struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Left int    `json:"left"`
	Top  int    `json:"top"`
	Src  string `json:"src"`
}

// ViewportData is a server-side snapshot of the viewer for a given transform
type ViewportData struct {
	Zoom        int           `json:"zoom"`
	Scale       float64       `json:"scale"`
	OffsetX     float64       `json:"offset_x"`
	OffsetY     float64       `json:"offset_y"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Transform   string        `json:"transform"`
	Tiles       []VisibleTile `json:"tiles"`
	Coordinates Position      `json:"coordinates"`
	Readout     string        `json:"readout"`
}
