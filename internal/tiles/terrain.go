package tiles

import "image/color"

// Terrain classifies one cell of the region
type Terrain uint8

const (
	DeepWater Terrain = iota
	Water
	Sand
	Grass
	Forest
	Dirt
	Rock
	Snow
)

var terrainNames = [...]string{"deep_water", "water", "sand", "grass", "forest", "dirt", "rock", "snow"}

func (t Terrain) String() string {
	if int(t) < len(terrainNames) {
		return terrainNames[t]
	}
	return "unknown"
}

// Palette maps each terrain class to its tile color
type Palette [len(terrainNames)]color.RGBA

// DefaultPalette returns the standard map colors
func DefaultPalette() Palette {
	return Palette{
		DeepWater: {0, 0, 160, 255},
		Water:     {0, 0, 255, 255},
		Sand:      {222, 204, 140, 255},
		Grass:     {34, 139, 34, 255},
		Forest:    {18, 92, 30, 255},
		Dirt:      {139, 69, 19, 255},
		Rock:      {120, 120, 120, 255},
		Snow:      {255, 255, 255, 255},
	}
}

// Classify picks a terrain class from elevation and moisture, both in [0, 1]
func Classify(elev, moist float64) Terrain {
	switch {
	case elev < 0.22:
		return DeepWater
	case elev < 0.30:
		return Water
	case elev < 0.34:
		return Sand
	case elev < 0.62:
		if moist > 0.55 {
			return Forest
		}
		return Grass
	case elev < 0.70:
		return Dirt
	case elev < 0.80:
		return Rock
	default:
		return Snow
	}
}
