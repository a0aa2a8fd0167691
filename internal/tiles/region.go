package tiles

import "fmt"

// DefaultRegionSize is the edge length of a generated region in cells
const DefaultRegionSize = 512

// Region is a square terrain map that the tile pyramid is cut from
type Region struct {
	Size  int
	Cells []Terrain // row-major, Size*Size
}

// GenerateRegion builds a size x size region from seeded noise
func GenerateRegion(size int, seed int64) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("region size must be positive, got %d", size)
	}

	// keep feature size independent of region size
	freq := 4.0 / float64(size)
	elevation := newNoiseField(seed, freq, 5)
	moisture := newNoiseField(seed+1, freq*1.5, 3)

	r := &Region{Size: size, Cells: make([]Terrain, size*size)}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx, fy := float64(x), float64(y)
			r.Cells[y*size+x] = Classify(elevation.sample(fx, fy), moisture.sample(fx, fy))
		}
	}
	return r, nil
}

// At returns the terrain at (x, y); out of bounds reads as DeepWater
func (r *Region) At(x, y int) Terrain {
	if x < 0 || y < 0 || x >= r.Size || y >= r.Size {
		return DeepWater
	}
	return r.Cells[y*r.Size+x]
}
