package tiles

import (
	"math"
	"math/rand"
)

// Simplex grid skew factors for two dimensions
const (
	skew   = 0.3660254037844386  // (sqrt(3) - 1) / 2
	unskew = 0.21132486540518713 // (3 - sqrt(3)) / 6
)

var gradients = [8][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// noiseField is one layer of terrain input: octaves of simplex noise summed
// from a base frequency in cells, normalized to [0, 1].
type noiseField struct {
	perm    [512]uint8
	freq    float64
	octaves int
}

func newNoiseField(seed int64, freq float64, octaves int) *noiseField {
	f := &noiseField{freq: freq, octaves: max(1, octaves)}
	for i, v := range rand.New(rand.NewSource(seed)).Perm(256) {
		f.perm[i] = uint8(v)
		f.perm[i+256] = uint8(v)
	}
	return f
}

// sample returns the field value at cell (x, y)
func (f *noiseField) sample(x, y float64) float64 {
	var total, norm float64
	freq, amp := f.freq, 1.0
	for o := 0; o < f.octaves; o++ {
		total += amp * f.simplex(x*freq, y*freq)
		norm += amp
		freq *= 2
		amp /= 2
	}
	return math.Min(1, math.Max(0, (total/norm+1)/2))
}

// simplex returns raw noise in roughly [-1, 1]
func (f *noiseField) simplex(x, y float64) float64 {
	s := (x + y) * skew
	i, j := math.Floor(x+s), math.Floor(y+s)
	t := (i + j) * unskew
	dx, dy := x-(i-t), y-(j-t)

	// the middle corner depends on which triangle of the cell we are in
	mid := [2]int{0, 1}
	if dx > dy {
		mid = [2]int{1, 0}
	}
	corners := [3][2]int{{0, 0}, mid, {1, 1}}

	ii, jj := int(i)&255, int(j)&255
	var sum float64
	for k, c := range corners {
		cx := dx - float64(c[0]) + float64(k)*unskew
		cy := dy - float64(c[1]) + float64(k)*unskew
		falloff := 0.5 - cx*cx - cy*cy
		if falloff <= 0 {
			continue
		}
		falloff *= falloff
		g := gradients[f.perm[ii+c[0]+int(f.perm[jj+c[1]])]&7]
		sum += falloff * falloff * (g[0]*cx + g[1]*cy)
	}
	return 70 * sum
}
