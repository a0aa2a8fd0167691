package tiles

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"tilemap.dev/internal/progress"
)

// CountPyramid returns the number of tiles in zoom levels 0..levels-1
func CountPyramid(levels int) int {
	total := 0
	for z := 0; z < levels; z++ {
		n := PerSide(z)
		total += n * n
	}
	return total
}

// WritePyramid renders every tile for zoom levels 0..levels-1 into
// dir/{zoom}/{x}_{y}.jpg and returns the number of files written.
func WritePyramid(ctx context.Context, r *Renderer, dir string, levels int, report progress.Reporter) (int, error) {
	if levels <= 0 || levels > MaxLevel+1 {
		return 0, fmt.Errorf("levels must be in [1, %d], got %d", MaxLevel+1, levels)
	}
	if report == nil {
		report = progress.Nop{}
	}

	report.Start(CountPyramid(levels))
	defer report.Finish()

	written := 0
	for z := 0; z < levels; z++ {
		zoomDir := filepath.Join(dir, fmt.Sprint(z))
		if err := os.MkdirAll(zoomDir, 0755); err != nil {
			return written, fmt.Errorf("creating %s: %w", zoomDir, err)
		}

		n := PerSide(z)
		for x := 0; x < n; x++ {
			for y := 0; y < n; y++ {
				if err := ctx.Err(); err != nil {
					return written, err
				}
				if err := writeTile(r, dir, z, x, y); err != nil {
					return written, err
				}
				written++
				report.Update(written, Path(z, x, y))
			}
		}
	}
	return written, nil
}

func writeTile(r *Renderer, dir string, zoom, x, y int) error {
	data, err := r.RenderJPEG(zoom, x, y)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, filepath.FromSlash(Path(zoom, x, y)))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
