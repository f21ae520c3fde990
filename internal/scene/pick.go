package scene

import (
	"github.com/Faultbox/cornellbox/internal/engine/picking"
)

// Pick returns the name of the nearest visible solid under the cursor, or ""
// when nothing is hit. x and y are pixel coordinates from the top left of a
// w by h viewport.
func (s *State) Pick(x, y, w, h float32) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	viewProj := s.active.ProjectionMatrix(w / h).Mul(s.active.ViewMatrix())
	ray := picking.ScreenToRay(x, y, w, h, viewProj.Inverse())

	best := ""
	var bestT float32
	for _, e := range s.entities {
		if e.Kind != KindSolid || !e.Visible {
			continue
		}
		t, hit := ray.IntersectAABB(e.WorldBounds())
		if hit && (best == "" || t < bestT) {
			best, bestT = e.Name, t
		}
	}
	return best
}
