// Package debug provides debug visualization and capture utilities.
package debug

import (
	"github.com/Faultbox/cornellbox/internal/engine/picking"
)

// BoxEdgeVertices is the vertex count returned by BoxWireframe.
const BoxEdgeVertices = 24

// BoxWireframe creates line vertices for a wireframe bounding box.
// Returns 24 vertices (12 edges × 2 endpoints), format: [x, y, z] per vertex.
// padding expands the box on all sides.
func BoxWireframe(box picking.AABB, padding float32) []float32 {
	minX, minY, minZ := box.Min.X-padding, box.Min.Y-padding, box.Min.Z-padding
	maxX, maxY, maxZ := box.Max.X+padding, box.Max.Y+padding, box.Max.Z+padding

	return []float32{
		// Bottom face
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}
