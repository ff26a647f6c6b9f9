package sources

import (
	"github.com/cardionics/tetfield/mesh"
)

// NodeSource is a source snapped onto a mesh vertex. Two nearby candidates
// may share a vertex; the solver accumulates their charges additively.
type NodeSource struct {
	Node   int
	Charge float64
}

// Project replaces each candidate coordinate with the index of the nearest
// mesh vertex by Euclidean distance. Distance ties resolve to the lowest
// vertex index. Brute force is fine at the target mesh sizes (tens of
// sources against a few thousand vertices).
func Project(plan []PointSource, m *mesh.Mesh) []NodeSource {
	projected := make([]NodeSource, len(plan))
	for i, src := range plan {
		projected[i] = NodeSource{
			Node:   nearestVertex(src.Coord, m.Vertices),
			Charge: src.Charge,
		}
	}
	return projected
}

func nearestVertex(coord [3]float64, vertices [][]float64) int {
	best, bestDist2 := 0, distSq(coord, vertices[0])
	for i := 1; i < len(vertices); i++ {
		if d2 := distSq(coord, vertices[i]); d2 < bestDist2 {
			best, bestDist2 = i, d2
		}
	}
	return best
}

func distSq(coord [3]float64, v []float64) (d2 float64) {
	for d := 0; d < 3; d++ {
		diff := coord[d] - v[d]
		d2 += diff * diff
	}
	return
}
