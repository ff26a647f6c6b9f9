package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardionics/tetfield/mesh"
)

func projectorMesh() *mesh.Mesh {
	return mesh.NewMesh([][]float64{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{2, 2, 2},
	}, nil)
}

func TestProject_ExactVertexMatch(t *testing.T) {
	m := projectorMesh()
	plan := []PointSource{
		{Coord: [3]float64{0, 1, 0}, Charge: 1.0},
		{Coord: [3]float64{2, 2, 2}, Charge: -0.5},
	}
	projected := Project(plan, m)

	assert.Equal(t, []NodeSource{
		{Node: 2, Charge: 1.0},
		{Node: 4, Charge: -0.5},
	}, projected)
}

func TestProject_Nearest(t *testing.T) {
	m := projectorMesh()
	plan := []PointSource{{Coord: [3]float64{0.9, 0.1, -0.1}, Charge: 1.0}}
	assert.Equal(t, 1, Project(plan, m)[0].Node)
}

func TestProject_Deterministic(t *testing.T) {
	m := projectorMesh()
	plan := []PointSource{{Coord: [3]float64{0.4, 0.4, 0.4}, Charge: 1.0}}
	a := Project(plan, m)[0].Node
	b := Project(plan, m)[0].Node
	assert.Equal(t, a, b)
}

func TestProject_TieResolvesToLowestIndex(t *testing.T) {
	m := projectorMesh()
	// midpoint of vertices 0 and 1 is equidistant to both
	plan := []PointSource{{Coord: [3]float64{0.5, 0, 0}, Charge: 1.0}}
	assert.Equal(t, 0, Project(plan, m)[0].Node)
}

func TestProject_CloseCandidatesCollapse(t *testing.T) {
	m := projectorMesh()
	plan := []PointSource{
		{Coord: [3]float64{0.05, 0, 0}, Charge: 1.0},
		{Coord: [3]float64{-0.05, 0, 0}, Charge: 0.5},
	}
	projected := Project(plan, m)

	// both candidates land on vertex 0; charges stay separate entries for
	// the solver to accumulate
	assert.Equal(t, 0, projected[0].Node)
	assert.Equal(t, 0, projected[1].Node)
	assert.Equal(t, 1.0, projected[0].Charge)
	assert.Equal(t, 0.5, projected[1].Charge)
}
