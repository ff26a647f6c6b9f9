package mesh

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSurface_SingleTet(t *testing.T) {
	m := SingleTetMesh()

	// every face of a lone tet is a boundary face
	assert.Equal(t, 4, len(m.BoundaryFaces))
	assert.Equal(t, []int{0, 1, 2, 3}, m.BoundaryNodes())
}

func TestExtractSurface_SharedFaceIsInterior(t *testing.T) {
	// two tets sharing face {1,2,3}
	vertices := [][]float64{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
	}
	etov := [][]int{
		{0, 1, 2, 3},
		{1, 2, 3, 4},
	}
	m := NewMesh(vertices, etov)

	// 8 faces total, one shared, so 6 on the boundary
	assert.Equal(t, 6, len(m.BoundaryFaces))
	for _, face := range m.BoundaryFaces {
		sorted := append([]int{}, face...)
		sort.Ints(sorted)
		if sorted[0] == 1 && sorted[1] == 2 && sorted[2] == 3 {
			t.Errorf("shared face {1,2,3} reported as boundary")
		}
	}
	// all five vertices still touch the boundary
	assert.Equal(t, []int{0, 1, 2, 3, 4}, m.BoundaryNodes())
}

func TestExtractSurface_Octahedron(t *testing.T) {
	m := OctahedronMesh(1.0)

	assert.Equal(t, 7, m.NumVertices)
	assert.Equal(t, 8, m.NumElements)
	// the eight outer faces form the closed surface; the center stays interior
	assert.Equal(t, 8, len(m.BoundaryFaces))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, m.BoundaryNodes())
}

func TestBoxMesh(t *testing.T) {
	m := BoxMesh(3, 3, 3, 1, 1, 1)

	assert.Equal(t, 27, m.NumVertices)
	assert.Equal(t, 6*8, m.NumElements)
	assert.NoError(t, m.Validate())

	// only the body center is interior on a 3x3x3 grid
	boundary := m.BoundaryNodes()
	assert.Equal(t, 26, len(boundary))
	for _, b := range boundary {
		if b == 13 {
			t.Errorf("center vertex 13 must not be on the boundary")
		}
	}
}

func TestValidate_BadIndex(t *testing.T) {
	m := &Mesh{
		Vertices:    [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		EtoV:        [][]int{{0, 1, 2, 7}},
		NumVertices: 4,
		NumElements: 1,
	}
	assert.Error(t, m.Validate())
}
