package mesh

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoTetVTK = `# vtk DataFile Version 3.0
two tets
ASCII
DATASET UNSTRUCTURED_GRID
POINTS 5 float
0 0 0
1 0 0
0 1 0
0 0 1
1 1 1
CELLS 2 10
4 0 1 2 3
4 1 2 3 4
CELL_TYPES 2
10
10
`

func TestReadVTKLegacy_TwoTets(t *testing.T) {
	m, err := readVTKLegacy(strings.NewReader(twoTetVTK), "two_tets.vtk")
	require.NoError(t, err)

	assert.Equal(t, 5, m.NumVertices)
	assert.Equal(t, 2, m.NumElements)
	assert.Equal(t, []float64{1, 1, 1}, m.Vertices[4])
	assert.Equal(t, []int{1, 2, 3, 4}, m.EtoV[1])
	assert.Equal(t, 6, len(m.BoundaryFaces))
}

func TestReadVTKLegacy_WrappedCoordinates(t *testing.T) {
	// legacy VTK allows any number of values per line
	input := `# vtk DataFile Version 2.0
wrapped
ASCII
DATASET UNSTRUCTURED_GRID
POINTS 4 double
0 0 0 1 0 0 0 1 0
0 0 1
CELLS 1 5
4 0 1 2 3
CELL_TYPES 1
10
`
	m, err := readVTKLegacy(strings.NewReader(input), "wrapped.vtk")
	require.NoError(t, err)
	assert.Equal(t, 4, m.NumVertices)
	assert.Equal(t, 1, m.NumElements)
}

func TestReadVTKLegacy_QuadraticTetReduced(t *testing.T) {
	input := `# vtk DataFile Version 3.0
tet10
ASCII
DATASET UNSTRUCTURED_GRID
POINTS 10 float
0 0 0
1 0 0
0 1 0
0 0 1
0.5 0 0
0.5 0.5 0
0 0.5 0
0 0 0.5
0.5 0 0.5
0 0.5 0.5
CELLS 1 11
10 0 1 2 3 4 5 6 7 8 9
CELL_TYPES 1
24
`
	m, err := readVTKLegacy(strings.NewReader(input), "tet10.vtk")
	require.NoError(t, err)
	assert.Equal(t, 1, m.NumElements)
	assert.Equal(t, []int{0, 1, 2, 3}, m.EtoV[0])
}

func TestReadVTKLegacy_TrianglesIgnored(t *testing.T) {
	input := `# vtk DataFile Version 3.0
mixed
ASCII
DATASET UNSTRUCTURED_GRID
POINTS 4 float
0 0 0
1 0 0
0 1 0
0 0 1
CELLS 2 9
4 0 1 2 3
3 0 1 2
CELL_TYPES 2
10
5
`
	m, err := readVTKLegacy(strings.NewReader(input), "mixed.vtk")
	require.NoError(t, err)
	assert.Equal(t, 1, m.NumElements)
}

func TestReadVTKLegacy_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"bad header", "POINTS 1 float\n0 0 0\n"},
		{"no tets", `# vtk DataFile Version 3.0
tris only
ASCII
DATASET UNSTRUCTURED_GRID
POINTS 3 float
0 0 0
1 0 0
0 1 0
CELLS 1 4
3 0 1 2
CELL_TYPES 1
5
`},
		{"unsupported cell type", `# vtk DataFile Version 3.0
hex
ASCII
DATASET UNSTRUCTURED_GRID
POINTS 4 float
0 0 0
1 0 0
0 1 0
0 0 1
CELLS 1 5
4 0 1 2 3
CELL_TYPES 1
12
`},
		{"structured dataset", `# vtk DataFile Version 3.0
structured
ASCII
DATASET STRUCTURED_POINTS
`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := readVTKLegacy(strings.NewReader(tc.input), tc.name)
			assert.Error(t, err)
		})
	}
}

func TestReadMeshFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "two_tets.vtk")
	require.NoError(t, os.WriteFile(path, []byte(twoTetVTK), 0644))

	m, err := ReadMeshFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, m.NumVertices)

	_, err = ReadMeshFile(filepath.Join(dir, "mesh.stl"))
	assert.Error(t, err)
}
