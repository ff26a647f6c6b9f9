package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const octahedronVTK = `# vtk DataFile Version 3.0
octahedron
ASCII
DATASET UNSTRUCTURED_GRID
POINTS 7 float
0 0 0
1 0 0
-1 0 0
0 1 0
0 -1 0
0 0 1
0 0 -1
CELLS 8 40
4 0 1 3 5
4 0 3 2 5
4 0 2 4 5
4 0 4 1 5
4 0 3 1 6
4 0 2 3 6
4 0 4 2 6
4 0 1 4 6
CELL_TYPES 8
10
10
10
10
10
10
10
10
`

func TestRunSolve_Auto(t *testing.T) {
	dir := t.TempDir()
	meshPath := filepath.Join(dir, "octa.vtk")
	outPath := filepath.Join(dir, "field.dat")
	require.NoError(t, os.WriteFile(meshPath, []byte(octahedronVTK), 0644))

	sm := &SolveModel{
		MeshFile:   meshPath,
		OutputFile: outPath,
		Seed:       42,
	}
	require.NoError(t, RunSolve(sm))

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestRunSolve_ManualFlags(t *testing.T) {
	dir := t.TempDir()
	meshPath := filepath.Join(dir, "octa.vtk")
	require.NoError(t, os.WriteFile(meshPath, []byte(octahedronVTK), 0644))

	sm := &SolveModel{
		MeshFile: meshPath,
		Sources:  "0,0,0",
		Charges:  "1.0",
	}
	assert.NoError(t, RunSolve(sm))
}

func TestRunSolve_MissingMesh(t *testing.T) {
	assert.Error(t, RunSolve(&SolveModel{}))
}
