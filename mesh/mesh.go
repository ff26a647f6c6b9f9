package mesh

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Mesh is an unstructured tetrahedral volume mesh. Elements reference
// vertices by index only, so the mesh is a pair of flat arrays plus the
// derived boundary surface.
type Mesh struct {
	// Geometry
	Vertices [][]float64 // Vertex coordinates [nverts][3]

	// Element data
	EtoV [][]int // Tet to vertex connectivity [nelems][4]

	// Boundary data (built by ExtractSurface)
	BoundaryFaces [][]int // Surface triangles, outward vertex order as stored

	// Mesh statistics
	NumVertices int
	NumElements int
}

// NewMesh wraps vertex and connectivity arrays without copying. The boundary
// surface is extracted immediately so BoundaryNodes is available to callers.
func NewMesh(vertices [][]float64, etov [][]int) *Mesh {
	m := &Mesh{
		Vertices:    vertices,
		EtoV:        etov,
		NumVertices: len(vertices),
		NumElements: len(etov),
	}
	m.ExtractSurface()
	return m
}

// ReadMeshFile reads a mesh file based on extension
func ReadMeshFile(filename string) (*Mesh, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".vtk":
		return ReadVTKLegacy(filename)
	default:
		return nil, fmt.Errorf("unsupported mesh format: %s", ext)
	}
}

// tetFaces returns the four triangular faces of a tet in local vertex order
func tetFaces(verts []int) [4][3]int {
	return [4][3]int{
		{verts[0], verts[1], verts[2]},
		{verts[0], verts[1], verts[3]},
		{verts[0], verts[2], verts[3]},
		{verts[1], verts[2], verts[3]},
	}
}

// ExtractSurface rebuilds BoundaryFaces. A tet face shared by two elements is
// interior; a face referenced exactly once lies on the closed boundary
// surface. The counted-once triangles are kept in first-seen order.
func (m *Mesh) ExtractSurface() {
	type faceRec struct {
		verts [3]int
		count int
	}
	faceMap := make(map[string]*faceRec)
	var order []string

	for _, verts := range m.EtoV {
		for _, face := range tetFaces(verts) {
			sorted := []int{face[0], face[1], face[2]}
			sort.Ints(sorted)
			key := fmt.Sprintf("%v", sorted)

			if rec, exists := faceMap[key]; exists {
				rec.count++
			} else {
				faceMap[key] = &faceRec{verts: face, count: 1}
				order = append(order, key)
			}
		}
	}

	m.BoundaryFaces = m.BoundaryFaces[:0]
	for _, key := range order {
		rec := faceMap[key]
		if rec.count == 1 {
			m.BoundaryFaces = append(m.BoundaryFaces, []int{rec.verts[0], rec.verts[1], rec.verts[2]})
		}
	}
}

// BoundaryNodes returns the sorted set of vertex indices appearing in any
// boundary face. Empty when the mesh has no boundary surface.
func (m *Mesh) BoundaryNodes() []int {
	seen := make(map[int]bool)
	for _, face := range m.BoundaryFaces {
		for _, v := range face {
			seen[v] = true
		}
	}
	nodes := make([]int, 0, len(seen))
	for v := range seen {
		nodes = append(nodes, v)
	}
	sort.Ints(nodes)
	return nodes
}

// Validate checks that every element references only valid vertex indices
func (m *Mesh) Validate() error {
	for elemID, verts := range m.EtoV {
		if len(verts) != 4 {
			return fmt.Errorf("element %d has %d vertices, expected 4", elemID, len(verts))
		}
		for _, v := range verts {
			if v < 0 || v >= m.NumVertices {
				return fmt.Errorf("element %d references invalid vertex %d (mesh has %d vertices)",
					elemID, v, m.NumVertices)
			}
		}
	}
	return nil
}
