package poisson

import (
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/cardionics/tetfield/mesh"
)

// assembleStiffness builds the P1 finite-element stiffness matrix (discrete
// Laplacian) over the mesh's tetrahedra. The operator depends on geometry
// only, so the returned CSR is treated as read-only and shared across solves.
func assembleStiffness(m *mesh.Mesh) (*sparse.CSR, error) {
	n := m.NumVertices
	K := sparse.NewDOK(n, n)

	var grads [4][3]float64
	for elemID, verts := range m.EtoV {
		vol, err := elementGradients(m, verts, &grads)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", elemID, err)
		}
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				kij := vol * dot3(grads[i], grads[j])
				gi, gj := verts[i], verts[j]
				K.Set(gi, gj, K.At(gi, gj)+kij)
			}
		}
	}
	return K.ToCSR(), nil
}

// elementGradients computes the tet volume and the constant gradients of the
// four barycentric basis functions. The gradients of the non-origin vertices
// are the rows of the inverse edge matrix; the origin gradient balances them
// to zero sum.
func elementGradients(m *mesh.Mesh, verts []int, grads *[4][3]float64) (vol float64, err error) {
	v0 := m.Vertices[verts[0]]

	// edge matrix columns are the vectors from vertex 0 to vertices 1..3
	J := mat.NewDense(3, 3, nil)
	for c := 0; c < 3; c++ {
		ve := m.Vertices[verts[c+1]]
		for r := 0; r < 3; r++ {
			J.Set(r, c, ve[r]-v0[r])
		}
	}

	det := mat.Det(J)
	vol = math.Abs(det) / 6.0
	if vol == 0 {
		return 0, fmt.Errorf("degenerate tetrahedron (zero volume)")
	}

	var inv mat.Dense
	if err = inv.Inverse(J); err != nil {
		return 0, fmt.Errorf("degenerate tetrahedron: %v", err)
	}

	for i := 1; i < 4; i++ {
		for d := 0; d < 3; d++ {
			grads[i][d] = inv.At(i-1, d)
		}
	}
	for d := 0; d < 3; d++ {
		grads[0][d] = -(grads[1][d] + grads[2][d] + grads[3][d])
	}
	return vol, nil
}

func dot3(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}
