package poisson

import (
	"errors"
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/cardionics/tetfield/mesh"
	"github.com/cardionics/tetfield/sources"
)

var (
	// ErrNoBoundaryNodes reports a mesh with no boundary surface; without a
	// Dirichlet set the point-source system is singular up to a constant
	ErrNoBoundaryNodes = errors.New("mesh has no boundary nodes for the Dirichlet condition")

	// ErrSingularSystem reports a system that remains unsolvable after
	// boundary elimination, e.g. a disconnected mesh component
	ErrSingularSystem = errors.New("linear system is singular after boundary elimination")
)

// Solver holds the precomputed stiffness operator for one mesh. The operator
// and the mesh are never mutated after construction, so a single Solver may
// serve repeated solves, including from a background worker. Each Solve call
// allocates its own reduced system.
type Solver struct {
	mesh      *mesh.Mesh
	stiffness *sparse.CSR
	boundary  []int // sorted Dirichlet node set
}

// NewSolver assembles the stiffness matrix for the mesh. Fails with
// ErrNoBoundaryNodes when the mesh provides no boundary surface.
func NewSolver(m *mesh.Mesh) (*Solver, error) {
	boundary := m.BoundaryNodes()
	if len(boundary) == 0 {
		return nil, ErrNoBoundaryNodes
	}
	K, err := assembleStiffness(m)
	if err != nil {
		return nil, err
	}
	return &Solver{
		mesh:      m,
		stiffness: K,
		boundary:  boundary,
	}, nil
}

// BoundaryNodes returns the Dirichlet node set the solver fixes
func (s *Solver) BoundaryNodes() []int { return s.boundary }

// Solve returns the nodal potential field for the given projected sources
// with the boundary fixed at boundaryValue. Charges landing on the same node
// accumulate additively, in sequence order, so identical inputs reproduce
// bit-identical fields. The call is stateless; an abandoned result leaves no
// residue in the solver.
func (s *Solver) Solve(srcs []sources.NodeSource, boundaryValue float64) ([]float64, error) {
	n := s.mesh.NumVertices

	// load vector with concentrated charges at projected nodes
	load := make([]float64, n)
	for _, src := range srcs {
		if src.Node < 0 || src.Node >= n {
			return nil, fmt.Errorf("source node %d out of range [0,%d)", src.Node, n)
		}
		load[src.Node] += src.Charge
	}

	// interior numbering: -1 marks a Dirichlet node
	interior := make([]int, n)
	for _, b := range s.boundary {
		interior[b] = -1
	}
	var free []int
	for i := 0; i < n; i++ {
		if interior[i] >= 0 {
			interior[i] = len(free)
			free = append(free, i)
		}
	}

	field := make([]float64, n)
	for _, b := range s.boundary {
		field[b] = boundaryValue
	}
	if len(free) == 0 {
		// every node is on the boundary; the field is the reference value
		return field, nil
	}

	// reduce to the interior block, moving known boundary values to the rhs
	nf := len(free)
	A := mat.NewDense(nf, nf, nil)
	rhs := mat.NewVecDense(nf, nil)
	for k, node := range free {
		rhs.SetVec(k, load[node])
	}
	diagSeen := make([]bool, nf)
	s.stiffness.DoNonZero(func(i, j int, v float64) {
		ii := interior[i]
		if ii < 0 {
			return
		}
		if jj := interior[j]; jj >= 0 {
			A.Set(ii, jj, v)
			if i == j && v != 0 {
				diagSeen[ii] = true
			}
		} else if boundaryValue != 0 {
			rhs.SetVec(ii, rhs.AtVec(ii)-v*boundaryValue)
		}
	})
	for k, seen := range diagSeen {
		if !seen {
			return nil, fmt.Errorf("%w: node %d is not referenced by any element", ErrSingularSystem, free[k])
		}
	}

	var lu mat.LU
	lu.Factorize(A)
	x := mat.NewVecDense(nf, nil)
	if err := lu.SolveVecTo(x, false, rhs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularSystem, err)
	}

	for k, node := range free {
		field[node] = x.AtVec(k)
	}
	return field, nil
}
