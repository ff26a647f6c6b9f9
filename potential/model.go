// Package potential composes the mesh analyzer, source planner, node
// projector and Poisson solver into the end-to-end potential field
// computation.
package potential

import (
	"errors"
	"fmt"

	"github.com/cardionics/tetfield/mesh"
	"github.com/cardionics/tetfield/poisson"
	"github.com/cardionics/tetfield/sources"
)

// ErrMismatchedInput reports a manual override whose source and charge
// sequences differ in length
var ErrMismatchedInput = errors.New("source and charge counts do not match")

// Result bundles the solved field with the discrete sources the solve
// actually honored, so callers that supplied geometric coordinates can see
// which mesh nodes were used.
type Result struct {
	Potential []float64            // one value per mesh vertex
	Sources   []sources.NodeSource // projected sources, in solve order
}

// Model runs solves against one mesh. The complexity report is computed at
// construction; the stiffness operator is assembled lazily on first solve and
// reused afterwards, read-only.
type Model struct {
	Mesh   *mesh.Mesh
	Report *sources.ComplexityReport

	BoundaryValue float64 // Dirichlet reference, conventionally 0

	planner *sources.Planner
	solver  *poisson.Solver
}

// NewModel analyzes the mesh and prepares a model with the given perturbation
// seed. Fails with sources.ErrEmptyMesh on a mesh without vertices.
func NewModel(m *mesh.Mesh, seed uint64) (*Model, error) {
	report, err := sources.Analyze(m)
	if err != nil {
		return nil, err
	}
	return &Model{
		Mesh:    m,
		Report:  report,
		planner: sources.NewPlanner(seed),
	}, nil
}

// SolveAuto plans sources from the complexity report and solves. A count of
// zero uses the recommended source count; an explicit count overrides it.
func (mo *Model) SolveAuto(count int) (*Result, error) {
	if count == 0 {
		count = mo.Report.RecommendedSources
	}
	plan, err := mo.planner.Plan(mo.Report, count)
	if err != nil {
		return nil, err
	}
	return mo.solve(sources.Project(plan, mo.Mesh))
}

// SolveManual solves with caller-provided source coordinates and charges,
// bypassing the planner. Each coordinate must have three components and the
// two sequences must match in length; mismatches fail before any assembly.
func (mo *Model) SolveManual(coords [][]float64, charges []float64) (*Result, error) {
	if len(coords) != len(charges) {
		return nil, fmt.Errorf("%w: %d sources, %d charges", ErrMismatchedInput, len(coords), len(charges))
	}
	plan := make([]sources.PointSource, len(coords))
	for i, c := range coords {
		if len(c) != 3 {
			return nil, fmt.Errorf("%w: source %d has %d coordinates, expected 3", ErrMismatchedInput, i, len(c))
		}
		plan[i] = sources.PointSource{Coord: [3]float64{c[0], c[1], c[2]}, Charge: charges[i]}
	}
	return mo.solve(sources.Project(plan, mo.Mesh))
}

func (mo *Model) solve(projected []sources.NodeSource) (*Result, error) {
	if mo.solver == nil {
		solver, err := poisson.NewSolver(mo.Mesh)
		if err != nil {
			return nil, err
		}
		mo.solver = solver
	}
	field, err := mo.solver.Solve(projected, mo.BoundaryValue)
	if err != nil {
		return nil, err
	}
	return &Result{Potential: field, Sources: projected}, nil
}
