package sources

import (
	"errors"
	"math"
	"math/rand/v2"
)

// ErrInvalidSourceCount reports a requested source count below one
var ErrInvalidSourceCount = errors.New("source count must be at least 1")

// PointSource is a geometric source candidate. Coordinates are continuous;
// the projector snaps them to mesh vertices downstream.
type PointSource struct {
	Coord  [3]float64
	Charge float64
}

// strategy produces a source layout from the mesh's geometric summary. One
// variant exists per supported count regime.
type strategy interface {
	plan(center, extents [3]float64, count int) []PointSource
}

// Planner selects a layout strategy by source count. The random perturbation
// used by the multi-source strategy is seeded at construction so plans are
// reproducible.
type Planner struct {
	rng *rand.Rand
}

// NewPlanner returns a Planner whose multi-source perturbation sequence is
// fixed by seed.
func NewPlanner(seed uint64) *Planner {
	return &Planner{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Plan produces count sources placed relative to the report's center and
// extents. Counts of 1, 2 and 3 use the single, dipole and triangular
// layouts; any count of 4 or more uses the multi-source layout.
func (p *Planner) Plan(r *ComplexityReport, count int) ([]PointSource, error) {
	if count < 1 {
		return nil, ErrInvalidSourceCount
	}
	var s strategy
	switch count {
	case 1:
		s = singleStrategy{}
	case 2:
		s = dipoleStrategy{}
	case 3:
		s = triangularStrategy{}
	default:
		s = multiStrategy{rng: p.rng}
	}
	return s.plan(r.Center, r.Extents, count), nil
}

// singleStrategy places one unit charge at the geometric center
type singleStrategy struct{}

func (singleStrategy) plan(center, extents [3]float64, count int) []PointSource {
	return []PointSource{{Coord: center, Charge: 1.0}}
}

// dipoleStrategy places an equal and opposite pair along the longest axis,
// offset by 0.3 of that axis's extent. Net charge is zero by construction.
type dipoleStrategy struct{}

func (dipoleStrategy) plan(center, extents [3]float64, count int) []PointSource {
	axis := longestAxis(extents)
	offset := 0.3 * extents[axis]

	pos, neg := center, center
	pos[axis] += offset
	neg[axis] -= offset
	return []PointSource{
		{Coord: pos, Charge: 1.0},
		{Coord: neg, Charge: -1.0},
	}
}

// triangularStrategy places three sources at 0, 120 and 240 degrees on a
// circle in the plane of the two largest extents. The charge set
// {1.0, 0.8, -0.6} is deliberately unbalanced, approximating a biological
// tripole rather than a neutral configuration.
type triangularStrategy struct{}

var triangularCharges = [3]float64{1.0, 0.8, -0.6}

func (triangularStrategy) plan(center, extents [3]float64, count int) []PointSource {
	a1, a2 := planeAxes(extents)
	radius := 0.3 * extents[a1]

	srcs := make([]PointSource, 3)
	for i := 0; i < 3; i++ {
		angle := 2 * math.Pi * float64(i) / 3
		coord := center
		coord[a1] += radius * math.Cos(angle)
		coord[a2] += radius * math.Sin(angle)
		srcs[i] = PointSource{Coord: coord, Charge: triangularCharges[i]}
	}
	return srcs
}

// multiStrategy distributes four or more sources over the mesh volume: the
// first four on a regular tetrahedron scaled to the smallest extent, the rest
// on a stratified octant pattern. A bounded Gaussian jitter breaks exact
// symmetry; its sequence comes from the planner's seeded generator.
type multiStrategy struct {
	rng *rand.Rand
}

var tetraPattern = [4][3]float64{
	{1, 1, 1},
	{1, -1, -1},
	{-1, 1, -1},
	{-1, -1, 1},
}

func (s multiStrategy) plan(center, extents [3]float64, count int) []PointSource {
	minExtent := math.Min(extents[0], math.Min(extents[1], extents[2]))
	radius := 0.2 * minExtent

	srcs := make([]PointSource, count)
	for i := 0; i < count; i++ {
		coord := center
		if i < 4 {
			for d := 0; d < 3; d++ {
				coord[d] += radius * tetraPattern[i][d]
			}
		} else {
			// octant stratification keeps later sources spread apart
			coord[0] += (float64(i%2) - 0.5) * 0.4 * extents[0]
			coord[1] += (float64((i/2)%2) - 0.5) * 0.4 * extents[1]
			coord[2] += (float64((i/4)%2) - 0.5) * 0.4 * extents[2]
		}
		for d := 0; d < 3; d++ {
			coord[d] += s.jitter(extents[d])
		}

		sign := 1.0
		if i%2 == 1 {
			sign = -1.0
		}
		srcs[i] = PointSource{Coord: coord, Charge: sign * math.Pow(0.9, float64(i))}
	}
	return srcs
}

// jitter returns a Gaussian offset scaled to 1% of the extent and clamped to
// 5%, so perturbed sources stay near the bounding box
func (s multiStrategy) jitter(extent float64) float64 {
	j := s.rng.NormFloat64() * 0.01 * extent
	limit := 0.05 * extent
	return math.Max(-limit, math.Min(limit, j))
}

// longestAxis returns the index of the largest extent, preferring x over y
// over z on ties
func longestAxis(extents [3]float64) int {
	axis := 0
	for d := 1; d < 3; d++ {
		if extents[d] > extents[axis] {
			axis = d
		}
	}
	return axis
}

// planeAxes returns the two largest-extent axes in descending extent order,
// with ties broken by axis priority x, y, z
func planeAxes(extents [3]float64) (a1, a2 int) {
	a1 = longestAxis(extents)
	a2 = -1
	for d := 0; d < 3; d++ {
		if d == a1 {
			continue
		}
		if a2 < 0 || extents[d] > extents[a2] {
			a2 = d
		}
	}
	return
}
