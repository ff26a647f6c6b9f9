package sources

import (
	"errors"
	"fmt"
	"math"

	"github.com/cardionics/tetfield/mesh"
)

// ErrEmptyMesh reports a mesh with no vertices, for which center and extents
// are undefined
var ErrEmptyMesh = errors.New("mesh has no vertices")

// Complexity classifies a mesh by vertex count
type Complexity int

const (
	Simple Complexity = iota
	Moderate
	Complex
	VeryComplex
)

func (c Complexity) String() string {
	return [...]string{"simple", "moderate", "complex", "very_complex"}[c]
}

// RecommendedSources returns the source count implied by the classification
func (c Complexity) RecommendedSources() int {
	return [...]int{1, 2, 3, 4}[c]
}

// ComplexityReport carries the geometric summary of a mesh used to plan
// source placement. Computed fresh per Analyze call and never mutated.
type ComplexityReport struct {
	NumNodes    int
	NumElements int

	BBoxMin, BBoxMax [3]float64
	Extents          [3]float64 // per-axis bounding box spans
	Center           [3]float64 // mean of vertex coordinates, not volume weighted

	VolumeEstimate float64 // bounding box volume, a coarse proxy

	Complexity         Complexity
	RecommendedSources int
}

// Analyze derives a ComplexityReport from a mesh in a single pass over the
// vertex array.
func Analyze(m *mesh.Mesh) (*ComplexityReport, error) {
	n := m.NumVertices
	if n == 0 {
		return nil, ErrEmptyMesh
	}

	r := &ComplexityReport{
		NumNodes:    n,
		NumElements: m.NumElements,
	}
	for d := 0; d < 3; d++ {
		r.BBoxMin[d] = math.Inf(1)
		r.BBoxMax[d] = math.Inf(-1)
	}

	for _, v := range m.Vertices {
		for d := 0; d < 3; d++ {
			r.BBoxMin[d] = math.Min(r.BBoxMin[d], v[d])
			r.BBoxMax[d] = math.Max(r.BBoxMax[d], v[d])
			r.Center[d] += v[d]
		}
	}
	r.VolumeEstimate = 1.0
	for d := 0; d < 3; d++ {
		r.Center[d] /= float64(n)
		r.Extents[d] = r.BBoxMax[d] - r.BBoxMin[d]
		r.VolumeEstimate *= r.Extents[d]
	}

	switch {
	case n < 100:
		r.Complexity = Simple
	case n < 500:
		r.Complexity = Moderate
	case n < 1000:
		r.Complexity = Complex
	default:
		r.Complexity = VeryComplex
	}
	r.RecommendedSources = r.Complexity.RecommendedSources()

	return r, nil
}

func (r *ComplexityReport) Print() {
	fmt.Printf("%8d\t\t= Nodes\n", r.NumNodes)
	fmt.Printf("%8d\t\t= Elements\n", r.NumElements)
	fmt.Printf("[%s]\t\t= Complexity\n", r.Complexity)
	fmt.Printf("%8d\t\t= Recommended Sources\n", r.RecommendedSources)
	for d, axis := range [3]string{"X", "Y", "Z"} {
		fmt.Printf("%s: [%8.5f, %8.5f]\t= Bounds\n", axis, r.BBoxMin[d], r.BBoxMax[d])
	}
	fmt.Printf("(%8.5f, %8.5f, %8.5f)\t= Center\n", r.Center[0], r.Center[1], r.Center[2])
	fmt.Printf("%8.5f\t\t= Volume Estimate\n", r.VolumeEstimate)
}
