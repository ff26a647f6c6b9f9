package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type PoissonParameters struct {
	Title         string      `yaml:"Title"`
	SourceCount   int         `yaml:"SourceCount"`   // 0 selects the recommended count
	Seed          uint64      `yaml:"Seed"`          // multi-source perturbation seed
	BoundaryValue float64     `yaml:"BoundaryValue"` // Dirichlet reference value
	Sources       [][]float64 `yaml:"Sources"`       // manual override coordinates [N][3]
	Charges       []float64   `yaml:"Charges"`       // manual override charges [N]
}

// Manual reports whether the file specifies explicit sources instead of the
// automatic placement path
func (pp *PoissonParameters) Manual() bool {
	return len(pp.Sources) != 0 || len(pp.Charges) != 0
}

func (pp *PoissonParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, pp)
}

func (pp *PoissonParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", pp.Title)
	fmt.Printf("%8d\t\t= SourceCount\n", pp.SourceCount)
	fmt.Printf("%8d\t\t= Seed\n", pp.Seed)
	fmt.Printf("%8.5f\t\t= BoundaryValue\n", pp.BoundaryValue)
	if pp.Manual() {
		for i, s := range pp.Sources {
			q := 0.0
			if i < len(pp.Charges) {
				q = pp.Charges[i]
			}
			fmt.Printf("Source[%d] = %v, Charge = %8.5f\n", i, s, q)
		}
	}
}
