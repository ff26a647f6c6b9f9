package cmd

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/cardionics/tetfield/InputParameters"
	"github.com/cardionics/tetfield/mesh"
	"github.com/cardionics/tetfield/potential"
)

type SolveModel struct {
	MeshFile      string
	InputFile     string
	OutputFile    string
	SourceCount   int
	Seed          uint64
	BoundaryValue float64
	Sources       string
	Charges       string
	Profile       bool
}

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the point-source Poisson equation on a mesh",
	Long: `
Reads a tetrahedral mesh, places point sources automatically from the mesh
complexity (or uses explicit sources from flags or a YAML parameter file),
and solves for the nodal potential field with a zero-reference Dirichlet
boundary on the mesh surface.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sm := &SolveModel{}
		sm.MeshFile, _ = cmd.Flags().GetString("meshFile")
		sm.InputFile, _ = cmd.Flags().GetString("inputFile")
		sm.OutputFile, _ = cmd.Flags().GetString("outputFile")
		sm.SourceCount, _ = cmd.Flags().GetInt("sources")
		sm.Seed, _ = cmd.Flags().GetUint64("seed")
		sm.BoundaryValue, _ = cmd.Flags().GetFloat64("boundaryValue")
		sm.Sources, _ = cmd.Flags().GetString("sourceCoords")
		sm.Charges, _ = cmd.Flags().GetString("charges")
		sm.Profile, _ = cmd.Flags().GetBool("profile")
		if sm.Profile {
			defer profile.Start().Stop()
		}
		return RunSolve(sm)
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringP("meshFile", "f", "", "VTK mesh file to solve on")
	solveCmd.Flags().StringP("inputFile", "i", "", "YAML file with solve parameters")
	solveCmd.Flags().StringP("outputFile", "o", "", "output file for the nodal potential field")
	solveCmd.Flags().IntP("sources", "s", 0, "source count override, 0 = use recommended count")
	solveCmd.Flags().Uint64("seed", 42, "seed for the multi-source perturbation")
	solveCmd.Flags().Float64("boundaryValue", 0, "Dirichlet reference value on the boundary surface")
	solveCmd.Flags().String("sourceCoords", "", "explicit sources as x1,y1,z1;x2,y2,z2")
	solveCmd.Flags().String("charges", "", "explicit charges as q1,q2")
	solveCmd.Flags().Bool("profile", false, "write a CPU profile of the solve")
}

func RunSolve(sm *SolveModel) error {
	if sm.MeshFile == "" {
		return fmt.Errorf("a mesh file is required, use -f")
	}

	ip := &InputParameters.PoissonParameters{
		SourceCount:   sm.SourceCount,
		Seed:          sm.Seed,
		BoundaryValue: sm.BoundaryValue,
	}
	if sm.InputFile != "" {
		data, err := os.ReadFile(sm.InputFile)
		if err != nil {
			return err
		}
		if err = ip.Parse(data); err != nil {
			return err
		}
		ip.Print()
	}
	if sm.Sources != "" || sm.Charges != "" {
		coords, err := potential.ParseSources(sm.Sources)
		if err != nil {
			return err
		}
		charges, err := potential.ParseCharges(sm.Charges)
		if err != nil {
			return err
		}
		ip.Sources, ip.Charges = coords, charges
	}

	m, err := mesh.ReadMeshFile(sm.MeshFile)
	if err != nil {
		return err
	}
	model, err := potential.NewModel(m, ip.Seed)
	if err != nil {
		return err
	}
	model.BoundaryValue = ip.BoundaryValue
	fmt.Printf("mesh: %d nodes, %d elements, complexity [%s]\n",
		model.Report.NumNodes, model.Report.NumElements, model.Report.Complexity)

	start := time.Now()
	var result *potential.Result
	if ip.Manual() {
		result, err = model.SolveManual(ip.Sources, ip.Charges)
	} else {
		result, err = model.SolveAuto(ip.SourceCount)
	}
	if err != nil {
		return err
	}
	fmt.Printf("solved %d unknowns with %d sources in %v\n",
		len(result.Potential), len(result.Sources), time.Since(start))

	min, max := result.Potential[0], result.Potential[0]
	for _, v := range result.Potential {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	fmt.Printf("potential range: [%8.5f, %8.5f]\n", min, max)
	for i, src := range result.Sources {
		v := m.Vertices[src.Node]
		fmt.Printf("source[%d]: node %d (%.4f, %.4f, %.4f), charge %8.5f\n",
			i, src.Node, v[0], v[1], v[2], src.Charge)
	}

	if sm.OutputFile != "" {
		if err = writeField(sm.OutputFile, result.Potential); err != nil {
			return err
		}
		fmt.Printf("wrote potential field to %s\n", sm.OutputFile)
	}
	return nil
}

// writeField writes one potential value per line, in node order, for
// downstream color mapping
func writeField(filename string, field []float64) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, v := range field {
		fmt.Fprintf(w, "%.12g\n", v)
	}
	return w.Flush()
}
