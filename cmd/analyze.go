package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardionics/tetfield/mesh"
	"github.com/cardionics/tetfield/sources"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze mesh geometry and report complexity",
	Long: `
Reads a tetrahedral mesh and reports node and element counts, bounding box,
geometric center, estimated volume, the complexity classification and the
recommended source count.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		meshFile, _ := cmd.Flags().GetString("meshFile")
		if meshFile == "" {
			return fmt.Errorf("a mesh file is required, use -f")
		}
		m, err := mesh.ReadMeshFile(meshFile)
		if err != nil {
			return err
		}
		report, err := sources.Analyze(m)
		if err != nil {
			return err
		}
		fmt.Printf("mesh file: %s\n", meshFile)
		report.Print()
		fmt.Printf("%8d\t\t= Boundary Nodes\n", len(m.BoundaryNodes()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringP("meshFile", "f", "", "VTK mesh file to analyze")
}
