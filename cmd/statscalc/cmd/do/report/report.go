package report

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HazyCorp/statscalc/internal/registry"
	"github.com/HazyCorp/statscalc/internal/statsapi"
	"github.com/HazyCorp/statscalc/pkg/common/hzlog"
)

var (
	inPath  string
	outPath string
)

// ReportCmd drives the same boundary path the service exposes:
// create a calculator, load the input file into it, write the
// fixed-format stats file, destroy the handle.
var ReportCmd = &cobra.Command{
	Use:   "report",
	Short: "reads a sample file and writes its stats summary to a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		l := hzlog.MustBuild(hzlog.Config{Level: "warn", Mode: "console"})

		api := statsapi.New(statsapi.In{
			Logger:   l,
			Registry: registry.New(registry.DefaultConfig(), registry.WithLogger(l)),
		})

		handle := api.Create()
		defer api.Destroy(handle)

		api.ReadFile(handle, inPath)
		api.WriteStats(handle, outPath)

		fmt.Printf("Input:  %s\nOutput: %s\n", inPath, outPath)
		return nil
	},
}

func init() {
	ReportCmd.Flags().StringVarP(&inPath, "in", "i", "", "path of the sample file to read")
	ReportCmd.MarkFlagRequired("in")

	ReportCmd.Flags().StringVarP(&outPath, "out", "o", "", "path of the stats file to write")
	ReportCmd.MarkFlagRequired("out")
}
