package do

import (
	"github.com/spf13/cobra"

	"github.com/HazyCorp/statscalc/cmd/statscalc/cmd/do/report"
	"github.com/HazyCorp/statscalc/cmd/statscalc/cmd/do/stats"
)

var DoCmd = &cobra.Command{
	Use:   "do",
	Short: "one-shot operations without running the service",
}

func init() {
	DoCmd.AddCommand(stats.StatsCmd)
	DoCmd.AddCommand(report.ReportCmd)
}
