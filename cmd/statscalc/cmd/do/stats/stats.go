package stats

import (
	"fmt"
	"os"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/HazyCorp/statscalc/internal/samplefile"
	"github.com/HazyCorp/statscalc/internal/util"
	"github.com/HazyCorp/statscalc/pkg/statcalc"
)

var (
	asJson    bool
	debugDump bool
)

type fileReport struct {
	File    string           `json:"file"`
	Count   int              `json:"count"`
	Summary statcalc.Summary `json:"summary"`
}

var StatsCmd = &cobra.Command{
	Use:   "stats <file>...",
	Short: "computes sum, mean and standard deviation for each sample file",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reports := make([]fileReport, len(args))

		var mu sync.Mutex
		var g errgroup.Group
		g.SetLimit(8)

		for i, path := range args {
			i, path := i, path
			g.Go(func() error {
				calc := statcalc.New()

				n, err := calc.LoadFrom(samplefile.FileSource{Path: path})
				if err != nil {
					return errors.Wrapf(err, "cannot load samples from %q", path)
				}

				mu.Lock()
				reports[i] = fileReport{File: path, Count: n, Summary: calc.Summary()}
				mu.Unlock()

				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return err
		}

		for _, rep := range reports {
			if debugDump {
				spew.Fdump(os.Stderr, rep)
			}

			if asJson {
				util.PrintJson(rep)
				continue
			}

			fmt.Printf("%s (%d samples)\n", rep.File, rep.Count)
			if err := samplefile.FprintSummary(os.Stdout, rep.Summary); err != nil {
				return err
			}
			fmt.Println()
		}

		return nil
	},
}

func init() {
	StatsCmd.Flags().BoolVar(&asJson, "json", false, "print reports as json instead of plain text")
	StatsCmd.Flags().BoolVar(&debugDump, "debug-dump", false, "dump raw report structs to stderr")
}
