// Command zplace is a thin exerciser for the placement core: it loads
// a sample architecture catalog and netlist from YAML, runs the
// placement pipeline, and prints a banner report. It is not a full
// P&R tool — there is no router, no bitstream writer, no GUI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/zeonica-pnr/arch"
	"github.com/sarchlab/zeonica-pnr/design"
	"github.com/sarchlab/zeonica-pnr/ident"
	"github.com/sarchlab/zeonica-pnr/place"
)

var (
	flagVerbose    bool
	flagForce      bool
	flagSeed       int64
	flagTargetFreq float64
	flagArchPath   string
	flagNetPath    string
)

func main() {
	root := &cobra.Command{
		Use:   "zplace",
		Short: "Place a netlist onto a sample architecture catalog",
	}
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "emit per-cell progress")
	root.PersistentFlags().BoolVarP(&flagForce, "force", "f", false, "continue past non-fatal errors")
	root.PersistentFlags().Int64Var(&flagSeed, "seed", 1, "PRNG seed")
	root.PersistentFlags().Float64Var(&flagTargetFreq, "target-freq", 0, "target clock frequency in Hz (0 = unconstrained)")
	root.PersistentFlags().StringVar(&flagArchPath, "arch", "", "path to the architecture catalog YAML (required)")
	root.PersistentFlags().StringVar(&flagNetPath, "netlist", "", "path to the netlist YAML (required)")

	root.AddCommand(newPlaceCmd(), newCheckCmd())

	atexit.Register(func() { fmt.Fprintln(os.Stdout, "zplace: exiting") })

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

func newPlaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "place",
		Short: "Run constraint and heuristic placement and print a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := loadContext()
			if err != nil {
				return err
			}

			opts := place.DefaultOptions().
				WithForce(flagForce).
				WithVerbose(flagVerbose).
				WithTargetFreq(flagTargetFreq).
				WithProgress(func(e place.ProgressEvent) {
					if flagVerbose {
						fmt.Println(e.Message)
					}
				})

			summary, err := place.Run(ctx, opts)
			if err != nil {
				return fmt.Errorf("zplace: %w", err)
			}

			summary.WriteReport(os.Stdout)
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load a netlist and run the integrity checker (I1-I5) without placing it",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := loadContext()
			if err != nil {
				return err
			}

			if err := ctx.Check(); err != nil {
				return fmt.Errorf("zplace: %w", err)
			}

			fmt.Printf("✓ integrity check passed, checksum %08x\n", ctx.Checksum())
			return nil
		},
	}
}

func loadContext() (*design.Context, error) {
	if flagArchPath == "" || flagNetPath == "" {
		return nil, fmt.Errorf("zplace: --arch and --netlist are both required")
	}

	in := ident.NewInterner()

	cat, err := arch.LoadSampleCatalogFromYAML(flagArchPath, in)
	if err != nil {
		return nil, fmt.Errorf("zplace: loading architecture: %w", err)
	}

	ctx := design.NewContext(in, cat, uint64(flagSeed))

	if err := design.LoadNetlistFromYAML(ctx, flagNetPath); err != nil {
		return nil, fmt.Errorf("zplace: loading netlist: %w", err)
	}

	return ctx, nil
}
