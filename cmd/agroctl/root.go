package main

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"agroadvisor/config"
	"agroadvisor/pkg/logging"
	"agroadvisor/pkg/market"
	"agroadvisor/pkg/model"
)

// app carries the flags shared by every subcommand.
type app struct {
	farmPath   string
	marketPath string
	schemaPath string
	trees      int
	plain      bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	cfg := config.FromEnv(os.Getenv)
	a := &app{}

	root := &cobra.Command{
		Use:           "agroctl",
		Short:         "Crop yield advice and market outlooks from local datasets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := "warn"
			if a.verbose {
				level = "debug"
			}
			logging.Init(logging.Config{Level: level, Format: "console", Output: cmd.ErrOrStderr()})
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.farmPath, "farm-dataset", cfg.FarmerDataset, "farmer advisor dataset (.csv or .xlsx)")
	pf.StringVar(&a.marketPath, "market-dataset", cfg.MarketDataset, "market researcher dataset (.csv or .xlsx)")
	pf.StringVar(&a.schemaPath, "market-schema", cfg.MarketSchema, "YAML file declaring market column categories")
	pf.IntVar(&a.trees, "trees", 100, "boosting rounds per model")
	pf.BoolVar(&a.plain, "plain", false, "print raw Markdown instead of styled terminal output")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(
		newCropsCmd(a),
		newRecommendCmd(a),
		newMarketCmd(a),
		newTrainCmd(a),
	)
	return root
}

func (a *app) registry(rec model.RunRecorder) *model.Registry {
	fo, mo := model.FarmOptions(), model.MarketOptions()
	fo.Params.Trees, mo.Params.Trees = a.trees, a.trees
	return model.NewRegistry(
		model.Source{Path: a.farmPath, Options: fo},
		model.Source{Path: a.marketPath, Options: mo},
		rec,
	)
}

func (a *app) schema() (market.Schema, error) { return market.LoadSchema(a.schemaPath) }

// print writes Markdown, styled for the terminal unless --plain.
func (a *app) print(w io.Writer, markdown string) error {
	if a.plain {
		_, err := io.WriteString(w, markdown)
		return err
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err != nil {
		return err
	}
	out, err := r.Render(markdown)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func ctx(cmd *cobra.Command) context.Context {
	if c := cmd.Context(); c != nil {
		return c
	}
	return context.Background()
}
