package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"agroadvisor/database"
	"agroadvisor/pkg/model"
	"agroadvisor/pkg/training/repositoryImp"
	"agroadvisor/pkg/training/serviceImp"
)

func newTrainCmd(a *app) *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Fit both models and report their hold-out scores",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var rec model.RunRecorder
			if dbPath != "" {
				db, err := database.Open(dbPath)
				if err != nil {
					return err
				}
				rec = serviceImp.NewTrainingService(repositoryImp.New(db))
			}
			reg := a.registry(rec)

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				Headers("Model", "Shape", "Train/Test", "MSE", "R²", "Elapsed")
			for _, kind := range []model.Kind{model.Farm, model.Market} {
				start := time.Now()
				tr, err := reg.Get(ctx(cmd), kind)
				if err != nil {
					return fmt.Errorf("%s model: %w", kind, err)
				}
				t.Row(
					string(kind),
					fmt.Sprintf("(%d, %d)", tr.Rows, tr.Columns),
					fmt.Sprintf("%d/%d", tr.TrainRows, tr.TestRows),
					fmt.Sprintf("%.6f", tr.Metrics.MSE),
					fmt.Sprintf("%.4f", tr.Metrics.R2),
					time.Since(start).Round(time.Millisecond).String(),
				)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return err
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "sqlite file to record the training runs in")
	return cmd
}
