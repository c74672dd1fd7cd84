package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"agroadvisor/pkg/crop"
	"agroadvisor/pkg/render"
)

func newCropsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "crops [crop]",
		Short: "Show the optimal growing conditions table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				p, err := crop.Lookup(args[0])
				if err != nil {
					return err
				}
				return a.print(cmd.OutOrStdout(), render.ProfileSummary(p))
			}
			rows := make([][]string, 0, 4)
			for _, p := range crop.Profiles() {
				rows = append(rows, []string{
					string(p.Crop),
					rangeText(p.Temperature, "°C"),
					rangeText(p.SoilPH, ""),
					rangeText(p.RainfallMM, " mm"),
					rangeText(p.SoilMoisture, ""),
					p.GrowingPeriod,
					p.NPKRequirement,
				})
			}
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				Headers("Crop", "Temperature", "Soil pH", "Rainfall", "Moisture", "Period", "NPK").
				Rows(rows...)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return err
		},
	}
}

func rangeText(r crop.Range, unit string) string {
	return fmt.Sprintf("%g-%g%s", r.Min, r.Max, unit)
}
