package main

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"agroadvisor/pkg/market/serviceImp"
	"agroadvisor/pkg/validation"
)

func newMarketCmd(a *app) *cobra.Command {
	var (
		set    map[string]string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:     "market",
		Short:   "Score market conditions and print the outlook",
		Example: "  agroctl market --set Demand_Index=120 --set Supply_Index=80",
		RunE: func(cmd *cobra.Command, _ []string) error {
			values, err := parseValues(set)
			if err != nil {
				return err
			}
			schema, err := a.schema()
			if err != nil {
				return err
			}
			out, err := serviceImp.NewMarketService(a.registry(nil), schema).Analyze(ctx(cmd), values)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			return a.print(cmd.OutOrStdout(), out.Report)
		},
	}
	cmd.Flags().StringToStringVar(&set, "set", nil, "feature value as Column=number; omitted features use the dataset mean")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the analysis as JSON")
	return cmd
}

func parseValues(set map[string]string) (map[string]float64, error) {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make(map[string]float64, len(set))
	var bad []*validation.FieldError
	for _, k := range keys {
		v, err := strconv.ParseFloat(set[k], 64)
		if err != nil {
			bad = append(bad, &validation.FieldError{Field: k, Tag: "numeric", Message: k + " must be a number"})
			continue
		}
		values[k] = v
	}
	if err := validation.Collect(bad...); err != nil {
		return nil, err
	}
	return values, nil
}
