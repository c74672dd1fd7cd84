package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"agroadvisor/pkg/advisor"
	"agroadvisor/pkg/advisor/serviceImp"
	"agroadvisor/pkg/crop"
)

func newRecommendCmd(a *app) *cobra.Command {
	var (
		in     advisor.PredictionInput
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Predict yield for one field and print the advisory report",
		Example: "  agroctl recommend --crop Rice --temperature 15\n" +
			"  agroctl recommend --crop Corn --rainfall 400 --plain",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := crop.Lookup(in.Crop)
			if err != nil {
				return err
			}
			// unset readings start from the crop's form defaults
			def := advisor.InputFromDefaults(crop.Defaults(p))
			for _, o := range []struct {
				flag     string
				dst, src *float64
			}{
				{"temperature", &def.TemperatureC, &in.TemperatureC},
				{"rainfall", &def.RainfallMM, &in.RainfallMM},
				{"ph", &def.SoilPH, &in.SoilPH},
				{"moisture", &def.SoilMoisture, &in.SoilMoisture},
				{"fertilizer", &def.FertilizerKgHa, &in.FertilizerKgHa},
				{"pesticide", &def.PesticideKgHa, &in.PesticideKgHa},
				{"sustainability", &def.SustainabilityScore, &in.SustainabilityScore},
			} {
				if cmd.Flags().Changed(o.flag) {
					*o.dst = *o.src
				}
			}

			adv, err := serviceImp.NewAdvisorService(a.registry(nil)).Advise(ctx(cmd), def)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(adv)
			}
			return a.print(cmd.OutOrStdout(), adv.Report)
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Crop, "crop", string(crop.Rice), "crop: Rice, Wheat, Corn or Soybean")
	f.Float64Var(&in.TemperatureC, "temperature", 25, "temperature in °C (0-50)")
	f.Float64Var(&in.RainfallMM, "rainfall", 0, "rainfall in mm (0-3000), default: crop minimum")
	f.Float64Var(&in.SoilPH, "ph", 0, "soil pH (0-14), default: crop minimum")
	f.Float64Var(&in.SoilMoisture, "moisture", 0, "soil moisture (0-1), default: crop minimum")
	f.Float64Var(&in.FertilizerKgHa, "fertilizer", 100, "fertilizer usage in kg/ha (0-500)")
	f.Float64Var(&in.PesticideKgHa, "pesticide", 5, "pesticide usage in kg/ha (0-50)")
	f.Float64Var(&in.SustainabilityScore, "sustainability", 7, "sustainability score (0-10)")
	f.BoolVar(&asJSON, "json", false, "print the structured advice as JSON")
	return cmd
}
