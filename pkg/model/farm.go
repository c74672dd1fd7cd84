package model

import (
	"fmt"

	"agroadvisor/pkg/advisor"
	"agroadvisor/pkg/crop"
	"agroadvisor/pkg/dataset"
)

const (
	FarmTarget = "Crop_Yield_ton"
	FarmID     = "Farm_ID"
	CropColumn = "Crop_Type"
)

// farmInputs are the numeric feature columns the farmer form fills in.
var farmInputs = []string{
	"Soil_pH",
	"Soil_Moisture",
	"Temperature_C",
	"Rainfall_mm",
	"Fertilizer_Usage_kg",
	"Pesticide_Usage_kg",
	"Sustainability_Score",
}

func cropIndicator(c crop.Crop) string { return CropColumn + "_" + string(c) }

// TrainFarm fits the yield model. Farm_ID is never a feature; every crop in
// the condition table must appear in Crop_Type.
func TrainFarm(f *dataset.Frame, opts Options) (*Trained, error) {
	if c, ok := f.Column(CropColumn); ok && c.Kind != dataset.Categorical {
		return nil, &SchemaMismatchError{Kind: Farm, Reason: CropColumn + " must be categorical"}
	}
	var missing []string
	for _, n := range append([]string{FarmTarget, CropColumn}, farmInputs...) {
		if _, ok := f.Column(n); !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaMismatchError{Kind: Farm, Missing: missing}
	}

	t, err := fit(Farm, f, FarmTarget, []string{FarmID}, opts)
	if err != nil {
		return nil, err
	}

	known := map[string]bool{}
	for _, n := range farmInputs {
		known[n] = true
	}
	for _, c := range crop.Supported() {
		known[cropIndicator(c)] = true
	}
	var unexpected []string
	for _, feat := range t.Features {
		if !known[feat] && !t.Indicator(feat) {
			unexpected = append(unexpected, feat)
		}
		delete(known, feat)
	}
	missing = missing[:0]
	for _, c := range crop.Supported() {
		if known[cropIndicator(c)] {
			missing = append(missing, cropIndicator(c))
		}
	}
	if len(missing) > 0 || len(unexpected) > 0 {
		return nil, &SchemaMismatchError{Kind: Farm, Missing: missing, Unexpected: unexpected}
	}
	return t, nil
}

// FarmRow lays a form submission out in training column order. Each supported
// crop gets an indicator with exactly one set; indicators of any other
// categorical column are zero.
func (t *Trained) FarmRow(in advisor.PredictionInput) ([]float64, error) {
	if t.Kind != Farm {
		return nil, fmt.Errorf("model: FarmRow called on %s model", t.Kind)
	}
	selected, err := crop.Parse(in.Crop)
	if err != nil {
		return nil, err
	}
	values := map[string]float64{
		"Soil_pH":              in.SoilPH,
		"Soil_Moisture":        in.SoilMoisture,
		"Temperature_C":        in.TemperatureC,
		"Rainfall_mm":          in.RainfallMM,
		"Fertilizer_Usage_kg":  in.FertilizerKgHa,
		"Pesticide_Usage_kg":   in.PesticideKgHa,
		"Sustainability_Score": in.SustainabilityScore,
	}
	for _, c := range crop.Supported() {
		values[cropIndicator(c)] = 0
	}
	values[cropIndicator(selected)] = 1

	row := make([]float64, len(t.Features))
	for i, feat := range t.Features {
		v, ok := values[feat]
		switch {
		case ok:
			row[i] = v
		case t.Indicator(feat):
			row[i] = 0
		default:
			return nil, &SchemaMismatchError{Kind: Farm, Unexpected: []string{feat}}
		}
	}
	return row, nil
}
