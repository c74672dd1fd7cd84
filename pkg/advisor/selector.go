package advisor

import (
	"agroadvisor/pkg/crop"
)

// Select evaluates every advisory rule for the profile's crop against in.
// The input's own crop field is ignored; callers pass the matching profile.
func Select(p crop.Profile, in PredictionInput) (Bundle, error) {
	v, ok := variants[p.Crop]
	if !ok {
		return Bundle{}, &crop.UnknownCropError{Name: string(p.Crop)}
	}

	b := Bundle{
		Crop:        p.Crop,
		Temperature: temperature(p, v, in.TemperatureC),
		SoilPH:      soilPH(p, v, in.SoilPH),
		Rainfall:    rainfall(p, v, in.RainfallMM),
		Growth:      growth(p, v),
		Nutrients: NutrientGuide{
			Base:           append([]NutrientDose(nil), v.base...),
			StageNutrients: append([]StageNutrient(nil), v.stageNutrients...),
			Deficiencies:   append([]Deficiency(nil), v.deficiencies...),
		},
	}
	return b, nil
}

// Recommend looks up the input's crop and runs Select.
func Recommend(in PredictionInput) (Bundle, error) {
	p, err := crop.Lookup(in.Crop)
	if err != nil {
		return Bundle{}, err
	}
	return Select(p, in)
}

// Assess compares a yield prediction with the training target mean.
func Assess(prediction, mean float64) Assessment {
	a := Assessment{PredictedYield: prediction, DatasetMean: mean, Outlook: NeedsAttention}
	if prediction > mean {
		a.Outlook = Excellent
	}
	return a
}

func temperature(p crop.Profile, v variant, t float64) *TemperatureAdvice {
	switch {
	case p.Temperature.Below(t):
		return &TemperatureAdvice{
			Deviation:      Low,
			ObservedC:      t,
			Optimal:        p.Temperature,
			SoilTargetC:    p.Temperature.Min,
			MoistureBuffer: p.SoilMoisture.Min,
		}
	case p.Temperature.Above(t):
		return &TemperatureAdvice{
			Deviation:     High,
			ObservedC:     t,
			Optimal:       p.Temperature,
			PlantingShift: v.plantingShift,
		}
	}
	return nil
}

func soilPH(p crop.Profile, v variant, ph float64) *SoilPHAdvice {
	switch {
	case p.SoilPH.Below(ph):
		return &SoilPHAdvice{
			Deviation: Low,
			Observed:  ph,
			Optimal:   p.SoilPH,
			Amendment: Dose{Material: "agricultural lime", KgPerHa: v.limeKgHa},
		}
	case p.SoilPH.Above(ph):
		return &SoilPHAdvice{
			Deviation: High,
			Observed:  ph,
			Optimal:   p.SoilPH,
			Amendment: Dose{Material: "sulfur", KgPerHa: v.sulfurKgHa},
		}
	}
	return nil
}

// rainfall only reports shortfalls; there is no excess-rainfall block.
func rainfall(p crop.Profile, v variant, mm float64) *RainfallAdvice {
	if !p.RainfallMM.Below(mm) {
		return nil
	}
	return &RainfallAdvice{
		ObservedMM:       mm,
		Optimal:          p.RainfallMM,
		EmitterSpacingCM: v.emitterSpacingCM,
		PressureBar:      v.pressureBar,
		Mulch:            v.mulch,
		CriticalStages:   append([]CriticalStage(nil), v.criticalStages...),
	}
}

func growth(p crop.Profile, v variant) GrowthSchedule {
	phases := make([]Phase, len(phaseNames))
	for i, name := range phaseNames {
		window := p.GrowingPeriod
		if i < len(phaseWindows) {
			window = phaseWindows[i]
		}
		phases[i] = Phase{
			Name:      name,
			Window:    window,
			Practices: append([]string(nil), v.practices[i]...),
		}
	}
	return GrowthSchedule{Phases: phases}
}
