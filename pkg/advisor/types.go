package advisor

import "agroadvisor/pkg/crop"

// PredictionInput is one farmer form submission. Bounds mirror the form sliders.
type PredictionInput struct {
	Crop                string  `json:"crop" form:"crop" validate:"required"`
	TemperatureC        float64 `json:"temperature_c" form:"temperature_c" validate:"gte=0,lte=50"`
	RainfallMM          float64 `json:"rainfall_mm" form:"rainfall_mm" validate:"gte=0,lte=3000"`
	SoilPH              float64 `json:"soil_ph" form:"soil_ph" validate:"gte=0,lte=14"`
	SoilMoisture        float64 `json:"soil_moisture" form:"soil_moisture" validate:"gte=0,lte=1"`
	FertilizerKgHa      float64 `json:"fertilizer_kg_ha" form:"fertilizer_kg_ha" validate:"gte=0,lte=500"`
	PesticideKgHa       float64 `json:"pesticide_kg_ha" form:"pesticide_kg_ha" validate:"gte=0,lte=50"`
	SustainabilityScore float64 `json:"sustainability_score" form:"sustainability_score" validate:"gte=0,lte=10"`
}

// InputFromDefaults builds the untouched form submission for a crop.
func InputFromDefaults(d crop.FormDefaults) PredictionInput {
	return PredictionInput{
		Crop:                string(d.Crop),
		TemperatureC:        d.TemperatureC,
		RainfallMM:          d.RainfallMM,
		SoilPH:              d.SoilPH,
		SoilMoisture:        d.SoilMoisture,
		FertilizerKgHa:      d.FertilizerKgHa,
		PesticideKgHa:       d.PesticideKgHa,
		SustainabilityScore: d.SustainabilityScore,
	}
}

// Section names an advisory block. The constant order is the rendering order.
type Section string

const (
	SectionTemperature Section = "temperature"
	SectionSoilPH      Section = "soil_ph"
	SectionRainfall    Section = "rainfall"
	SectionGrowthStage Section = "growth_stage"
	SectionNutrients   Section = "nutrient_management"
)

// Deviation says which side of the optimal range a reading falls on.
type Deviation string

const (
	Low  Deviation = "low"
	High Deviation = "high"
)

type TemperatureAdvice struct {
	Deviation Deviation  `json:"deviation"`
	ObservedC float64    `json:"observed_c"`
	Optimal   crop.Range `json:"optimal"`
	// low only
	SoilTargetC    float64 `json:"soil_target_c,omitempty"`
	MoistureBuffer float64 `json:"moisture_buffer,omitempty"`
	// high only
	PlantingShift string `json:"planting_shift,omitempty"`
}

// Dose is a single amendment application.
type Dose struct {
	Material string `json:"material"`
	KgPerHa  int    `json:"kg_per_ha"`
}

type SoilPHAdvice struct {
	Deviation Deviation  `json:"deviation"`
	Observed  float64    `json:"observed"`
	Optimal   crop.Range `json:"optimal"`
	Amendment Dose       `json:"amendment"`
}

// CriticalStage is an irrigation-critical growth stage, DAS = days after sowing.
type CriticalStage struct {
	Name string `json:"name"`
	DAS  string `json:"das"`
}

type RainfallAdvice struct {
	ObservedMM       float64         `json:"observed_mm"`
	Optimal          crop.Range      `json:"optimal"`
	EmitterSpacingCM int             `json:"emitter_spacing_cm"`
	PressureBar      string          `json:"pressure_bar"`
	Mulch            string          `json:"mulch"`
	CriticalStages   []CriticalStage `json:"critical_stages"`
}

type Phase struct {
	Name      string   `json:"name"`
	Window    string   `json:"window"`
	Practices []string `json:"practices"`
}

type GrowthSchedule struct {
	Phases []Phase `json:"phases"`
}

// NutrientDose is one base fertilizer line, e.g. N → "40kg/ha at planting".
type NutrientDose struct {
	Nutrient string `json:"nutrient"`
	Detail   string `json:"detail"`
}

// StageNutrient is a growth-stage top dressing.
type StageNutrient struct {
	Stage  string `json:"stage"`
	Detail string `json:"detail"`
}

type Deficiency struct {
	Nutrient   string `json:"nutrient"`
	Symptom    string `json:"symptom"`
	Correction string `json:"correction"`
}

type NutrientGuide struct {
	Base           []NutrientDose  `json:"base"`
	StageNutrients []StageNutrient `json:"stage_nutrients"`
	Deficiencies   []Deficiency    `json:"deficiencies"`
}

// Bundle is the set of advisory sections selected for one input.
// Nil pointers are sections that did not fire.
type Bundle struct {
	Crop        crop.Crop          `json:"crop"`
	Temperature *TemperatureAdvice `json:"temperature,omitempty"`
	SoilPH      *SoilPHAdvice      `json:"soil_ph,omitempty"`
	Rainfall    *RainfallAdvice    `json:"rainfall,omitempty"`
	Growth      GrowthSchedule     `json:"growth_stage"`
	Nutrients   NutrientGuide      `json:"nutrient_management"`
}

// Sections lists the fired sections in rendering order.
func (b Bundle) Sections() []Section {
	out := make([]Section, 0, 5)
	if b.Temperature != nil {
		out = append(out, SectionTemperature)
	}
	if b.SoilPH != nil {
		out = append(out, SectionSoilPH)
	}
	if b.Rainfall != nil {
		out = append(out, SectionRainfall)
	}
	return append(out, SectionGrowthStage, SectionNutrients)
}

// Outlook is the coarse yield verdict shown above the sections.
type Outlook string

const (
	Excellent      Outlook = "excellent"
	NeedsAttention Outlook = "needs_attention"
)

type Assessment struct {
	PredictedYield float64 `json:"predicted_yield_ton_ha"`
	DatasetMean    float64 `json:"dataset_mean_ton_ha"`
	Outlook        Outlook `json:"outlook"`
}
