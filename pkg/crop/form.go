package crop

// FormDefaults are the initial farmer form values for a crop.
type FormDefaults struct {
	Crop                Crop    `json:"crop"`
	TemperatureC        float64 `json:"temperature_c"`
	RainfallMM          float64 `json:"rainfall_mm"`
	SoilPH              float64 `json:"soil_ph"`
	SoilMoisture        float64 `json:"soil_moisture"`
	FertilizerKgHa      float64 `json:"fertilizer_kg_ha"`
	PesticideKgHa       float64 `json:"pesticide_kg_ha"`
	SustainabilityScore float64 `json:"sustainability_score"`
}

// Defaults seeds the form from the profile's lower bounds; the rest are fixed.
func Defaults(p Profile) FormDefaults {
	return FormDefaults{
		Crop:                p.Crop,
		TemperatureC:        25,
		RainfallMM:          p.RainfallMM.Min,
		SoilPH:              p.SoilPH.Min,
		SoilMoisture:        p.SoilMoisture.Min,
		FertilizerKgHa:      100,
		PesticideKgHa:       5,
		SustainabilityScore: 7,
	}
}
