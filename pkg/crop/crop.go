package crop

import (
	"fmt"
	"strings"
)

// Crop identifies one of the supported crops.
type Crop string

const (
	Rice    Crop = "Rice"
	Wheat   Crop = "Wheat"
	Corn    Crop = "Corn"
	Soybean Crop = "Soybean"
)

// Range is a closed interval [Min, Max].
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Below reports whether v is strictly under the range.
func (r Range) Below(v float64) bool { return v < r.Min }

// Above reports whether v is strictly over the range.
func (r Range) Above(v float64) bool { return v > r.Max }

// Contains reports whether v lies within the range, bounds included.
func (r Range) Contains(v float64) bool { return !r.Below(v) && !r.Above(v) }

// Profile holds the optimal growing conditions of one crop.
type Profile struct {
	Crop             Crop   `json:"crop"`
	Temperature      Range  `json:"temperature_c"`
	SoilPH           Range  `json:"soil_ph"`
	RainfallMM       Range  `json:"rainfall_mm"`
	SoilMoisture     Range  `json:"soil_moisture"`
	NPKRequirement   string `json:"npk_requirement"`
	GrowingPeriod    string `json:"growing_period"`
	WaterRequirement string `json:"water_requirement_mm"`
}

// UnknownCropError is returned when a crop identifier is not in the table.
type UnknownCropError struct {
	Name string
}

func (e *UnknownCropError) Error() string {
	return fmt.Sprintf("unknown crop %q (supported: %s)", e.Name, strings.Join(names(), ", "))
}

// order is also the display order of the selector.
var order = []Crop{Rice, Wheat, Corn, Soybean}

var table = map[Crop]Profile{
	Rice: {
		Crop:             Rice,
		Temperature:      Range{20, 35},
		SoilPH:           Range{5.5, 6.5},
		RainfallMM:       Range{1000, 2000},
		SoilMoisture:     Range{0.6, 0.8},
		NPKRequirement:   "N: 120kg/ha, P: 60kg/ha, K: 60kg/ha",
		GrowingPeriod:    "90-120 days",
		WaterRequirement: "1200-1600mm",
	},
	Wheat: {
		Crop:             Wheat,
		Temperature:      Range{15, 25},
		SoilPH:           Range{6.0, 7.0},
		RainfallMM:       Range{600, 1100},
		SoilMoisture:     Range{0.5, 0.7},
		NPKRequirement:   "N: 100kg/ha, P: 50kg/ha, K: 50kg/ha",
		GrowingPeriod:    "120-150 days",
		WaterRequirement: "450-650mm",
	},
	Corn: {
		Crop:             Corn,
		Temperature:      Range{18, 32},
		SoilPH:           Range{5.8, 7.0},
		RainfallMM:       Range{500, 800},
		SoilMoisture:     Range{0.5, 0.75},
		NPKRequirement:   "N: 150kg/ha, P: 75kg/ha, K: 75kg/ha",
		GrowingPeriod:    "90-120 days",
		WaterRequirement: "500-800mm",
	},
	Soybean: {
		Crop:             Soybean,
		Temperature:      Range{20, 30},
		SoilPH:           Range{6.0, 6.8},
		RainfallMM:       Range{450, 700},
		SoilMoisture:     Range{0.5, 0.7},
		NPKRequirement:   "N: 20kg/ha, P: 60kg/ha, K: 40kg/ha",
		GrowingPeriod:    "100-120 days",
		WaterRequirement: "450-700mm",
	},
}

// Supported returns the crops in display order.
func Supported() []Crop {
	out := make([]Crop, len(order))
	copy(out, order)
	return out
}

// Parse resolves a crop identifier. Matching is exact.
func Parse(name string) (Crop, error) {
	c := Crop(name)
	if _, ok := table[c]; !ok {
		return "", &UnknownCropError{Name: name}
	}
	return c, nil
}

// Lookup returns the profile for name, or *UnknownCropError.
func Lookup(name string) (Profile, error) {
	c, err := Parse(name)
	if err != nil {
		return Profile{}, err
	}
	return table[c], nil
}

// MustLookup is for crops already known to be valid.
func MustLookup(c Crop) Profile {
	p, err := Lookup(string(c))
	if err != nil {
		panic(err)
	}
	return p
}

// Profiles returns every profile in display order.
func Profiles() []Profile {
	out := make([]Profile, 0, len(order))
	for _, c := range order {
		out = append(out, table[c])
	}
	return out
}

func names() []string {
	out := make([]string, len(order))
	for i, c := range order {
		out[i] = string(c)
	}
	return out
}
