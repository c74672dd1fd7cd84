package advisor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroadvisor/pkg/crop"
)

// inRange returns an input that sits inside every optimal range of p.
func inRange(p crop.Profile) PredictionInput {
	mid := func(r crop.Range) float64 { return (r.Min + r.Max) / 2 }
	return PredictionInput{
		Crop:                string(p.Crop),
		TemperatureC:        mid(p.Temperature),
		RainfallMM:          mid(p.RainfallMM),
		SoilPH:              mid(p.SoilPH),
		SoilMoisture:        mid(p.SoilMoisture),
		FertilizerKgHa:      100,
		PesticideKgHa:       5,
		SustainabilityScore: 7,
	}
}

func TestSelectInRangeFiresOnlyUnconditionalSections(t *testing.T) {
	for _, p := range crop.Profiles() {
		b, err := Select(p, inRange(p))
		require.NoError(t, err)
		assert.Equal(t, []Section{SectionGrowthStage, SectionNutrients}, b.Sections(), p.Crop)
	}
}

func TestTemperatureBoundaries(t *testing.T) {
	for _, p := range crop.Profiles() {
		in := inRange(p)
		cases := []struct {
			temp float64
			want *Deviation
		}{
			{p.Temperature.Min - 0.1, ptr(Low)},
			{p.Temperature.Min, nil},
			{p.Temperature.Max, nil},
			{p.Temperature.Max + 0.1, ptr(High)},
		}
		for _, tc := range cases {
			in.TemperatureC = tc.temp
			b, err := Select(p, in)
			require.NoError(t, err)
			if tc.want == nil {
				assert.Nil(t, b.Temperature, "%s %.1f", p.Crop, tc.temp)
				continue
			}
			require.NotNil(t, b.Temperature, "%s %.1f", p.Crop, tc.temp)
			assert.Equal(t, *tc.want, b.Temperature.Deviation)
		}
	}
}

func TestSoilPHBoundaries(t *testing.T) {
	for _, p := range crop.Profiles() {
		in := inRange(p)

		in.SoilPH = p.SoilPH.Min
		b, _ := Select(p, in)
		assert.Nil(t, b.SoilPH)

		in.SoilPH = p.SoilPH.Max
		b, _ = Select(p, in)
		assert.Nil(t, b.SoilPH)

		in.SoilPH = p.SoilPH.Min - 0.5
		b, _ = Select(p, in)
		require.NotNil(t, b.SoilPH)
		assert.Equal(t, Low, b.SoilPH.Deviation)
		assert.Equal(t, "agricultural lime", b.SoilPH.Amendment.Material)

		in.SoilPH = p.SoilPH.Max + 0.5
		b, _ = Select(p, in)
		require.NotNil(t, b.SoilPH)
		assert.Equal(t, High, b.SoilPH.Deviation)
		assert.Equal(t, "sulfur", b.SoilPH.Amendment.Material)
	}
}

func TestRainfallOnlyReportsShortfall(t *testing.T) {
	for _, p := range crop.Profiles() {
		in := inRange(p)

		in.RainfallMM = p.RainfallMM.Min - 1
		b, _ := Select(p, in)
		require.NotNil(t, b.Rainfall, p.Crop)
		assert.Equal(t, in.RainfallMM, b.Rainfall.ObservedMM)
		assert.Len(t, b.Rainfall.CriticalStages, 3)

		in.RainfallMM = p.RainfallMM.Min
		b, _ = Select(p, in)
		assert.Nil(t, b.Rainfall)

		// excess rainfall stays silent
		in.RainfallMM = p.RainfallMM.Max + 500
		b, _ = Select(p, in)
		assert.Nil(t, b.Rainfall, p.Crop)
	}
}

func TestUnconditionalSectionsAlwaysFire(t *testing.T) {
	extremes := []PredictionInput{
		{TemperatureC: 0, RainfallMM: 0, SoilPH: 0, SoilMoisture: 0},
		{TemperatureC: 50, RainfallMM: 3000, SoilPH: 14, SoilMoisture: 1},
	}
	for _, p := range crop.Profiles() {
		for _, in := range extremes {
			b, err := Select(p, in)
			require.NoError(t, err)
			require.Len(t, b.Growth.Phases, 5)
			assert.Equal(t, p.GrowingPeriod, b.Growth.Phases[4].Window)
			for _, ph := range b.Growth.Phases {
				assert.Len(t, ph.Practices, 4)
			}
			assert.Len(t, b.Nutrients.Base, 4)
			assert.Len(t, b.Nutrients.StageNutrients, 3)
			assert.Len(t, b.Nutrients.Deficiencies, 3)
			assert.Contains(t, b.Sections(), SectionGrowthStage)
			assert.Contains(t, b.Sections(), SectionNutrients)
		}
	}
}

func TestRiceLowTemperature(t *testing.T) {
	in := inRange(crop.MustLookup(crop.Rice))
	in.TemperatureC = 15
	b, err := Recommend(in)
	require.NoError(t, err)
	require.NotNil(t, b.Temperature)
	assert.Equal(t, Low, b.Temperature.Deviation)
	assert.Equal(t, crop.Range{Min: 20, Max: 35}, b.Temperature.Optimal)
	assert.Equal(t, 20.0, b.Temperature.SoilTargetC)
	assert.Equal(t, 0.6, b.Temperature.MoistureBuffer)
	assert.Equal(t, SectionTemperature, b.Sections()[0])
}

func TestWheatAlkalineSulfurDose(t *testing.T) {
	in := inRange(crop.MustLookup(crop.Wheat))
	in.SoilPH = 7.5
	b, err := Recommend(in)
	require.NoError(t, err)
	require.NotNil(t, b.SoilPH)
	assert.Equal(t, High, b.SoilPH.Deviation)
	assert.Equal(t, 400, b.SoilPH.Amendment.KgPerHa)
}

func TestCornRainfallEmitters(t *testing.T) {
	in := inRange(crop.MustLookup(crop.Corn))
	in.RainfallMM = 400
	b, err := Recommend(in)
	require.NoError(t, err)
	require.NotNil(t, b.Rainfall)
	assert.Equal(t, 45, b.Rainfall.EmitterSpacingCM)
	assert.Equal(t, "1.0-1.5 bar", b.Rainfall.PressureBar)
	assert.Equal(t, "corn stalks", b.Rainfall.Mulch)
}

func TestDoseTables(t *testing.T) {
	lime := map[crop.Crop]int{crop.Rice: 2000, crop.Corn: 2000, crop.Wheat: 1500, crop.Soybean: 1500}
	sulfur := map[crop.Crop]int{crop.Rice: 300, crop.Soybean: 300, crop.Wheat: 400, crop.Corn: 400}
	emitter := map[crop.Crop]int{crop.Rice: 30, crop.Wheat: 30, crop.Corn: 45, crop.Soybean: 45}
	shift := map[crop.Crop]string{crop.Rice: "3-4 weeks", crop.Wheat: "4-5 weeks", crop.Corn: "2-3 weeks", crop.Soybean: "3-4 weeks"}

	for _, p := range crop.Profiles() {
		in := inRange(p)
		in.SoilPH = 0
		in.RainfallMM = 0
		in.TemperatureC = 50
		b, err := Select(p, in)
		require.NoError(t, err)
		assert.Equal(t, lime[p.Crop], b.SoilPH.Amendment.KgPerHa, p.Crop)
		assert.Equal(t, emitter[p.Crop], b.Rainfall.EmitterSpacingCM, p.Crop)
		assert.Equal(t, shift[p.Crop], b.Temperature.PlantingShift, p.Crop)

		in.SoilPH = 14
		b, _ = Select(p, in)
		assert.Equal(t, sulfur[p.Crop], b.SoilPH.Amendment.KgPerHa, p.Crop)
	}
}

func TestRecommendUnknownCrop(t *testing.T) {
	_, err := Recommend(PredictionInput{Crop: "Barley"})
	var uce *crop.UnknownCropError
	require.True(t, errors.As(err, &uce))

	_, err = Select(crop.Profile{Crop: "Barley"}, PredictionInput{})
	require.True(t, errors.As(err, &uce))
}

func TestSelectDoesNotShareTableSlices(t *testing.T) {
	p := crop.MustLookup(crop.Rice)
	b, err := Select(p, inRange(p))
	require.NoError(t, err)
	b.Growth.Phases[0].Practices[0] = "changed"
	b.Nutrients.Base[0].Detail = "changed"

	again, err := Select(p, inRange(p))
	require.NoError(t, err)
	assert.Equal(t, "Puddling to 15cm depth", again.Growth.Phases[0].Practices[0])
	assert.Equal(t, "40kg/ha at planting", again.Nutrients.Base[0].Detail)
}

func TestAssess(t *testing.T) {
	assert.Equal(t, Excellent, Assess(4.2, 4.0).Outlook)
	assert.Equal(t, NeedsAttention, Assess(4.0, 4.0).Outlook)
	assert.Equal(t, NeedsAttention, Assess(3.1, 4.0).Outlook)
}

func ptr(d Deviation) *Deviation { return &d }
