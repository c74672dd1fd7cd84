package crop

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupRangesAreOrdered(t *testing.T) {
	for _, c := range Supported() {
		p, err := Lookup(string(c))
		require.NoError(t, err, c)
		assert.Equal(t, c, p.Crop)
		for name, r := range map[string]Range{
			"temperature": p.Temperature,
			"soil_ph":     p.SoilPH,
			"rainfall":    p.RainfallMM,
			"moisture":    p.SoilMoisture,
		} {
			assert.Less(t, r.Min, r.Max, "%s %s", c, name)
		}
		assert.GreaterOrEqual(t, p.SoilPH.Min, 0.0)
		assert.LessOrEqual(t, p.SoilPH.Max, 14.0)
		assert.GreaterOrEqual(t, p.SoilMoisture.Min, 0.0)
		assert.LessOrEqual(t, p.SoilMoisture.Max, 1.0)
	}
}

func TestLookupUnknownCrop(t *testing.T) {
	for _, name := range []string{"Barley", "", "rice", " Rice ", "Corn\n"} {
		p, err := Lookup(name)
		require.Error(t, err)

		var uce *UnknownCropError
		require.True(t, errors.As(err, &uce))
		assert.Equal(t, name, uce.Name)
		assert.Equal(t, Profile{}, p)
	}
}

func TestSupportedIsFixed(t *testing.T) {
	assert.Equal(t, []Crop{Rice, Wheat, Corn, Soybean}, Supported())

	s := Supported()
	s[0] = "Barley"
	assert.Equal(t, Rice, Supported()[0], "callers must not mutate the table order")
}

func TestRangeBoundaries(t *testing.T) {
	r := Range{Min: 20, Max: 35}
	assert.True(t, r.Below(19.99))
	assert.False(t, r.Below(20))
	assert.True(t, r.Contains(20))
	assert.True(t, r.Contains(35))
	assert.False(t, r.Above(35))
	assert.True(t, r.Above(35.01))
}

func TestDefaults(t *testing.T) {
	d := Defaults(MustLookup(Corn))
	assert.Equal(t, FormDefaults{
		Crop:                Corn,
		TemperatureC:        25,
		RainfallMM:          500,
		SoilPH:              5.8,
		SoilMoisture:        0.5,
		FertilizerKgHa:      100,
		PesticideKgHa:       5,
		SustainabilityScore: 7,
	}, d)
}

func TestProfilesOrder(t *testing.T) {
	ps := Profiles()
	require.Len(t, ps, 4)
	assert.Equal(t, Soybean, ps[3].Crop)
	assert.Equal(t, "1200-1600mm", ps[0].WaterRequirement)
}
