package controllerImp

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroadvisor/pkg/crop"
)

func get(name string) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/crops/"+name, nil), rec)
	c.SetParamNames("crop")
	c.SetParamValues(name)
	return c, rec
}

func TestList(t *testing.T) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/crops", nil), rec)
	require.NoError(t, New().List(c))

	var body struct {
		Crops []crop.Profile `json:"crops"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Crops, 4)
	assert.Equal(t, crop.Rice, body.Crops[0].Crop)
	assert.Equal(t, crop.Soybean, body.Crops[3].Crop)
}

func TestGet(t *testing.T) {
	c, rec := get("Wheat")
	require.NoError(t, New().Get(c))

	var body cropView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, crop.Range{Min: 6, Max: 7}, body.Profile.SoilPH)
	assert.Equal(t, 600.0, body.Defaults.RainfallMM)
	assert.Equal(t, 25.0, body.Defaults.TemperatureC)
	assert.Contains(t, body.Summary, "### Optimal Conditions for Wheat")
}

func TestGetUnknown(t *testing.T) {
	c, _ := get("Banana")
	var ue *crop.UnknownCropError
	assert.True(t, errors.As(New().Get(c), &ue))
}
