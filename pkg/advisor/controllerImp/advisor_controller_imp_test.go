package controllerImp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroadvisor/pkg/advisor"
	"agroadvisor/pkg/advisor/service"
	"agroadvisor/pkg/crop"
	"agroadvisor/pkg/model"
)

type stubService struct {
	got advisor.PredictionInput
	err error
}

func (s *stubService) Advise(_ context.Context, in advisor.PredictionInput) (*service.Advice, error) {
	s.got = in
	if s.err != nil {
		return nil, s.err
	}
	return &service.Advice{Input: in, Report: "report"}, nil
}

func (s *stubService) Model(context.Context) (*model.Trained, error) {
	return &model.Trained{Kind: model.Farm, Rows: 10}, s.err
}

func post(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/farm/predict", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestPredict(t *testing.T) {
	s := &stubService{}
	c, rec := post(`{"crop":"Corn","temperature_c":30,"rainfall_mm":400,"soil_ph":6.1}`)
	require.NoError(t, New(s).Predict(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Corn", s.got.Crop)
	assert.Equal(t, 400.0, s.got.RainfallMM)

	var out service.Advice
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "report", out.Report)
}

func TestPredictBadJSON(t *testing.T) {
	c, rec := post(`{"crop":`)
	require.NoError(t, New(&stubService{}).Predict(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPredictPassesErrorsThrough(t *testing.T) {
	s := &stubService{err: &crop.UnknownCropError{Name: "Banana"}}
	c, _ := post(`{"crop":"Banana"}`)
	err := New(s).Predict(c)
	var ue *crop.UnknownCropError
	assert.True(t, errors.As(err, &ue))
}

func TestModel(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/farm/model", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, New(&stubService{}).Model(echo.New().NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kind":"farm"`)
}
