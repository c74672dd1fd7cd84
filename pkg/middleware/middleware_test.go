package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroadvisor/pkg/crop"
	"agroadvisor/pkg/dataset"
	"agroadvisor/pkg/metrics"
	"agroadvisor/pkg/model"
	"agroadvisor/pkg/validation"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{"unknown crop", fmt.Errorf("advise: %w", &crop.UnknownCropError{Name: "Banana"}), http.StatusBadRequest, KindUnknownCrop},
		{"schema", &model.SchemaMismatchError{Kind: model.Farm, Missing: []string{"Soil_pH"}}, http.StatusUnprocessableEntity, KindSchemaMismatch},
		{"dataset", &dataset.Error{Path: "x.csv", Reason: "stat"}, http.StatusUnprocessableEntity, KindDataset},
		{"validation", validation.Collect(validation.Between("soil_ph", 15, 0, 14)), http.StatusBadRequest, KindValidation},
		{"http", echo.ErrNotFound, http.StatusNotFound, KindHTTP},
		{"other", errors.New("disk on fire"), http.StatusInternalServerError, KindInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, p := Classify(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.kind, p.Kind)
		})
	}
}

func TestClassifyHidesInternalErrors(t *testing.T) {
	_, p := Classify(errors.New("secret path /etc/x"))
	assert.Equal(t, GenericMessage, p.Error)
	assert.Equal(t, "*errors.errorString", p.Type)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler
	e.Use(RequestLogger())
	return e
}

func TestErrorHandlerWritesProblem(t *testing.T) {
	e := newEcho()
	e.GET("/fail", func(echo.Context) error {
		return validation.Collect(validation.Between("temperature_c", 60, 0, 50))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var p Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, KindValidation, p.Kind)
	require.Len(t, p.Fields, 1)
	assert.Equal(t, "temperature_c must be at most 50", p.Fields[0].Message)
}

func TestRequestLoggerSetsID(t *testing.T) {
	e := newEcho()
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, RequestID(c)) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	id := rec.Header().Get(HeaderRequestID)
	assert.Len(t, id, 36)
	assert.Equal(t, id, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(HeaderRequestID, "upstream-1")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "upstream-1", rec.Header().Get(HeaderRequestID))
}

func TestRequestLoggerRecordsLatency(t *testing.T) {
	e := newEcho()
	e.GET("/boom", func(echo.Context) error { return errors.New("boom") })

	before := testutil.CollectAndCount(metrics.HTTPRequestDuration)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), GenericMessage)
	assert.Equal(t, before+1, testutil.CollectAndCount(metrics.HTTPRequestDuration))
}
