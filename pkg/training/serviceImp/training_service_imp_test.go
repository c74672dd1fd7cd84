package serviceImp_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"agroadvisor/database"
	"agroadvisor/entities"
	"agroadvisor/pkg/model"
	"agroadvisor/pkg/regression"
	"agroadvisor/pkg/training/controllerImp"
	"agroadvisor/pkg/training/repositoryImp"
	"agroadvisor/pkg/training/service"
	"agroadvisor/pkg/training/serviceImp"
	"agroadvisor/pkg/validation"
)

func newService(t *testing.T) service.TrainingService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	return serviceImp.NewTrainingService(repositoryImp.New(db))
}

func trained(kind model.Kind, at time.Time) *model.Trained {
	return &model.Trained{
		ID:             uuid.New(),
		Kind:           kind,
		Features:       []string{"a", "b", "c"},
		TargetMean:     4.2,
		Metrics:        regression.Metrics{MSE: 1.5, R2: 0.8, N: 8},
		Params:         regression.XGBoostDefaults(),
		Rows:           40,
		TrainRows:      32,
		TestRows:       8,
		TrainedAt:      at,
		DatasetVersion: "/data/farm:data.csv:1024:1700000000",
	}
}

// Ensure the service can stand in for the registry's recorder.
var _ model.RunRecorder = service.TrainingService(nil)

func TestRecordAndList(t *testing.T) {
	s := newService(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	first := trained(model.Farm, base)
	require.NoError(t, s.RecordRun(ctx, first, 1500*time.Millisecond))
	require.NoError(t, s.RecordRun(ctx, trained(model.Market, base.Add(time.Hour)), time.Second))
	require.NoError(t, s.RecordRun(ctx, trained(model.Farm, base.Add(2*time.Hour)), time.Second))

	all, err := s.Runs(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].TrainedAt.After(all[1].TrainedAt))

	farm, err := s.Runs(ctx, "farm", 0)
	require.NoError(t, err)
	require.Len(t, farm, 2)
	got := farm[1]
	assert.Equal(t, first.ID.String(), got.RunID)
	assert.Equal(t, "/data/farm:data.csv", got.DatasetPath)
	assert.Equal(t, 3, got.Features)
	assert.Equal(t, 100, got.Trees)
	assert.Equal(t, int64(1500), got.DurationMS)
	assert.InDelta(t, 0.8, got.R2, 1e-12)

	one, err := s.Runs(ctx, "market", 1)
	require.NoError(t, err)
	assert.Len(t, one, 1)
}

func TestDuplicateRunRejected(t *testing.T) {
	s := newService(t)
	tr := trained(model.Farm, time.Now())
	require.NoError(t, s.RecordRun(context.Background(), tr, 0))
	assert.Error(t, s.RecordRun(context.Background(), tr, 0))
}

func TestUnknownKind(t *testing.T) {
	_, err := newService(t).Runs(context.Background(), "weather", 0)
	var ve *validation.Error
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "kind", ve.Fields[0].Field)
}

func TestListHandler(t *testing.T) {
	s := newService(t)
	require.NoError(t, s.RecordRun(context.Background(), trained(model.Market, time.Now()), 0))
	h := controllerImp.New(s)
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/training-runs?kind=market", nil), rec)
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Runs  []entities.TrainingRun `json:"runs"`
		Count int                    `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, "market", body.Runs[0].ModelKind)

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/training-runs?limit=x", nil), rec)
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
