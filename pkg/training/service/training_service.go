package service

import (
	"context"
	"time"

	"agroadvisor/entities"
	"agroadvisor/pkg/model"
)

// TrainingService keeps the history of model fits. It satisfies model.RunRecorder.
type TrainingService interface {
	RecordRun(ctx context.Context, t *model.Trained, elapsed time.Duration) error
	Runs(ctx context.Context, kind string, limit int) ([]entities.TrainingRun, error)
}
