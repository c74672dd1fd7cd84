package serviceImp

import (
	"context"
	"fmt"
	"time"

	"agroadvisor/entities"
	"agroadvisor/pkg/model"
	repo "agroadvisor/pkg/training/repository"
	"agroadvisor/pkg/training/service"
	"agroadvisor/pkg/validation"
)

const maxRuns = 200

type trainingSvc struct{ r repo.TrainingRunRepository }

func NewTrainingService(r repo.TrainingRunRepository) service.TrainingService {
	return &trainingSvc{r}
}

func (s *trainingSvc) RecordRun(ctx context.Context, t *model.Trained, elapsed time.Duration) error {
	run := &entities.TrainingRun{
		RunID:          t.ID.String(),
		ModelKind:      string(t.Kind),
		DatasetPath:    datasetPath(t.DatasetVersion),
		DatasetVersion: t.DatasetVersion,
		Rows:           t.Rows,
		Features:       len(t.Features),
		TrainRows:      t.TrainRows,
		TestRows:       t.TestRows,
		Trees:          t.Params.Trees,
		MSE:            t.Metrics.MSE,
		R2:             t.Metrics.R2,
		TargetMean:     t.TargetMean,
		DurationMS:     elapsed.Milliseconds(),
		TrainedAt:      t.TrainedAt,
	}
	if err := s.r.Create(ctx, run); err != nil {
		return fmt.Errorf("record training run %s: %w", run.RunID, err)
	}
	return nil
}

func (s *trainingSvc) Runs(ctx context.Context, kind string, limit int) ([]entities.TrainingRun, error) {
	switch kind {
	case "", string(model.Farm), string(model.Market):
	default:
		return nil, &validation.Error{Fields: []validation.FieldError{{
			Field: "kind", Tag: "oneof", Param: "farm market",
			Message: "kind must be one of: farm market",
		}}}
	}
	if limit <= 0 || limit > maxRuns {
		limit = maxRuns
	}
	return s.r.List(ctx, kind, limit)
}

// datasetPath strips the ":size:mtime" suffix model.Version appends.
func datasetPath(version string) string {
	for n, i := 0, len(version)-1; i >= 0; i-- {
		if version[i] == ':' {
			n++
			if n == 2 {
				return version[:i]
			}
		}
	}
	return version
}
