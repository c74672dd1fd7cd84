package repository

import (
	"context"

	"agroadvisor/entities"
)

type TrainingRunRepository interface {
	Create(ctx context.Context, r *entities.TrainingRun) error
	// List returns the newest runs first; an empty kind matches every model.
	List(ctx context.Context, kind string, limit int) ([]entities.TrainingRun, error)
}
