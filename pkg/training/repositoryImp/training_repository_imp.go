package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"agroadvisor/entities"
	"agroadvisor/pkg/training/repository"
)

type runRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TrainingRunRepository { return &runRepo{db} }

func (r *runRepo) Create(ctx context.Context, run *entities.TrainingRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *runRepo) List(ctx context.Context, kind string, limit int) ([]entities.TrainingRun, error) {
	q := r.db.WithContext(ctx).Order("trained_at DESC").Order("created_at DESC")
	if kind != "" {
		q = q.Where("model_kind = ?", kind)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []entities.TrainingRun
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
