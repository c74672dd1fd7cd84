package entities

import "time"

// TrainingRun records one model fit: which dataset revision it saw and how well it did.
type TrainingRun struct {
	RunID          string    `gorm:"primaryKey;size:36" json:"run_id"`
	ModelKind      string    `json:"model_kind" gorm:"index"` // farm|market
	DatasetPath    string    `json:"dataset_path"`
	DatasetVersion string    `json:"dataset_version"`
	Rows           int       `json:"rows"`
	Features       int       `json:"features"`
	TrainRows      int       `json:"train_rows"`
	TestRows       int       `json:"test_rows"`
	Trees          int       `json:"trees"`
	MSE            float64   `json:"mse"`
	R2             float64   `json:"r2"`
	TargetMean     float64   `json:"target_mean"`
	DurationMS     int64     `json:"duration_ms"`
	TrainedAt      time.Time `json:"trained_at"`

	CreatedAt time.Time `json:"created_at"`
}
