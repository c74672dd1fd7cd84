package service

import (
	"context"

	"agroadvisor/pkg/advisor"
	"agroadvisor/pkg/crop"
	"agroadvisor/pkg/model"
)

// Advice is everything the farmer view shows for one submission.
type Advice struct {
	Input      advisor.PredictionInput `json:"input"`
	Profile    crop.Profile            `json:"profile"`
	Assessment advisor.Assessment      `json:"assessment"`
	Bundle     advisor.Bundle          `json:"recommendations"`
	Sections   []advisor.Section       `json:"sections"`
	Report     string                  `json:"report_markdown"`
	ModelID    string                  `json:"model_id"`
}

type AdvisorService interface {
	Advise(ctx context.Context, in advisor.PredictionInput) (*Advice, error)
	Model(ctx context.Context) (*model.Trained, error)
}
