package service

import (
	"context"

	"agroadvisor/pkg/market"
	"agroadvisor/pkg/model"
)

// Form is the market view's input layout.
type Form struct {
	Target     string         `json:"target"`
	TargetMean float64        `json:"target_mean"`
	Groups     []market.Group `json:"groups"`
}

// Outlook is one scored market submission.
type Outlook struct {
	Analysis market.Analysis `json:"analysis"`
	Report   string          `json:"report_markdown"`
	ModelID  string          `json:"model_id"`
}

type MarketService interface {
	Form(ctx context.Context) (*Form, error)
	Analyze(ctx context.Context, values map[string]float64) (*Outlook, error)
	Model(ctx context.Context) (*model.Trained, error)
}
