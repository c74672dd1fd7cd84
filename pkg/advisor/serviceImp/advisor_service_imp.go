package serviceImp

import (
	"context"
	"fmt"

	"agroadvisor/pkg/advisor"
	"agroadvisor/pkg/advisor/service"
	"agroadvisor/pkg/crop"
	"agroadvisor/pkg/logging"
	"agroadvisor/pkg/metrics"
	"agroadvisor/pkg/model"
	"agroadvisor/pkg/render"
	"agroadvisor/pkg/validation"
)

// FarmModels supplies the current yield model; *model.Registry implements it.
type FarmModels interface {
	Farm(ctx context.Context) (*model.Trained, error)
}

type advisorSvc struct{ models FarmModels }

func NewAdvisorService(m FarmModels) service.AdvisorService { return &advisorSvc{m} }

func (s *advisorSvc) Model(ctx context.Context) (*model.Trained, error) { return s.models.Farm(ctx) }

func (s *advisorSvc) Advise(ctx context.Context, in advisor.PredictionInput) (*service.Advice, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	p, err := crop.Lookup(in.Crop)
	if err != nil {
		return nil, err
	}
	in.Crop = string(p.Crop)

	t, err := s.models.Farm(ctx)
	if err != nil {
		return nil, err
	}
	row, err := t.FarmRow(in)
	if err != nil {
		return nil, err
	}
	pred, err := t.Predict(row)
	if err != nil {
		return nil, fmt.Errorf("predict yield: %w", err)
	}

	a := advisor.Assess(pred, t.TargetMean)
	b, err := advisor.Select(p, in)
	if err != nil {
		return nil, err
	}
	report, err := render.FarmReport(a, b)
	if err != nil {
		return nil, err
	}

	sections := b.Sections()
	metrics.PredictionsTotal.WithLabelValues(string(model.Farm)).Inc()
	for _, sec := range sections {
		metrics.SectionsFired.WithLabelValues(string(p.Crop), string(sec)).Inc()
	}
	logging.With("advisor").Debug().
		Str("crop", string(p.Crop)).
		Float64("prediction", pred).
		Int("sections", len(sections)).
		Msg("advice generated")

	return &service.Advice{
		Input:      in,
		Profile:    p,
		Assessment: a,
		Bundle:     b,
		Sections:   sections,
		Report:     report,
		ModelID:    t.ID.String(),
	}, nil
}
