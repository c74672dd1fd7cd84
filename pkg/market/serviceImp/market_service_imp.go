package serviceImp

import (
	"context"

	"agroadvisor/pkg/logging"
	"agroadvisor/pkg/market"
	"agroadvisor/pkg/market/service"
	"agroadvisor/pkg/metrics"
	"agroadvisor/pkg/model"
	"agroadvisor/pkg/render"
)

// MarketModels supplies the current market model; *model.Registry implements it.
type MarketModels interface {
	Market(ctx context.Context) (*model.Trained, error)
}

type marketSvc struct {
	models MarketModels
	schema market.Schema
}

func NewMarketService(m MarketModels, s market.Schema) service.MarketService {
	return &marketSvc{models: m, schema: s}
}

func (s *marketSvc) Model(ctx context.Context) (*model.Trained, error) { return s.models.Market(ctx) }

func (s *marketSvc) Form(ctx context.Context) (*service.Form, error) {
	t, err := s.models.Market(ctx)
	if err != nil {
		return nil, err
	}
	return &service.Form{Target: t.Target, TargetMean: t.TargetMean, Groups: market.Form(t, s.schema)}, nil
}

func (s *marketSvc) Analyze(ctx context.Context, values map[string]float64) (*service.Outlook, error) {
	t, err := s.models.Market(ctx)
	if err != nil {
		return nil, err
	}
	if err := market.Check(market.Form(t, s.schema), values); err != nil {
		return nil, err
	}
	a, err := market.Analyze(t, s.schema, values)
	if err != nil {
		return nil, err
	}
	report, err := render.MarketReport(a)
	if err != nil {
		return nil, err
	}

	metrics.PredictionsTotal.WithLabelValues(string(model.Market)).Inc()
	alerts := a.Alerts()
	for _, r := range alerts {
		metrics.RiskAlerts.WithLabelValues(string(r.Category)).Inc()
	}
	logging.With("market").Debug().
		Float64("prediction", a.Prediction).
		Str("performance", string(a.Performance)).
		Int("alerts", len(alerts)).
		Msg("market analyzed")

	return &service.Outlook{Analysis: a, Report: report, ModelID: t.ID.String()}, nil
}
