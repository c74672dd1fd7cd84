package controllerImp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"

	"agroadvisor/pkg/advisor"
	advSvc "agroadvisor/pkg/advisor/service"
	"agroadvisor/pkg/crop"
	"agroadvisor/pkg/dashboard"
	"agroadvisor/pkg/logging"
	mktSvc "agroadvisor/pkg/market/service"
	"agroadvisor/pkg/middleware"
	"agroadvisor/pkg/render"
	"agroadvisor/pkg/validation"
)

type DashboardCtrl struct {
	advisor advSvc.AdvisorService
	market  mktSvc.MarketService
}

func New(a advSvc.AdvisorService, m mktSvc.MarketService) *DashboardCtrl {
	return &DashboardCtrl{advisor: a, market: m}
}

// Index serves GET /?page=farmer|market&crop=Rice.
func (h *DashboardCtrl) Index(c echo.Context) error {
	switch page := c.QueryParam("page"); page {
	case "", dashboard.PageFarmer:
		name := c.QueryParam("crop")
		if name == "" {
			name = string(crop.Rice)
		}
		p, err := crop.Lookup(name)
		if err != nil {
			return h.fail(c, dashboard.PageFarmer, err)
		}
		return h.renderFarmer(c, advisor.InputFromDefaults(crop.Defaults(p)), nil)
	case dashboard.PageMarket:
		return h.renderMarket(c, nil)
	default:
		return h.fail(c, dashboard.PageFarmer, &validation.Error{Fields: []validation.FieldError{{
			Field: "page", Tag: "oneof", Param: "farmer market",
			Message: "page must be one of: farmer market",
		}}})
	}
}

// Farmer serves POST /farmer.
func (h *DashboardCtrl) Farmer(c echo.Context) error {
	var in advisor.PredictionInput
	if err := c.Bind(&in); err != nil {
		return h.fail(c, dashboard.PageFarmer, err)
	}
	adv, err := h.advisor.Advise(c.Request().Context(), in)
	if err != nil {
		return h.fail(c, dashboard.PageFarmer, err)
	}
	return h.renderFarmer(c, adv.Input, adv)
}

// Market serves POST /market. Every form field is a feature value.
func (h *DashboardCtrl) Market(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return h.fail(c, dashboard.PageMarket, err)
	}
	values := map[string]float64{}
	var bad []*validation.FieldError
	for _, k := range sortedKeys(params) {
		v, err := strconv.ParseFloat(params.Get(k), 64)
		if err != nil {
			bad = append(bad, &validation.FieldError{Field: k, Tag: "numeric", Message: k + " must be a number"})
			continue
		}
		values[k] = v
	}
	if err := validation.Collect(bad...); err != nil {
		return h.fail(c, dashboard.PageMarket, err)
	}
	out, err := h.market.Analyze(c.Request().Context(), values)
	if err != nil {
		return h.fail(c, dashboard.PageMarket, err)
	}
	return h.renderMarket(c, func(v *dashboard.MarketView) error {
		v.Groups = dashboard.WithValues(v.Groups, out.Analysis.Values)
		report, err := render.HTML(out.Report)
		v.Report = report
		return err
	})
}

func (h *DashboardCtrl) renderFarmer(c echo.Context, in advisor.PredictionInput, adv *advSvc.Advice) error {
	p, err := crop.Lookup(in.Crop)
	if err != nil {
		return h.fail(c, dashboard.PageFarmer, err)
	}
	page := h.page(c.Request().Context(), dashboard.PageFarmer)
	t, err := h.advisor.Model(c.Request().Context())
	if err != nil {
		return h.failPage(c, page, err)
	}
	conditions, err := render.HTML(render.ProfileSummary(p))
	if err != nil {
		return h.failPage(c, page, err)
	}
	v := &dashboard.FarmerView{
		Crops:      crop.Supported(),
		Selected:   p.Crop,
		Conditions: conditions,
		Header:     t.Header,
		Sample:     t.Sample,
		Groups:     dashboard.FarmerGroups(p, in),
	}
	if adv != nil {
		if v.Report, err = render.HTML(adv.Report); err != nil {
			return h.failPage(c, page, err)
		}
	}
	page.Farmer = v
	return h.write(c, http.StatusOK, page)
}

func (h *DashboardCtrl) renderMarket(c echo.Context, fill func(*dashboard.MarketView) error) error {
	ctx := c.Request().Context()
	page := h.page(ctx, dashboard.PageMarket)
	t, err := h.market.Model(ctx)
	if err != nil {
		return h.failPage(c, page, err)
	}
	form, err := h.market.Form(ctx)
	if err != nil {
		return h.failPage(c, page, err)
	}
	v := &dashboard.MarketView{Header: t.Header, Sample: t.Sample, Target: form.Target, Groups: form.Groups}
	if fill != nil {
		if err := fill(v); err != nil {
			return h.failPage(c, page, err)
		}
	}
	page.Trader = v
	return h.write(c, http.StatusOK, page)
}

// page fills the model panels shown on every view.
func (h *DashboardCtrl) page(ctx context.Context, active string) dashboard.Page {
	farm, farmErr := h.advisor.Model(ctx)
	mkt, mktErr := h.market.Model(ctx)
	return dashboard.Page{
		Active: active,
		Farm:   dashboard.Panel("Farmer Advisor", "Gradient Boosted Trees, XGBoost settings", farm, farmErr),
		Market: dashboard.Panel("Market Researcher", "Gradient Boosting", mkt, mktErr),
	}
}

func (h *DashboardCtrl) fail(c echo.Context, active string, err error) error {
	return h.failPage(c, h.page(c.Request().Context(), active), err)
}

func (h *DashboardCtrl) failPage(c echo.Context, page dashboard.Page, err error) error {
	status, problem := middleware.Classify(err)
	if status >= 500 {
		logging.With("dashboard").Error().Err(err).Str("request_id", middleware.RequestID(c)).Msg("view failed")
	}
	page.Error = &dashboard.ErrorPanel{Message: problem.Error, Type: errorType(err)}
	page.Farmer, page.Trader = nil, nil
	return h.write(c, status, page)
}

func (h *DashboardCtrl) write(c echo.Context, status int, page dashboard.Page) error {
	var buf bytes.Buffer
	if err := dashboard.Render(&buf, page); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	return c.HTMLBlob(status, buf.Bytes())
}

// errorType names the error behind any fmt.Errorf wrapping, e.g. *crop.UnknownCropError.
func errorType(err error) string {
	for {
		t := fmt.Sprintf("%T", err)
		next := errors.Unwrap(err)
		if next == nil || t != "*fmt.wrapError" {
			return t
		}
		err = next
	}
}

func sortedKeys(m map[string][]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
