package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agroadvisor/pkg/market/service"
)

type MarketCtrl struct{ s service.MarketService }

func New(s service.MarketService) *MarketCtrl { return &MarketCtrl{s} }

type predictReq struct {
	Values map[string]float64 `json:"values"`
}

// Form serves GET /api/v1/market/form.
func (h *MarketCtrl) Form(c echo.Context) error {
	f, err := h.s.Form(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, f)
}

// Predict serves POST /api/v1/market/predict with {"values": {...}}.
func (h *MarketCtrl) Predict(c echo.Context) error {
	var req predictReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.s.Analyze(c.Request().Context(), req.Values)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// Model serves GET /api/v1/market/model.
func (h *MarketCtrl) Model(c echo.Context) error {
	t, err := h.s.Model(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}
