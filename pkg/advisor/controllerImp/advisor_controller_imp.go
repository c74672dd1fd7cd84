package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agroadvisor/pkg/advisor"
	"agroadvisor/pkg/advisor/service"
)

type AdvisorCtrl struct{ s service.AdvisorService }

func New(s service.AdvisorService) *AdvisorCtrl { return &AdvisorCtrl{s} }

// Predict serves POST /api/v1/farm/predict.
func (h *AdvisorCtrl) Predict(c echo.Context) error {
	var in advisor.PredictionInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	adv, err := h.s.Advise(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adv)
}

// Model serves GET /api/v1/farm/model.
func (h *AdvisorCtrl) Model(c echo.Context) error {
	t, err := h.s.Model(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}
