package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agroadvisor/pkg/training/service"
)

type TrainingCtrl struct{ s service.TrainingService }

func New(s service.TrainingService) *TrainingCtrl { return &TrainingCtrl{s} }

// List serves GET /api/v1/training-runs?kind=farm&limit=20.
func (h *TrainingCtrl) List(c echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "limit must be a non-negative integer"})
		}
		limit = n
	}
	runs, err := h.s.Runs(c.Request().Context(), c.QueryParam("kind"), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"runs": runs, "count": len(runs)})
}
