package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agroadvisor/pkg/crop"
	"agroadvisor/pkg/render"
)

type CropCtrl struct{}

func New() *CropCtrl { return &CropCtrl{} }

type cropView struct {
	Profile  crop.Profile      `json:"profile"`
	Defaults crop.FormDefaults `json:"form_defaults"`
	Summary  string            `json:"summary_markdown"`
}

// List serves GET /api/v1/crops.
func (h *CropCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"crops": crop.Profiles()})
}

// Get serves GET /api/v1/crops/:crop.
func (h *CropCtrl) Get(c echo.Context) error {
	p, err := crop.Lookup(c.Param("crop"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cropView{Profile: p, Defaults: crop.Defaults(p), Summary: render.ProfileSummary(p)})
}
