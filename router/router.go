package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	advisorCtrl "agroadvisor/pkg/advisor/controller"
	cropCtrl "agroadvisor/pkg/crop/controller"
	dashboardCtrl "agroadvisor/pkg/dashboard/controller"
	marketCtrl "agroadvisor/pkg/market/controller"
	"agroadvisor/pkg/middleware"
	trainingCtrl "agroadvisor/pkg/training/controller"
)

func New(
	e *echo.Echo,
	crops cropCtrl.CropController,
	farm advisorCtrl.AdvisorController,
	mkt marketCtrl.MarketController,
	runs trainingCtrl.TrainingController,
	dash dashboardCtrl.DashboardController,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLogger())

	e.GET("/health", healthCtrl.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// dashboard
	e.GET("/", dash.Index)
	e.POST("/farmer", dash.Farmer)
	e.POST("/market", dash.Market)

	api := e.Group("/api/v1")
	api.GET("/crops", crops.List)
	api.GET("/crops/:crop", crops.Get)

	api.POST("/farm/predict", farm.Predict)
	api.GET("/farm/model", farm.Model)

	api.GET("/market/form", mkt.Form)
	api.POST("/market/predict", mkt.Predict)
	api.GET("/market/model", mkt.Model)

	api.GET("/training-runs", runs.List)
	return e
}
