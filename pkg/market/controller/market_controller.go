package controller

import "github.com/labstack/echo/v4"

type MarketController interface {
	Form(c echo.Context) error
	Predict(c echo.Context) error
	Model(c echo.Context) error
}
