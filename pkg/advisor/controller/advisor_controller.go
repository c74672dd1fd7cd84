package controller

import "github.com/labstack/echo/v4"

type AdvisorController interface {
	Predict(c echo.Context) error
	Model(c echo.Context) error
}
