package controller

import "github.com/labstack/echo/v4"

type TrainingController interface {
	List(c echo.Context) error
}
