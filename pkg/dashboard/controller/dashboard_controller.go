package controller

import "github.com/labstack/echo/v4"

type DashboardController interface {
	Index(c echo.Context) error
	Farmer(c echo.Context) error
	Market(c echo.Context) error
}
