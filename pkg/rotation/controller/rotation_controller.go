package controller

import "github.com/labstack/echo/v4"

type RotationController interface {
	Generate(c echo.Context) error
	Get(c echo.Context) error
	List(c echo.Context) error
	UpdateDivisionSize(c echo.Context) error
	UpdateNitrogenBalance(c echo.Context) error
	Delete(c echo.Context) error
}
