package controller

import "github.com/labstack/echo/v4"

type SelectionController interface {
	SetQuota(c echo.Context) error
	Consume(c echo.Context) error
	List(c echo.Context) error
}
