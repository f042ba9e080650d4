package controllerImp

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"rotaplan/entities"
	"rotaplan/pkg/apperr"
	"rotaplan/pkg/middleware"
	"rotaplan/pkg/respond"
	"rotaplan/pkg/selection/controller"
	"rotaplan/pkg/selection/service"
)

type SelectionCtrl struct{ svc service.SelectionService }

func New(svc service.SelectionService) controller.SelectionController { return &SelectionCtrl{svc} }

type setQuotaReq struct {
	Remaining *int `json:"remaining"`
}

func (h *SelectionCtrl) SetQuota(c echo.Context) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	var req setQuotaReq
	if err := c.Bind(&req); err != nil {
		return respond.BadJSON(c, err)
	}
	if req.Remaining == nil {
		return respond.Error(c, fmt.Errorf("%w: remaining is required", apperr.ErrInvalidRequest))
	}
	sel, err := h.svc.SetQuota(c.Request().Context(), middleware.UID(c), id, *req.Remaining)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, sel)
}

func (h *SelectionCtrl) Consume(c echo.Context) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	sel, err := h.svc.Consume(c.Request().Context(), middleware.UID(c), id)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, sel)
}

func (h *SelectionCtrl) List(c echo.Context) error {
	sels, err := h.svc.List(c.Request().Context(), middleware.UID(c))
	if err != nil {
		return respond.Error(c, err)
	}
	if sels == nil {
		sels = []entities.CropSelection{}
	}
	return c.JSON(http.StatusOK, sels)
}
