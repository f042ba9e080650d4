package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"rotaplan/pkg/middleware"
	"rotaplan/pkg/respond"
	"rotaplan/pkg/rotation/controller"
	"rotaplan/pkg/rotation/service"
	"rotaplan/pkg/rotation/types"
)

type RotationCtrl struct{ svc service.RotationService }

func New(svc service.RotationService) controller.RotationController { return &RotationCtrl{svc} }

func (h *RotationCtrl) Generate(c echo.Context) error {
	var req types.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return respond.BadJSON(c, err)
	}
	out, err := h.svc.Generate(c.Request().Context(), middleware.UID(c), req)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *RotationCtrl) Get(c echo.Context) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	out, err := h.svc.Get(c.Request().Context(), middleware.UID(c), id)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RotationCtrl) List(c echo.Context) error {
	out, err := h.svc.List(c.Request().Context(), middleware.UID(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RotationCtrl) UpdateDivisionSize(c echo.Context) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	var req types.UpdateDivisionSizeRequest
	if err := c.Bind(&req); err != nil {
		return respond.BadJSON(c, err)
	}
	if err := req.Validate(); err != nil {
		return respond.Error(c, err)
	}
	out, err := h.svc.UpdateDivisionSize(c.Request().Context(), middleware.UID(c), id, req)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RotationCtrl) UpdateNitrogenBalance(c echo.Context) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	var req types.UpdateNitrogenBalanceRequest
	if err := c.Bind(&req); err != nil {
		return respond.BadJSON(c, err)
	}
	if err := req.Validate(); err != nil {
		return respond.Error(c, err)
	}
	out, err := h.svc.UpdateNitrogenBalance(c.Request().Context(), middleware.UID(c), id, req)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RotationCtrl) Delete(c echo.Context) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	if err := h.svc.Delete(c.Request().Context(), middleware.UID(c), id); err != nil {
		return respond.Error(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
