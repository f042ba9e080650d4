package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"rotaplan/entities"
	"rotaplan/pkg/field/service"
	"rotaplan/pkg/middleware"
	"rotaplan/pkg/respond"
)

type FieldCtrl struct{ svc service.FieldService }

func New(svc service.FieldService) *FieldCtrl { return &FieldCtrl{svc} }

type createReq struct {
	Name        string  `json:"name"`
	Size        float64 `json:"size"`
	SoilTexture string  `json:"soil_texture"`
	Location    string  `json:"location"`
}

func (h *FieldCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return respond.BadJSON(c, err)
	}
	f := &entities.Field{
		UserID: middleware.UID(c), Name: req.Name, Size: req.Size,
		SoilTexture: req.SoilTexture, Location: req.Location,
	}
	out, err := h.svc.CreateField(c.Request().Context(), f)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *FieldCtrl) Get(c echo.Context) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	f, err := h.svc.GetFieldByID(c.Request().Context(), id, middleware.UID(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) List(c echo.Context) error {
	fs, err := h.svc.ListFields(c.Request().Context(), middleware.UID(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, fs)
}
