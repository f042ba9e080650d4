package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"rotaplan/entities"
	"rotaplan/pkg/apperr"
	"rotaplan/pkg/crop/controller"
	"rotaplan/pkg/crop/repository"
	"rotaplan/pkg/crop/service"
	"rotaplan/pkg/middleware"
	"rotaplan/pkg/respond"
)

type CropCtrl struct{ svc service.CropService }

func New(svc service.CropService) controller.CropController { return &CropCtrl{svc} }

type createReq struct {
	Name                       string   `json:"name"`
	NitrogenSupply             float64  `json:"nitrogen_supply"`
	NitrogenDemand             float64  `json:"nitrogen_demand"`
	Pests                      []string `json:"pests"`
	Diseases                   []string `json:"diseases"`
	MinimumRepeatIntervalYears int      `json:"minimum_repeat_interval_years"`
	PlantingDate               string   `json:"planting_date"`
	HarvestingDate             string   `json:"harvesting_date"`
}

func parseDate(field, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be YYYY-MM-DD", apperr.ErrInvalidRequest, field)
	}
	return &t, nil
}

func (h *CropCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return respond.BadJSON(c, err)
	}
	crop := &entities.Crop{
		Name:                       req.Name,
		NitrogenSupply:             req.NitrogenSupply,
		NitrogenDemand:             req.NitrogenDemand,
		Pests:                      req.Pests,
		Diseases:                   req.Diseases,
		MinimumRepeatIntervalYears: req.MinimumRepeatIntervalYears,
	}
	var err error
	if crop.PlantingDate, err = parseDate("planting_date", req.PlantingDate); err != nil {
		return respond.Error(c, err)
	}
	if crop.HarvestingDate, err = parseDate("harvesting_date", req.HarvestingDate); err != nil {
		return respond.Error(c, err)
	}
	out, err := h.svc.CreateCrop(c.Request().Context(), middleware.UID(c), crop)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CropCtrl) Get(c echo.Context) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	crop, err := h.svc.GetCrop(c.Request().Context(), id)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, crop)
}

// List supports ?q= (name substring), ?ids=1,2 and ?mine=1.
func (h *CropCtrl) List(c echo.Context) error {
	f := repository.Filter{NameContains: c.QueryParam("q")}
	if raw := c.QueryParam("ids"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
			if err != nil || n == 0 {
				return respond.Error(c, fmt.Errorf("%w: bad crop id %q", apperr.ErrInvalidRequest, part))
			}
			f.IDs = append(f.IDs, uint(n))
		}
	}
	if c.QueryParam("mine") == "1" {
		f.UserID = middleware.UID(c)
	}
	crops, err := h.svc.ListCrops(c.Request().Context(), f)
	if err != nil {
		return respond.Error(c, err)
	}
	if crops == nil {
		crops = []entities.Crop{}
	}
	return c.JSON(http.StatusOK, crops)
}
