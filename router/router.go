package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	authctrl "rotaplan/pkg/auth/controller"
	cropctrl "rotaplan/pkg/crop/controller"
	fieldctrl "rotaplan/pkg/field/controller"
	"rotaplan/pkg/logging"
	"rotaplan/pkg/middleware"
	rotctrl "rotaplan/pkg/rotation/controller"
	selctrl "rotaplan/pkg/selection/controller"
)

type Controllers struct {
	Auth      authctrl.AuthController
	Health    interface{ Health(echo.Context) error }
	Field     fieldctrl.FieldController
	Crop      cropctrl.CropController
	Selection selctrl.SelectionController
	Rotation  rotctrl.RotationController
}

// New registers the middleware stack and every route on e.
func New(e *echo.Echo, log *zap.Logger, liff bool, h Controllers) *echo.Echo {
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(logging.RequestLogger(log))

	e.GET("/health", h.Health.Health)

	api := e.Group("")
	if liff {
		api.Use(middleware.LIFF(true))
	} else {
		api.Use(middleware.DevLogin())
		api.GET("/devlogin", h.Auth.DevLogin)
	}
	api.GET("/whoami", h.Auth.WhoAmI)

	api.POST("/fields", h.Field.Create)
	api.GET("/fields", h.Field.List)
	api.GET("/fields/:id", h.Field.Get)

	api.POST("/crops", h.Crop.Create)
	api.GET("/crops", h.Crop.List)
	api.GET("/crops/:id", h.Crop.Get)
	api.PUT("/crops/:id/selection", h.Selection.SetQuota)
	api.POST("/crops/:id/selection/consume", h.Selection.Consume)
	api.GET("/selections", h.Selection.List)

	g := api.Group("/rotations")
	g.POST("", h.Rotation.Generate)
	g.GET("", h.Rotation.List)
	g.GET("/:id", h.Rotation.Get)
	g.PATCH("/:id/division-size", h.Rotation.UpdateDivisionSize)
	g.PATCH("/:id/nitrogen-balance", h.Rotation.UpdateNitrogenBalance)
	g.DELETE("/:id", h.Rotation.Delete)
	return e
}
