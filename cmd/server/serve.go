package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rotaplan/config"
	"rotaplan/database"
	"rotaplan/router"

	authCtrlImp "rotaplan/pkg/auth/controllerImp"
	healthCtrlImp "rotaplan/pkg/health/controllerImp"

	fieldCtrlImp "rotaplan/pkg/field/controllerImp"
	fieldRepoImp "rotaplan/pkg/field/repositoryImp"
	fieldSvcImp "rotaplan/pkg/field/serviceImp"

	cropCtrlImp "rotaplan/pkg/crop/controllerImp"
	croprepo "rotaplan/pkg/crop/repository"
	cropRepoImp "rotaplan/pkg/crop/repositoryImp"
	cropSvcImp "rotaplan/pkg/crop/serviceImp"

	selCtrlImp "rotaplan/pkg/selection/controllerImp"
	selRepoImp "rotaplan/pkg/selection/repositoryImp"
	selSvcImp "rotaplan/pkg/selection/serviceImp"

	rotCtrlImp "rotaplan/pkg/rotation/controllerImp"
	rotRepoImp "rotaplan/pkg/rotation/repositoryImp"
	rotSvcImp "rotaplan/pkg/rotation/serviceImp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// newApp wires repositories, services and controllers onto a fresh echo.
func newApp(cfg config.AppConfig, log *zap.Logger, db *gorm.DB) *echo.Echo {
	fRepo := fieldRepoImp.New(db)
	cRepo := cropRepoImp.New(db)
	sRepo := selRepoImp.New(db)
	rRepo := rotRepoImp.New(db)

	rSvc := rotSvcImp.NewRotationService(cRepo, sRepo, rRepo, fRepo, log, rotSvcImp.Options{
		Timeout:          cfg.GenerationTimeout,
		Workers:          cfg.PlannerWorkers,
		ResidualNitrogen: cfg.ResidualNitrogen,
	})

	return router.New(echo.New(), log, cfg.EnableLIFF, router.Controllers{
		Auth:      authCtrlImp.NewAuthController(cfg.EnableLIFF),
		Health:    healthCtrlImp.NewHealthCtrl(db),
		Field:     fieldCtrlImp.New(fieldSvcImp.NewFieldService(fRepo)),
		Crop:      cropCtrlImp.New(cropSvcImp.NewCropService(cRepo, log)),
		Selection: selCtrlImp.New(selSvcImp.NewSelectionService(sRepo, cRepo, log)),
		Rotation:  rotCtrlImp.New(rSvc),
	})
}

func runServe(ctx context.Context) error {
	if loc, err := time.LoadLocation(cfg.Timezone); err == nil {
		time.Local = loc
	} else {
		logger.Warn("unknown timezone, keeping local", zap.String("tz", cfg.Timezone), zap.Error(err))
	}

	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		return err
	}
	if err := seedCrops(ctx, db); err != nil {
		logger.Warn("crop seed skipped", zap.String("path", cfg.CropSeedPath), zap.Error(err))
	}

	e := newApp(cfg, logger, db)
	e.HidePort = true

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", ":"+cfg.Port), zap.String("db", cfg.DBPath))
		errc <- e.Start(":" + cfg.Port)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// seedCrops imports CROP_SEED_PATH into an empty catalog.
func seedCrops(ctx context.Context, db *gorm.DB) error {
	if cfg.CropSeedPath == "" {
		return nil
	}
	repo := cropRepoImp.New(db)
	existing, err := repo.List(ctx, croprepo.Filter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	n, err := cropSvcImp.NewCropService(repo, logger).ImportCrops(ctx, "", cfg.CropSeedPath)
	if err != nil {
		return err
	}
	logger.Info("crop catalog seeded", zap.Int("count", n))
	return nil
}
