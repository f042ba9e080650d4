package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port              string
	Timezone          string
	DBPath            string
	EnableLIFF        bool
	LogLevel          string
	GenerationTimeout time.Duration
	ResidualNitrogen  float64
	PlannerWorkers    int
	CropSeedPath      string
}

// Load reads .env when present, then the environment. Malformed numbers fall
// back to their defaults.
func Load() AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) AppConfig {
	get := func(k, def string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:              get("PORT", "8080"),
		Timezone:          get("TZ", "Asia/Bangkok"),
		DBPath:            get("DB_PATH", "rotaplan.db"),
		EnableLIFF:        get("ENABLE_LIFF", "false") == "true",
		LogLevel:          get("LOG_LEVEL", "info"),
		GenerationTimeout: 10 * time.Second,
		ResidualNitrogen:  500,
		PlannerWorkers:    1,
		CropSeedPath:      get("CROP_SEED_PATH", ""),
	}
	if d, err := time.ParseDuration(get("GENERATION_TIMEOUT", "10s")); err == nil && d > 0 {
		cfg.GenerationTimeout = d
	} else {
		log.Printf("[cfg] bad GENERATION_TIMEOUT, using %s", cfg.GenerationTimeout)
	}
	if f, err := strconv.ParseFloat(get("DEFAULT_RESIDUAL_NITROGEN", "500"), 64); err == nil && f >= 0 {
		cfg.ResidualNitrogen = f
	} else {
		log.Printf("[cfg] bad DEFAULT_RESIDUAL_NITROGEN, using %v", cfg.ResidualNitrogen)
	}
	if n, err := strconv.Atoi(get("PLANNER_WORKERS", "1")); err == nil && n > 0 {
		cfg.PlannerWorkers = n
	} else {
		log.Printf("[cfg] bad PLANNER_WORKERS, using %d", cfg.PlannerWorkers)
	}
	return cfg
}
