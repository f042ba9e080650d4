package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv(env(nil))
	assert.Equal(t, AppConfig{
		Port:              "8080",
		Timezone:          "Asia/Bangkok",
		DBPath:            "rotaplan.db",
		LogLevel:          "info",
		GenerationTimeout: 10 * time.Second,
		ResidualNitrogen:  500,
		PlannerWorkers:    1,
	}, cfg)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg := FromEnv(env(map[string]string{
		"PORT":                      "9090",
		"DB_PATH":                   "/tmp/x.db",
		"ENABLE_LIFF":               "true",
		"LOG_LEVEL":                 "debug",
		"GENERATION_TIMEOUT":        "250ms",
		"DEFAULT_RESIDUAL_NITROGEN": "0",
		"PLANNER_WORKERS":           "4",
		"CROP_SEED_PATH":            "crops.yaml",
	}))
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.EnableLIFF)
	assert.Equal(t, 250*time.Millisecond, cfg.GenerationTimeout)
	assert.Zero(t, cfg.ResidualNitrogen)
	assert.Equal(t, 4, cfg.PlannerWorkers)
	assert.Equal(t, "crops.yaml", cfg.CropSeedPath)
}

func TestFromEnv_MalformedFallsBack(t *testing.T) {
	cfg := FromEnv(env(map[string]string{
		"GENERATION_TIMEOUT":        "soon",
		"DEFAULT_RESIDUAL_NITROGEN": "-3",
		"PLANNER_WORKERS":           "0",
	}))
	assert.Equal(t, 10*time.Second, cfg.GenerationTimeout)
	assert.Equal(t, 500.0, cfg.ResidualNitrogen)
	assert.Equal(t, 1, cfg.PlannerWorkers)
}
