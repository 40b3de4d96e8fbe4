package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Observ   ObservabilityConfig
	Business BusinessConfig
}

type AppConfig struct {
	Env      string
	DataDir  string
	SeedFile string
}

type ObservabilityConfig struct {
	JaegerEndpoint string
	MetricsPort    string
}

type BusinessConfig struct {
	OversellPolicy         string
	LowStockThreshold      int
	CriticalStockThreshold int
	AlertQueueSize         int
}

func Load() *Config {
	_ = godotenv.Load()

	lowStock, _ := strconv.Atoi(getEnv("LOW_STOCK_THRESHOLD", "10"))
	criticalStock, _ := strconv.Atoi(getEnv("CRITICAL_STOCK_THRESHOLD", "5"))
	alertQueue, _ := strconv.Atoi(getEnv("ALERT_QUEUE_SIZE", "64"))

	cfg := &Config{
		App: AppConfig{
			Env:      getEnv("ENV", "development"),
			DataDir:  getEnv("DATA_DIR", "data"),
			SeedFile: getEnv("SEED_FILE", ""),
		},
		Observ: ObservabilityConfig{
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
			MetricsPort:    getEnv("METRICS_PORT", "9090"),
		},
		Business: BusinessConfig{
			OversellPolicy:         getEnv("OVERSELL_POLICY", "clamp"),
			LowStockThreshold:      lowStock,
			CriticalStockThreshold: criticalStock,
			AlertQueueSize:         alertQueue,
		},
	}

	log.Printf("Config loaded: env=%s, data_dir=%s, oversell_policy=%s",
		cfg.App.Env, cfg.App.DataDir, cfg.Business.OversellPolicy)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
