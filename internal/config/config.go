package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/norune/dunspars-sub000/internal/constants"
)

type Config struct {
	DBPath     string
	ConfigDir  string
	APIBaseURL string
	LogLevel   string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	defaultDB, err := defaultDBPath()
	if err != nil {
		return nil, err
	}
	configDir, err := defaultConfigDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DBPath:     getEnv("DUNSPARS_DB", defaultDB),
		ConfigDir:  getEnv("DUNSPARS_CONFIG_DIR", configDir),
		APIBaseURL: getEnv("POKEAPI_BASE_URL", constants.DefaultAPIBaseURL),
		LogLevel:   getEnv("DUNSPARS_LOG_LEVEL", "warn"),
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("config_dir", cfg.ConfigDir).
		Str("api_base_url", cfg.APIBaseURL).
		Str("log_level", cfg.LogLevel).
		Msg("configuration loaded")

	return cfg, nil
}

// defaultDBPath points into the user cache dir; the database is fully
// rebuildable through setup.
func defaultDBPath() (string, error) {
	cache, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cache, "dunspars", "resource.db"), nil
}

func defaultConfigDir() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "dunspars"), nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
