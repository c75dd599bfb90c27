package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	// Format of the stdout output: the json result line or a rendered report.
	Format string `validate:"oneof=json table markdown"`
	// ChartDir enables chart output when set.
	ChartDir    string
	ChartFormat string `validate:"oneof=png html"`
	// MaxInputBytes caps request and csv files read from disk, 0 disables the cap.
	MaxInputBytes int64 `validate:"gte=0"`
}

var (
	config *Config
	once   sync.Once

	validate = validator.New()
)

// GetConfig returns the process wide configuration read from the environment. A .env
// file in the working directory is loaded first when present.
func GetConfig() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		config = FromEnv()
	})
	return config
}

func FromEnv() *Config {
	return &Config{
		Format:        getEnvOrDefault("PREPROCESS_FORMAT", "json"),
		ChartDir:      os.Getenv("PREPROCESS_CHART_DIR"),
		ChartFormat:   getEnvOrDefault("PREPROCESS_CHART_FORMAT", "png"),
		MaxInputBytes: getEnvOrDefaultInt("PREPROCESS_MAX_INPUT_BYTES", 0),
	}
}

func (c *Config) Validate() error {
	return validate.Struct(c)
}

func getEnvOrDefault(env, defaultVal string) string {
	if e := os.Getenv(env); e != "" {
		return e
	}
	return defaultVal
}

// getEnvOrDefaultInt falls back to the default when the variable is unset or invalid;
// a negative value is kept so Validate reports it.
func getEnvOrDefaultInt(env string, defaultVal int64) int64 {
	e := os.Getenv(env)
	if e == "" {
		return defaultVal
	}
	v, err := strconv.ParseInt(e, 10, 64)
	if err != nil {
		return defaultVal
	}
	return v
}
