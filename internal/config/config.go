package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the process configuration, read from the environment.
type Config struct {
	AppPort        string `mapstructure:"APP_PORT" validate:"required"`
	DatabaseURL    string `mapstructure:"DATABASE_URL" validate:"required"`
	DBAutoMigrate  bool   `mapstructure:"DB_AUTO_MIGRATE"`
	DBMaxOpenConns int    `mapstructure:"DB_MAX_OPEN_CONNS" validate:"gte=1"`
	JWTSecret      string `mapstructure:"JWT_SECRET" validate:"required"`
	AuthRequired   bool   `mapstructure:"AUTH_REQUIRED"`
	PublicBaseURL  string `mapstructure:"PUBLIC_BASE_URL" validate:"omitempty,url"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	LogFormat      string `mapstructure:"LOG_FORMAT" validate:"oneof=json console"`
	ServiceName    string `mapstructure:"SERVICE_NAME" validate:"required"`
	OTelExporter   string `mapstructure:"OTEL_EXPORTER" validate:"oneof=none stdout otlp"`
	OTelEndpoint   string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT" validate:"required_if=OTelExporter otlp"`
}

var defaults = map[string]interface{}{
	"APP_PORT":          "8080",
	"DB_AUTO_MIGRATE":   false,
	"DB_MAX_OPEN_CONNS": 10,
	"AUTH_REQUIRED":     false,
	"LOG_LEVEL":         "info",
	"LOG_FORMAT":        "json",
	"SERVICE_NAME":      "emt-api",
	"OTEL_EXPORTER":     "none",
}

// Keys without a default still have to be bound so Unmarshal sees them.
var unboundKeys = []string{"DATABASE_URL", "JWT_SECRET", "PUBLIC_BASE_URL", "OTEL_EXPORTER_OTLP_ENDPOINT"}

// Load reads the optional dotenv files (".env" when none are given) into the
// process environment and binds the result onto a Config. Variables already
// set in the environment win over dotenv values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	for _, k := range unboundKeys {
		if err := v.BindEnv(k); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
