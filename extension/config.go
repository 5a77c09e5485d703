package extension

import (
	"github.com/caarlos0/env/v11"

	"github.com/wippyai/asyncload/errors"
)

// Config controls the process-facing side of an extension. It is read from
// the environment when the host registers callbacks.
type Config struct {
	LogLevel     string `env:"ASYNCLOAD_LOG_LEVEL"     envDefault:"info"`
	LogFile      string `env:"ASYNCLOAD_LOG_FILE"      envDefault:"stderr"`
	StrictEvents bool   `env:"ASYNCLOAD_STRICT_EVENTS" envDefault:"false"`
}

// DefaultConfig returns the configuration used when the environment is empty.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		LogFile:  "stderr",
	}
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return DefaultConfig(), errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "parse environment")
	}
	return cfg, nil
}
