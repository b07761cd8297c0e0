package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment variable name, for example
// SYNOPHOTOS_URL.
const EnvPrefix = "SYNOPHOTOS"

// Config holds the settings for talking to a Synology Photos server.
type Config struct {
	// URL is the API entry point, for example
	// http://192.168.1.199:5000/webapi/entry.cgi
	URL      string `envconfig:"URL" validate:"required,url"`
	Account  string `envconfig:"ACCOUNT" validate:"required"`
	Password string `envconfig:"PASSWORD"`

	// Timeout bounds each command as a whole, not individual requests.
	Timeout time.Duration `envconfig:"TIMEOUT" default:"1m" validate:"gt=0"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console" validate:"oneof=console json"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the configuration from the environment. Any envFiles that exist
// are loaded first; they never override variables that are already set.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration is complete enough to log in.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	msgs := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		msgs = append(msgs, fmt.Sprintf("%s_%s failed %q", EnvPrefix, envName(fe.Field()), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, ", "))
}

func envName(field string) string {
	switch field {
	case "LogLevel":
		return "LOG_LEVEL"
	case "LogFormat":
		return "LOG_FORMAT"
	default:
		return strings.ToUpper(field)
	}
}
