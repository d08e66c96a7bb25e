package common

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	defaultPort           = "3333"
	defaultBackendTimeout = 10 * time.Second
)

// Config holds all process configuration. It is constructed once at
// startup and passed into each component constructor; nothing reads the
// environment after that.
type Config struct {
	// APIUser and APIPassword form the shared secret accepted on
	// Basic authorization.
	APIUser     string `validate:"required"`
	APIPassword string `validate:"required"`

	// ElasticURL is the base URL of the search backend.
	ElasticURL string `validate:"required,url"`

	// JWTSecret signs the Bearer tokens this gateway accepts. When it
	// is empty, Bearer authorization always fails.
	JWTSecret string

	// Port the HTTP listener binds to.
	Port string

	// BackendTimeout bounds each search backend call.
	BackendTimeout time.Duration
}

// envNames maps Config fields onto their environment variables, for
// startup error messages.
var envNames = map[string]string{
	"APIUser":     "API_USER",
	"APIPassword": "API_PW",
	"ElasticURL":  "ELASTIC_URL",
}

// NewConfigFromEnv builds and validates the process configuration. A
// missing or malformed required value is returned as an error naming the
// environment variable, and is fatal to startup.
func NewConfigFromEnv() (*Config, error) {
	cfg := &Config{
		APIUser:        os.Getenv("API_USER"),
		APIPassword:    os.Getenv("API_PW"),
		ElasticURL:     os.Getenv("ELASTIC_URL"),
		JWTSecret:      os.Getenv("API_JWT_SECRET"),
		Port:           GetEnv("PORT", defaultPort),
		BackendTimeout: defaultBackendTimeout,
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		validationErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, err
		}

		fieldErr := validationErrs[0]

		name := envNames[fieldErr.StructField()]
		if name == "" {
			name = fieldErr.StructField()
		}

		if fieldErr.Tag() == "required" {
			return nil, fmt.Errorf("no %s found", name)
		}

		return nil, fmt.Errorf("invalid %s: %q", name, fieldErr.Value())
	}

	return cfg, nil
}

// GetEnv returns the env variable value, or the given default when unset.
func GetEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return defaultValue
}
