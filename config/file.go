package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/kbukum/fetchkit/fetch"
	"github.com/kbukum/fetchkit/interceptors"
)

// File is the declarative shape of a client configuration as read from
// config.yml and environment variables.
type File struct {
	// BaseURL is prepended to relative request paths.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"omitempty,url"`

	// Credentials is the credential mode carried in the request defaults.
	Credentials string `yaml:"credentials" mapstructure:"credentials" validate:"omitempty,oneof=omit same-origin include"`

	// Headers are default headers merged into every client-built request.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Defaults are additional request-option keys carried verbatim into the
	// configuration defaults, for keys the transport understands but this
	// file does not name. The Credentials and Headers fields win on overlap.
	Defaults map[string]any `yaml:"defaults" mapstructure:"defaults"`

	// Standard applies the standard configuration: same-origin credentials
	// plus rejection of non-2xx responses. Overrides Credentials.
	Standard bool `yaml:"standard" mapstructure:"standard"`

	// RequestID configures request-ID stamping.
	RequestID RequestIDFile `yaml:"request_id" mapstructure:"request_id"`

	// Logging configures request/response logging.
	Logging LoggingFile `yaml:"logging" mapstructure:"logging"`
}

// RequestIDFile configures the request-ID interceptor.
type RequestIDFile struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Header  string `yaml:"header" mapstructure:"header"`
}

// LoggingFile configures the logging interceptor. The logger writes to
// stderr; an unparseable level falls back to info.
type LoggingFile struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Level   string `yaml:"level" mapstructure:"level"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (f *File) ApplyDefaults() {
	if f.RequestID.Enabled && f.RequestID.Header == "" {
		f.RequestID.Header = interceptors.DefaultRequestIDHeader
	}
	if f.Logging.Enabled && f.Logging.Level == "" {
		f.Logging.Level = "info"
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validate checks that the configuration is valid.
func (f *File) Validate() error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", strings.ToLower(e.Field()), e.Tag()))
	}
	return fmt.Errorf("config: %s", strings.Join(msgs, "; "))
}

// Build lowers the declarative file into a fetch.Configuration. Interceptor
// order: request-ID stamping, then the standard rejection interceptor, then
// logging, so the log line carries the stamped request and sees rejected
// statuses on the failure channel.
func (f *File) Build() fetch.Configuration {
	cfg := fetch.New()

	if f.BaseURL != "" {
		cfg = cfg.WithBaseURL(f.BaseURL)
	}

	defaults := fetch.Defaults{}
	for k, v := range f.Defaults {
		defaults[k] = v
	}
	if f.Credentials != "" {
		defaults[fetch.DefaultCredentials] = f.Credentials
	}
	if len(f.Headers) > 0 {
		headers := make(map[string]string, len(f.Headers))
		for k, v := range f.Headers {
			headers[k] = v
		}
		defaults[fetch.DefaultHeaders] = headers
	}
	if len(defaults) > 0 {
		cfg = cfg.WithDefaults(defaults)
	}

	if f.RequestID.Enabled {
		cfg = cfg.AddInterceptor(interceptors.RequestID(f.RequestID.Header))
	}
	if f.Standard {
		cfg = cfg.UseStandardConfiguration()
	}
	if f.Logging.Enabled {
		level, err := zerolog.ParseLevel(f.Logging.Level)
		if err != nil || f.Logging.Level == "" {
			level = zerolog.InfoLevel
		}
		log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)
		cfg = cfg.AddInterceptor(interceptors.Logging(log))
	}
	return cfg
}
