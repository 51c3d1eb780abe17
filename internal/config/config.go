package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/larkbridge-io/options-api/internal/constant"
)

// Config holds the service configuration.
type Config struct {
	// Server configuration
	Port      string
	DebugMode bool

	// Upstream application credentials used for the token exchange.
	AppID     string
	AppSecret string

	// AuthToken is the shared secret inbound requests must present.
	AuthToken string

	Upstream UpstreamConfig
	TLS      TLSConfig
	OTel     OTelConfig
}

// UpstreamConfig locates the table platform's open APIs.
type UpstreamConfig struct {
	BaseURL string
}

// OTelConfig controls the optional OTLP trace exporter. Headers holds
// comma-separated key=value pairs sent with every export.
type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

// Enabled reports whether trace export is configured.
func (o *OTelConfig) Enabled() bool {
	return o.Endpoint != ""
}

// Load builds the configuration in layers: defaults, an optional YAML file
// named by CONFIG_FILE, environment variables, then command-line flags
// (bound here, parsed by the caller). A .env file in the working directory
// is folded into the environment first; its absence is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	c := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := c.applyFile(path); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	c.applyEnv()
	c.bindFlags(flag.CommandLine)

	return c, nil
}

func defaults() *Config {
	return &Config{
		Port:     constant.DefaultPort,
		Upstream: UpstreamConfig{BaseURL: constant.DefaultUpstreamURL},
		TLS:      defaultTLSConfig(),
		OTel:     OTelConfig{ServiceName: "lark-options-api"},
	}
}

// applyEnv overrides file and default values with any set environment
// variables.
func (c *Config) applyEnv() {
	setFromEnv(&c.Port, "PORT")
	setBoolFromEnv(&c.DebugMode, "DEBUG_MODE")
	setFromEnv(&c.AppID, "APP_ID")
	setFromEnv(&c.AppSecret, "APP_SECRET")
	setFromEnv(&c.AuthToken, "AUTH_TOKEN")
	setFromEnv(&c.Upstream.BaseURL, "LARK_BASE_URL")
	c.TLS.applyEnv()
	setFromEnv(&c.OTel.Endpoint, "OTEL_EXPORTER_OTLP_ENDPOINT")
	setFromEnv(&c.OTel.Headers, "OTEL_EXPORTER_OTLP_HEADERS")
	setFromEnv(&c.OTel.ServiceName, "OTEL_SERVICE_NAME")
	setFromEnv(&c.OTel.ServiceVersion, "OTEL_SERVICE_VERSION")
}

// bindFlags will parse the given flagset and bind values to selected config
// options.
func (c *Config) bindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Port, "port", c.Port, "Port to listen on")
	fs.BoolVar(&c.DebugMode, "debug", c.DebugMode, "Enable debug mode (verbose logs, permissive CORS)")
	fs.StringVar(&c.Upstream.BaseURL, "upstream-url", c.Upstream.BaseURL, "Base URL of the upstream open APIs")
	c.TLS.bindFlags(fs)
}

// Validate checks invariants that must hold before serving.
func (c *Config) Validate() error {
	return c.TLS.validate()
}

// MissingSecrets lists the credential variables left unset. The server
// still starts without them; POST requests then fail per the contract.
func (c *Config) MissingSecrets() []string {
	var missing []string
	if c.AppID == "" {
		missing = append(missing, "APP_ID")
	}
	if c.AppSecret == "" {
		missing = append(missing, "APP_SECRET")
	}
	if c.AuthToken == "" {
		missing = append(missing, "AUTH_TOKEN")
	}
	return missing
}

// setFromEnv overrides target when the variable is set and non-empty.
func setFromEnv(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

// setBoolFromEnv overrides target when the variable is set at all, so
// explicit "false"/"0" can turn a file-enabled option back off.
func setBoolFromEnv(target *bool, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*target = v == "true" || v == "1"
	}
}
