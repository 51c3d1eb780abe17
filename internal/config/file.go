package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config for YAML decoding. Pointer fields distinguish
// absent keys from zero values so the file only overrides what it names.
type fileConfig struct {
	Port      *string `yaml:"port"`
	Debug     *bool   `yaml:"debug"`
	AppID     *string `yaml:"app_id"`
	AppSecret *string `yaml:"app_secret"`
	AuthToken *string `yaml:"auth_token"`
	Upstream  struct {
		BaseURL *string `yaml:"base_url"`
	} `yaml:"upstream"`
	TLS struct {
		Cert       *string `yaml:"cert"`
		Key        *string `yaml:"key"`
		SelfSigned *bool   `yaml:"self_signed"`
		MinVersion *string `yaml:"min_version"`
	} `yaml:"tls"`
}

// applyFile overlays values from a YAML file onto the config.
func (c *Config) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	setIfPresent(&c.Port, fc.Port)
	setBoolIfPresent(&c.DebugMode, fc.Debug)
	setIfPresent(&c.AppID, fc.AppID)
	setIfPresent(&c.AppSecret, fc.AppSecret)
	setIfPresent(&c.AuthToken, fc.AuthToken)
	setIfPresent(&c.Upstream.BaseURL, fc.Upstream.BaseURL)
	setIfPresent(&c.TLS.Cert, fc.TLS.Cert)
	setIfPresent(&c.TLS.Key, fc.TLS.Key)
	setBoolIfPresent(&c.TLS.SelfSigned, fc.TLS.SelfSigned)
	if fc.TLS.MinVersion != nil {
		if err := c.TLS.MinVersion.Set(*fc.TLS.MinVersion); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	return nil
}

func setIfPresent(target *string, v *string) {
	if v != nil {
		*target = *v
	}
}

func setBoolIfPresent(target *bool, v *bool) {
	if v != nil {
		*target = *v
	}
}
