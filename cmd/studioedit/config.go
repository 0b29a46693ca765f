package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type config struct {
	Base         string        `yaml:"base"`
	Usage        string        `yaml:"usage"`
	Surface      string        `yaml:"surface"`
	OpenAPI      string        `yaml:"openapi"`
	Schema       string        `yaml:"schema"`
	Locale       string        `yaml:"locale"`
	Timeout      time.Duration `yaml:"timeout"`
	AllowOverlap bool          `yaml:"allow_overlap"`
	Messages     messageTable  `yaml:"messages"`
}

// messageTable maps locale to message key to text.
type messageTable map[string]map[string]string

func (m messageTable) Translate(locale, key string, _ ...any) (string, error) {
	if msg, ok := m[locale][key]; ok {
		return msg, nil
	}
	return "", fmt.Errorf("no %q message for locale %q", key, locale)
}

func defaultConfig() config {
	return config{Timeout: 30 * time.Second}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultConfig().Timeout
	}
	return cfg, nil
}

// override applies non-empty flag values on top of the file config.
func (c *config) override(base, usage, surfacePath, openapiPath, schema, locale string) {
	set := func(dst *string, v string) {
		if strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	set(&c.Base, base)
	set(&c.Usage, usage)
	set(&c.Surface, surfacePath)
	set(&c.OpenAPI, openapiPath)
	set(&c.Schema, schema)
	set(&c.Locale, locale)
}
