// Package config loads application configuration from YAML and the
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Store      StoreConfig      `yaml:"store"`
	Namespaces NamespacesConfig `yaml:"namespaces"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port     int    `yaml:"port"`
	BasePath string `yaml:"base_path"`
}

// StoreConfig holds triple store settings.
type StoreConfig struct {
	Endpoint string `yaml:"endpoint"`
}

// NamespacesConfig holds the RDF namespace prefixes compiled into
// every generated query.
type NamespacesConfig struct {
	Entity           string `yaml:"entity"`
	Property         string `yaml:"property"`
	Record           string `yaml:"record"`
	WikidataEntity   string `yaml:"wikidata_entity"`
	WikidataProperty string `yaml:"wikidata_property"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level          string `yaml:"level"`
	Format         string `yaml:"format"`
	FilePath       string `yaml:"file_path"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxFiles   int    `yaml:"file_max_files"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:     3000,
			BasePath: "",
		},
		Store: StoreConfig{
			Endpoint: "http://localhost:7200/repositories/knowledge-graph",
		},
		Namespaces: NamespacesConfig{
			Entity:           "http://kg.gaung.org/entity/",
			Property:         "http://kg.gaung.org/property/",
			Record:           "http://kg.gaung.org/record/",
			WikidataEntity:   "http://www.wikidata.org/entity/",
			WikidataProperty: "http://www.wikidata.org/prop/direct/",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads config from a YAML file (if it exists) and overrides with
// environment variables. Environment variables take precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFromFile(path); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) loadFromEnv() {
	if v := os.Getenv("GA_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("GA_BASE_PATH"); v != "" {
		c.Server.BasePath = v
	}
	if v := os.Getenv("GA_STORE_ENDPOINT"); v != "" {
		c.Store.Endpoint = v
	}
	if v := os.Getenv("GA_ENTITY_NS"); v != "" {
		c.Namespaces.Entity = v
	}
	if v := os.Getenv("GA_PROPERTY_NS"); v != "" {
		c.Namespaces.Property = v
	}
	if v := os.Getenv("GA_RECORD_NS"); v != "" {
		c.Namespaces.Record = v
	}
	if v := os.Getenv("GA_WD_ENTITY_NS"); v != "" {
		c.Namespaces.WikidataEntity = v
	}
	if v := os.Getenv("GA_WD_PROPERTY_NS"); v != "" {
		c.Namespaces.WikidataProperty = v
	}
	if v := os.Getenv("GA_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("GA_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Store.Endpoint == "" {
		return fmt.Errorf("store endpoint is required")
	}
	ns := []struct {
		name  string
		value string
	}{
		{"entity", c.Namespaces.Entity},
		{"property", c.Namespaces.Property},
		{"record", c.Namespaces.Record},
		{"wikidata_entity", c.Namespaces.WikidataEntity},
		{"wikidata_property", c.Namespaces.WikidataProperty},
	}
	for _, n := range ns {
		if n.value == "" {
			return fmt.Errorf("namespace %s is required", n.name)
		}
	}
	c.Server.BasePath = strings.TrimRight(c.Server.BasePath, "/")
	return nil
}
