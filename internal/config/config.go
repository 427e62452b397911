package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 5005
	defaultEnv        = "development"
	defaultMongoURI   = "mongodb://127.0.0.1:27017"
	defaultMongoDB    = "portfolio"
	defaultStaticDir  = "static"
)

// AppConfig holds runtime startup configuration, loaded from an optional
// YAML file and overridden by environment variables.
type AppConfig struct {
	Port           int                `yaml:"port"`
	Env            string             `yaml:"env"` // "development" | "production"
	MongoURI       string             `yaml:"mongo_uri"`
	MongoDB        string             `yaml:"mongo_db"`
	Paths          RuntimePathsConfig `yaml:"paths"`
	AllowedOrigins []string           `yaml:"allowed_origins"`
}

type RuntimePathsConfig struct {
	Static string `yaml:"static"`
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }

type rawAppConfig struct {
	Port               int            `yaml:"port"`
	Env                string         `yaml:"env"`
	NodeEnv            string         `yaml:"node_env"`
	MongoURI           string         `yaml:"mongo_uri"`
	MongoURL           string         `yaml:"mongo_url"`
	DatabaseURL        string         `yaml:"database_url"`
	MongoDB            string         `yaml:"mongo_db"`
	DBName             string         `yaml:"db_name"`
	Paths              rawPathsConfig `yaml:"paths"`
	StaticDir          string         `yaml:"static_dir"`
	AllowedOrigins     []string       `yaml:"allowed_origins"`
	CORSAllowedOrigins []string       `yaml:"cors_allowed_origins"`
}

type rawPathsConfig struct {
	Static string `yaml:"static"`
}

// Load reads the YAML config if present (a missing file is not an error; the
// original server ran on environment variables alone) and applies env
// overrides on top.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := defaultAppConfig()

	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		raw := rawAppConfig{}
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
		applyRawAppConfig(&cfg, raw)
	case os.IsNotExist(err):
		// fall through to defaults + env
	default:
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d, expected 1-65535", cfg.Port)
	}
	if strings.TrimSpace(cfg.MongoURI) == "" {
		return nil, fmt.Errorf("mongo_uri must not be empty")
	}
	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port:     defaultPort,
		Env:      defaultEnv,
		MongoURI: defaultMongoURI,
		MongoDB:  defaultMongoDB,
		Paths:    RuntimePathsConfig{Static: defaultStaticDir},
	}
}

func applyRawAppConfig(cfg *AppConfig, raw rawAppConfig) {
	if raw.Port != 0 {
		cfg.Port = raw.Port
	}
	if v := strings.TrimSpace(raw.Env); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(raw.NodeEnv); v != "" {
		cfg.Env = v
	}
	for _, v := range []string{raw.MongoURI, raw.MongoURL, raw.DatabaseURL} {
		if v = strings.TrimSpace(v); v != "" {
			cfg.MongoURI = v
		}
	}
	if v := strings.TrimSpace(raw.MongoDB); v != "" {
		cfg.MongoDB = v
	}
	if v := strings.TrimSpace(raw.DBName); v != "" {
		cfg.MongoDB = v
	}
	if v := strings.TrimSpace(raw.Paths.Static); v != "" {
		cfg.Paths.Static = v
	}
	if v := strings.TrimSpace(raw.StaticDir); v != "" {
		cfg.Paths.Static = v
	}
	switch {
	case raw.AllowedOrigins != nil:
		cfg.AllowedOrigins = raw.AllowedOrigins
	case raw.CORSAllowedOrigins != nil:
		cfg.AllowedOrigins = raw.CORSAllowedOrigins
	}
}

func applyEnvOverrides(cfg *AppConfig) error {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	for _, key := range []string{"NODE_ENV", "APP_ENV"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			cfg.Env = v
		}
	}
	if v := strings.TrimSpace(os.Getenv("MONGO_URI")); v != "" {
		cfg.MongoURI = v
	}
	if v := strings.TrimSpace(os.Getenv("MONGO_DB")); v != "" {
		cfg.MongoDB = v
	}
	if v := strings.TrimSpace(os.Getenv("STATIC_DIR")); v != "" {
		cfg.Paths.Static = v
	}
	if v := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
		cfg.AllowedOrigins = origins
	}
	return nil
}
