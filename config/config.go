// Package config loads service settings from a YAML file, a .env file and
// INTROSCORE_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. INTROSCORE_SERVER_ADDR.
const EnvPrefix = "INTROSCORE"

type App struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text or json
}

type Server struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
}

type Scoring struct {
	// DefaultDuration is the speaking time in seconds assumed when a
	// request carries none.
	DefaultDuration int `mapstructure:"default_duration"`
}

type Lexicon struct {
	ExtraWords    []string `mapstructure:"extra_words"`
	Suggestions   int      `mapstructure:"suggestions"`
	MinSimilarity float64  `mapstructure:"min_similarity"`
}

type Metrics struct {
	Enabled bool `mapstructure:"enabled"`
}

// Client configures the CLI's remote scoring mode.
type Client struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type Root struct {
	App     App     `mapstructure:"app"`
	Log     Log     `mapstructure:"log"`
	Server  Server  `mapstructure:"server"`
	Scoring Scoring `mapstructure:"scoring"`
	Lexicon Lexicon `mapstructure:"lexicon"`
	Metrics Metrics `mapstructure:"metrics"`
	Client  Client  `mapstructure:"client"`
}

// SetDefaults registers every key with its default on v. Keys must be
// known to viper for environment overrides to reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "introscore")
	v.SetDefault("app.version", "dev")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("server.addr", ":5000")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("scoring.default_duration", 52)
	v.SetDefault("lexicon.extra_words", []string{})
	v.SetDefault("lexicon.suggestions", 3)
	v.SetDefault("lexicon.min_similarity", 0.8)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("client.url", "")
	v.SetDefault("client.timeout", 60*time.Second)
}

// Load reads configuration into a fresh viper instance. See LoadInto.
func Load(path string) (*Root, error) {
	return LoadInto(viper.New(), path)
}

// LoadInto reads configuration with v, which may already carry bound
// flags. An explicit path must exist; otherwise config/<CONFIG_ENV>/config.yaml
// and then ./config.yaml are tried, and defaults apply when neither exists.
func LoadInto(v *viper.Viper, path string) (*Root, error) {
	_ = godotenv.Load()

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	file := path
	if file == "" {
		file = discover()
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func discover() string {
	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	for _, p := range []string{
		filepath.Join("config", env, "config.yaml"),
		"config.yaml",
	} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Validate rejects settings no component can run with.
func (c *Root) Validate() error {
	var errs []error
	if c.Scoring.DefaultDuration < 0 {
		errs = append(errs, fmt.Errorf("config: scoring.default_duration must not be negative, got %d", c.Scoring.DefaultDuration))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("config: log.format must be text or json, got %q", c.Log.Format))
	}
	if c.Lexicon.Suggestions < 0 {
		errs = append(errs, fmt.Errorf("config: lexicon.suggestions must not be negative, got %d", c.Lexicon.Suggestions))
	}
	if c.Lexicon.MinSimilarity < 0 || c.Lexicon.MinSimilarity > 1 {
		errs = append(errs, fmt.Errorf("config: lexicon.min_similarity must be within [0,1], got %v", c.Lexicon.MinSimilarity))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("config: server.max_body_bytes must be positive"))
	}
	return errors.Join(errs...)
}
