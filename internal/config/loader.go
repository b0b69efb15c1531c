package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if REEL_CONFIG is set
//  3. env (prefix REEL_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("REEL_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadFile, err)
		}
	}

	// Environment variables: REEL_ADDR, REEL_DATASET_PATH, ...
	// Keys keep their underscores to match the koanf struct tags.
	envProvider := env.Provider("REEL_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "reel_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadEnv, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnmarshal, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalid)
	case c.DatasetPath == "":
		return fmt.Errorf("%w: dataset_path must not be empty", ErrInvalid)
	case strings.TrimSpace(c.Subject) == "":
		return fmt.Errorf("%w: subject must not be empty", ErrInvalid)
	case c.TopN < 1:
		return fmt.Errorf("%w: top_n must be at least 1", ErrInvalid)
	case c.DurationMaxBins < 1:
		return fmt.Errorf("%w: duration_max_bins must be at least 1", ErrInvalid)
	}
	return nil
}
