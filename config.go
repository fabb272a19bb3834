// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const configFileName = ".avlkv.yaml"

type KeysConfig struct {
	Type string `yaml:"type"`
}

type DisplayConfig struct {
	TreeView bool `yaml:"tree_view"`
	Color    bool `yaml:"color"`
}

type CacheConfig struct {
	DistanceTTL     time.Duration `yaml:"distance_ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

type FilterConfig struct {
	ExpectedKeys      uint    `yaml:"expected_keys"`
	FalsePositiveRate float64 `yaml:"false_positive_rate"`
}

type LoaderConfig struct {
	ShowProgress bool `yaml:"show_progress"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Keys    KeysConfig    `yaml:"keys"`
	Display DisplayConfig `yaml:"display"`
	Cache   CacheConfig   `yaml:"cache"`
	Filter  FilterConfig  `yaml:"filter"`
	Load    LoaderConfig  `yaml:"load"`
	Log     LogConfig     `yaml:"log"`
}

var defaultConfig = Config{
	Keys: KeysConfig{
		Type: keyTypeInt,
	},
	Display: DisplayConfig{
		TreeView: false,
		Color:    true,
	},
	Cache: CacheConfig{
		DistanceTTL:     10 * time.Minute,
		CleanupInterval: 5 * time.Minute,
	},
	Filter: FilterConfig{
		ExpectedKeys:      10000,
		FalsePositiveRate: 0.01,
	},
	Load: LoaderConfig{
		ShowProgress: true,
	},
	Log: LogConfig{
		Level: "warn",
	},
}

// DefaultConfig returns a fresh copy of the built-in settings.
func DefaultConfig() *Config {
	cfg := defaultConfig
	return &cfg
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads path, or ~/.avlkv.yaml when path is empty. Any problem
// reading the file falls back to the defaults.
func LoadConfig(path string) *Config {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return DefaultConfig()
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("Failed to read configuration, using defaults")
		}
		return DefaultConfig()
	}

	cfg, err := parseConfig(data)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Failed to parse configuration, using defaults")
		return DefaultConfig()
	}
	return cfg
}

// parseConfig overlays data on top of the defaults, then fills in values
// that would make the tree helpers unusable.
func parseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.Keys.Type == "" {
		cfg.Keys.Type = defaultConfig.Keys.Type
	}
	if cfg.Cache.DistanceTTL <= 0 {
		cfg.Cache.DistanceTTL = defaultConfig.Cache.DistanceTTL
	}
	if cfg.Cache.CleanupInterval <= 0 {
		cfg.Cache.CleanupInterval = defaultConfig.Cache.CleanupInterval
	}
	if cfg.Filter.ExpectedKeys == 0 {
		cfg.Filter.ExpectedKeys = defaultConfig.Filter.ExpectedKeys
	}
	if cfg.Filter.FalsePositiveRate <= 0 || cfg.Filter.FalsePositiveRate >= 1 {
		cfg.Filter.FalsePositiveRate = defaultConfig.Filter.FalsePositiveRate
	}
	return cfg, nil
}

func writeConfigFile(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func displaySettings(w io.Writer, path string) error {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	created := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeConfigFile(path, DefaultConfig()); err != nil {
			return err
		}
		created = true
	}

	cfg := LoadConfig(path)

	fmt.Fprintf(w, "🔧 avlkv Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════\n\n")
	if created {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n\n", path)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s\n\n", path)
	}

	fmt.Fprintf(w, "🔑 %sKeys:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %stype%s: %s\n\n", Green, Reset, cfg.Keys.Type)

	fmt.Fprintf(w, "🌳 %sDisplay:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %stree_view%s: %t\n", Green, Reset, cfg.Display.TreeView)
	fmt.Fprintf(w, "  • %scolor%s: %t\n\n", Green, Reset, cfg.Display.Color)

	fmt.Fprintf(w, "⏱  %sDistance cache:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sdistance_ttl%s: %s\n", Green, Reset, cfg.Cache.DistanceTTL)
	fmt.Fprintf(w, "  • %scleanup_interval%s: %s\n\n", Green, Reset, cfg.Cache.CleanupInterval)

	fmt.Fprintf(w, "🔍 %sKey filter:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sexpected_keys%s: %d\n", Green, Reset, cfg.Filter.ExpectedKeys)
	fmt.Fprintf(w, "  • %sfalse_positive_rate%s: %g\n\n", Green, Reset, cfg.Filter.FalsePositiveRate)

	fmt.Fprintf(w, "📦 %sLoading:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sshow_progress%s: %t\n\n", Green, Reset, cfg.Load.ShowProgress)

	fmt.Fprintf(w, "📝 %sLogging:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %slevel%s: %s\n", Green, Reset, cfg.Log.Level)
	return nil
}
