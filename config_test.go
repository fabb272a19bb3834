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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseConfigOverlaysDefaults(t *testing.T) {
	data := []byte(`
keys:
  type: string
display:
  tree_view: true
cache:
  distance_ttl: 30s
filter:
  false_positive_rate: 2
log:
  level: debug
`)

	cfg, err := parseConfig(data)
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if cfg.Keys.Type != keyTypeString {
		t.Errorf("Keys.Type = %q; want %q", cfg.Keys.Type, keyTypeString)
	}
	if !cfg.Display.TreeView {
		t.Error("Display.TreeView = false; want true")
	}
	if !cfg.Display.Color {
		t.Error("Display.Color lost its default")
	}
	if cfg.Cache.DistanceTTL != 30*time.Second {
		t.Errorf("Cache.DistanceTTL = %s; want 30s", cfg.Cache.DistanceTTL)
	}
	if cfg.Cache.CleanupInterval != defaultConfig.Cache.CleanupInterval {
		t.Errorf("Cache.CleanupInterval = %s; want default", cfg.Cache.CleanupInterval)
	}
	if cfg.Filter.FalsePositiveRate != defaultConfig.Filter.FalsePositiveRate {
		t.Errorf("out of range FalsePositiveRate kept: %g", cfg.Filter.FalsePositiveRate)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q; want debug", cfg.Log.Level)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	if _, err := parseConfig([]byte("keys: [unterminated")); err == nil {
		t.Error("Expected error for invalid YAML, got nil")
	}
}

func TestDefaultConfigIsACopy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keys.Type = "changed"
	if defaultConfig.Keys.Type == "changed" {
		t.Error("DefaultConfig returned the shared defaults")
	}
}

func TestLoadConfigFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg := LoadConfig(filepath.Join(dir, "missing.yaml"))
	if *cfg != defaultConfig {
		t.Errorf("missing file: got %+v; want defaults", *cfg)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("keys: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg = LoadConfig(bad)
	if *cfg != defaultConfig {
		t.Errorf("invalid file: got %+v; want defaults", *cfg)
	}
}

func TestWriteConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)

	want := DefaultConfig()
	want.Keys.Type = keyTypeString
	want.Cache.DistanceTTL = 90 * time.Second
	if err := writeConfigFile(path, want); err != nil {
		t.Fatalf("writeConfigFile returned error: %v", err)
	}

	got := LoadConfig(path)
	if *got != *want {
		t.Errorf("LoadConfig after write = %+v; want %+v", *got, *want)
	}
}

func TestDisplaySettingsCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)

	var out bytes.Buffer
	if err := displaySettings(&out, path); err != nil {
		t.Fatalf("displaySettings returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
	if !strings.Contains(out.String(), "newly created") {
		t.Errorf("output does not mention the new file: %q", out.String())
	}

	out.Reset()
	if err := displaySettings(&out, path); err != nil {
		t.Fatalf("displaySettings returned error: %v", err)
	}
	if strings.Contains(out.String(), "newly created") {
		t.Error("second call reported a new file")
	}
	if !strings.Contains(out.String(), "false_positive_rate") {
		t.Errorf("output is missing filter settings: %q", out.String())
	}
}
