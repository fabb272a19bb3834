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
	"errors"
	"reflect"
	"testing"
)

// TestSplitCommand verifies that splitCommand correctly tokenizes a command string.
func TestSplitCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"insert 1 one", []string{"insert", "1", "one"}},
		{`insert 2 "two words"`, []string{"insert", "2", "two words"}},
		{`search 'passion fruit'`, []string{"search", "passion fruit"}},
		{"   size   ", []string{"size"}},
		{"", []string{}},
	}

	for _, tc := range tests {
		parts, err := splitCommand(tc.input)
		if err != nil {
			t.Errorf("splitCommand(%q) returned error: %v", tc.input, err)
			continue
		}
		if len(parts) != len(tc.expected) {
			t.Errorf("splitCommand(%q): expected %v, got %v", tc.input, tc.expected, parts)
			continue
		}
		for i := range parts {
			if parts[i] != tc.expected[i] {
				t.Errorf("splitCommand(%q): expected %v, got %v", tc.input, tc.expected, parts)
				break
			}
		}
	}
}

func TestSplitCommandUnbalanced(t *testing.T) {
	if _, err := splitCommand(`insert "1`); err == nil {
		t.Error("Expected error for an unbalanced quote, got nil")
	}
}

func TestQuoteCommandRoundTrip(t *testing.T) {
	tests := [][]string{
		{"7"},
		{"passion fruit"},
		{"it's"},
		{`back\slash`, "semi;colon"},
		{"a|b", "<tag>"},
	}

	for _, args := range tests {
		line := quoteCommand("distance", args...)
		parts, err := splitCommand(line)
		if err != nil {
			t.Errorf("splitCommand(%q) returned error: %v", line, err)
			continue
		}
		want := append([]string{"distance"}, args...)
		if !reflect.DeepEqual(parts, want) {
			t.Errorf("round trip of %q through %q gave %q", args, line, parts)
		}
	}
}

func TestParseIntKey(t *testing.T) {
	if k, err := parseIntKey("-42"); err != nil || k != -42 {
		t.Errorf("parseIntKey(-42) = %d, %v", k, err)
	}
	if _, err := parseIntKey("4.2"); err == nil {
		t.Error("Expected error for 4.2, got nil")
	}
}

func TestNewExecutor(t *testing.T) {
	for _, kt := range []string{keyTypeInt, keyTypeString} {
		if _, err := newExecutor(kt, plainConfig()); err != nil {
			t.Errorf("newExecutor(%q) returned error: %v", kt, err)
		}
	}

	if _, err := newExecutor("float", plainConfig()); !errors.Is(err, errUnknownKeyType) {
		t.Errorf("newExecutor(float) error = %v; want %v", err, errUnknownKeyType)
	}

	// a nil config falls back to the defaults
	if _, err := newExecutor(keyTypeInt, nil); err != nil {
		t.Errorf("newExecutor with nil config returned error: %v", err)
	}
}
