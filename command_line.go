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
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

const (
	keyTypeInt    = "int"
	keyTypeString = "string"
)

// splitCommand splits a session command or dataset line into words.
func splitCommand(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", line, err)
	}
	return args, nil
}

// quoteCommand joins name and args into a line that splitCommand turns
// back into the same words.
func quoteCommand(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	for _, a := range args {
		parts = append(parts, quoteWord(a))
	}
	return strings.Join(parts, " ")
}

func quoteWord(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n'\"\\$`|&;<>()") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func parseIntKey(s string) (int, error) {
	k, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid int key %q", s)
	}
	return k, nil
}

func parseStringKey(s string) (string, error) {
	return s, nil
}

// newExecutor builds a session whose keys are parsed as keyType.
func newExecutor(keyType string, cfg *Config) (Executor, error) {
	switch keyType {
	case keyTypeInt:
		return NewSession(parseIntKey, cfg), nil
	case keyTypeString:
		return NewSession(parseStringKey, cfg), nil
	default:
		return nil, fmt.Errorf("%w %q (want %s or %s)", errUnknownKeyType, keyType, keyTypeInt, keyTypeString)
	}
}
