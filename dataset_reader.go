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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var errEmptyKey = errors.New("empty key")

// DatasetEntry is one raw key/value pair read from a dataset file. Keys are
// parsed later, once the key type is known.
type DatasetEntry struct {
	Key   string
	Value string
	Line  int
}

type yamlPair struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

type yamlDataset struct {
	Entries []yaml.Node `yaml:"entries"`
}

// ReadDataset reads path as YAML when it ends in .yaml/.yml and as a line
// oriented text file otherwise.
func ReadDataset(path string) ([]DatasetEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("dataset file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, err
		}
		return parseYAMLDataset(data)
	default:
		return parseTextDataset(file)
	}
}

// parseTextDataset reads one pair per line: the first word is the key and
// the remaining words, joined by single spaces, the value. Quoting follows
// shell rules. Blank lines and lines starting with '#' are skipped.
func parseTextDataset(r io.Reader) ([]DatasetEntry, error) {
	var entries []DatasetEntry

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields, err := splitCommand(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if len(fields) == 0 || fields[0] == "" {
			return nil, fmt.Errorf("line %d: %w", lineNo, errEmptyKey)
		}

		entries = append(entries, DatasetEntry{
			Key:   fields[0],
			Value: strings.Join(fields[1:], " "),
			Line:  lineNo,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// parseYAMLDataset expects
//
//	entries:
//	  - key: 10
//	    value: ten
func parseYAMLDataset(data []byte) ([]DatasetEntry, error) {
	var doc yamlDataset
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML dataset: %w", err)
	}

	entries := make([]DatasetEntry, 0, len(doc.Entries))
	for i := range doc.Entries {
		n := &doc.Entries[i]
		var pair yamlPair
		if err := n.Decode(&pair); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		if pair.Key == "" {
			return nil, fmt.Errorf("line %d: %w", n.Line, errEmptyKey)
		}
		entries = append(entries, DatasetEntry{Key: pair.Key, Value: pair.Value, Line: n.Line})
	}
	return entries, nil
}
