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
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/constraints"

	"github.com/cybrota/avlkv/avl"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errUnknownKeyType = errors.New("unknown key type")
	errUsage          = errors.New("usage")
	errQuit           = errors.New("quit")
)

// Executor runs session commands without exposing the key type.
type Executor interface {
	Exec(line string) (string, error)
	Load(entries []DatasetEntry, progress io.Writer) (LoadStats, error)
}

type sessionCommand struct {
	Name  string
	Args  string
	Usage string
}

var sessionCommands = []sessionCommand{
	{"insert", "KEY [VALUE...]", "insert a pair, existing keys are left untouched"},
	{"search", "KEY", "print the value stored under KEY"},
	{"distance", "KEY1 KEY2", "edges between two keys, -1 if either is missing"},
	{"depth", "KEY", "edges between the root and KEY"},
	{"keys", "", "keys in ascending order"},
	{"values", "", "values in ascending key order"},
	{"heights", "", "node heights in ascending key order"},
	{"inorder", "", "(key,value,height) triples"},
	{"tree", "", "draw the tree on its side"},
	{"show", "", "inorder or tree, depending on display.tree_view"},
	{"size", "", "number of nodes"},
	{"height", "", "height of the tree, -1 when empty"},
	{"check", "", "verify ordering, balance and heights"},
	{"copy", "", "rebuild the tree by pre-order reinsertion and compare"},
	{"clear", "", "remove every node"},
	{"yank", "", "copy the keys to the clipboard"},
	{"help", "", "list commands"},
	{"quit", "", "leave the shell"},
}

// Session owns one tree together with its key filter and distance cache.
// It is not safe for concurrent use.
type Session[K constraints.Ordered] struct {
	tree      *avl.Tree[K, string]
	parseKey  func(string) (K, error)
	filter    *keyFilter
	distances *cache.Cache
	printer   *Printer
	treeView  bool

	// writeClipboard is replaced in tests
	writeClipboard func(string) error
}

func NewSession[K constraints.Ordered](parseKey func(string) (K, error), cfg *Config) *Session[K] {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Session[K]{
		tree:           avl.New[K, string](),
		parseKey:       parseKey,
		filter:         newKeyFilter(cfg.Filter.ExpectedKeys, cfg.Filter.FalsePositiveRate),
		distances:      NewDistanceCache(cfg.Cache.DistanceTTL, cfg.Cache.CleanupInterval),
		printer:        NewPrinter(NewStyles(cfg.Display.Color)),
		treeView:       cfg.Display.TreeView,
		writeClipboard: clipboard.WriteAll,
	}
}

// Tree exposes the underlying tree.
func (s *Session[K]) Tree() *avl.Tree[K, string] {
	return s.tree
}

func (s *Session[K]) insert(key K, value string) bool {
	if !s.tree.Insert(key, value) {
		return false
	}
	s.filter.Add(fmt.Sprint(key))
	s.distances.Flush()
	return true
}

func (s *Session[K]) search(key K) (string, bool) {
	if !s.filter.MayContain(fmt.Sprint(key)) {
		log.Debug().Str("key", fmt.Sprint(key)).Msg("key filter miss")
		return "", false
	}
	v := s.tree.Search(key)
	if v == nil {
		return "", false
	}
	return *v, true
}

func (s *Session[K]) distance(k1, k2 K) int {
	if !s.filter.MayContain(fmt.Sprint(k1)) || !s.filter.MayContain(fmt.Sprint(k2)) {
		log.Debug().Str("k1", fmt.Sprint(k1)).Str("k2", fmt.Sprint(k2)).Msg("key filter miss")
		return -1
	}

	cacheKey := distanceCacheKey(k1, k2)
	if d, ok := GetDistance(s.distances, cacheKey); ok {
		log.Debug().Str("pair", cacheKey).Int("distance", d).Msg("distance cache hit")
		return d
	}
	d := s.tree.Distance(k1, k2)
	CacheDistance(s.distances, cacheKey, d)
	return d
}

func (s *Session[K]) clear() {
	s.tree.Clear()
	s.filter.Reset()
	s.distances.Flush()
}

// Exec runs one command line and returns what it printed.
func (s *Session[K]) Exec(line string) (string, error) {
	args, err := splitCommand(line)
	if err != nil {
		return "", err
	}
	if len(args) == 0 {
		return "", nil
	}

	name, args := strings.ToLower(args[0]), args[1:]
	switch name {
	case "insert", "add":
		if len(args) < 1 {
			return "", usageError(name)
		}
		key, err := s.parseKey(args[0])
		if err != nil {
			return "", err
		}
		if !s.insert(key, strings.Join(args[1:], " ")) {
			return fmt.Sprintf("%v already present, ignored", key), nil
		}
		return fmt.Sprintf("inserted %v", key), nil

	case "search", "get":
		key, err := s.oneKey(name, args)
		if err != nil {
			return "", err
		}
		v, ok := s.search(key)
		if !ok {
			return fmt.Sprintf("%v not found", key), nil
		}
		return v, nil

	case "distance", "dist":
		if len(args) != 2 {
			return "", usageError(name)
		}
		k1, err := s.parseKey(args[0])
		if err != nil {
			return "", err
		}
		k2, err := s.parseKey(args[1])
		if err != nil {
			return "", err
		}
		return strconv.Itoa(s.distance(k1, k2)), nil

	case "depth":
		key, err := s.oneKey(name, args)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(s.tree.Depth(key)), nil

	case "keys":
		return renderSlice(s.tree.InorderKeys()), nil
	case "values":
		return renderSlice(s.tree.InorderValues()), nil
	case "heights":
		return renderSlice(s.tree.InorderHeights()), nil
	case "inorder":
		return renderInorder(s.printer, s.tree), nil
	case "tree":
		return renderTree(s.printer, s.tree), nil
	case "show":
		return s.Show(), nil
	case "size":
		return strconv.Itoa(s.tree.Size()), nil
	case "height":
		return strconv.Itoa(s.tree.Height()), nil

	case "check":
		if err := s.tree.Verify(); err != nil {
			return "", err
		}
		log.Debug().Int("size", s.tree.Size()).Msg("invariants hold")
		return fmt.Sprintf("ok: %d nodes, height %d", s.tree.Size(), s.tree.Height()), nil

	case "copy":
		return s.copyReport(), nil

	case "clear":
		n := s.tree.Size()
		s.clear()
		return fmt.Sprintf("cleared %d nodes", n), nil

	case "yank":
		keys := s.tree.InorderKeys()
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprint(k)
		}
		if err := s.writeClipboard(strings.Join(parts, " ")); err != nil {
			return "", fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		return fmt.Sprintf("📋 copied %d keys to clipboard", len(keys)), nil

	case "help":
		return commandsHelp(), nil
	case "quit", "exit":
		return "", errQuit
	}
	return "", fmt.Errorf("%w %q, try help", errUnknownCommand, name)
}

// Show renders the tree the way display.tree_view asks for.
func (s *Session[K]) Show() string {
	if s.treeView {
		return renderTree(s.printer, s.tree)
	}
	return renderInorder(s.printer, s.tree)
}

func (s *Session[K]) oneKey(name string, args []string) (K, error) {
	if len(args) != 1 {
		var zero K
		return zero, usageError(name)
	}
	return s.parseKey(args[0])
}

func (s *Session[K]) copyReport() string {
	dup := s.tree.Copy()
	same := slices.Equal(s.tree.InorderKeys(), dup.InorderKeys()) &&
		slices.Equal(s.tree.InorderValues(), dup.InorderValues()) &&
		slices.Equal(s.tree.InorderHeights(), dup.InorderHeights())
	return fmt.Sprintf("copied %d nodes, identical traversals: %t", dup.Size(), same)
}

func usageError(name string) error {
	for _, c := range sessionCommands {
		if c.Name == name {
			return fmt.Errorf("%w: %s %s", errUsage, c.Name, c.Args)
		}
	}
	return fmt.Errorf("%w: %s", errUsage, name)
}

func commandsHelp() string {
	var b strings.Builder
	for _, c := range sessionCommands {
		fmt.Fprintf(&b, "  %-24s %s\n", strings.TrimSpace(c.Name+" "+c.Args), c.Usage)
	}
	return strings.TrimRight(b.String(), "\n")
}
