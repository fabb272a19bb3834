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
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
)

// LoadStats summarises one bulk load.
type LoadStats struct {
	Added      int
	Duplicates int
	Elapsed    time.Duration
}

func (ls LoadStats) String() string {
	return fmt.Sprintf("%d added, %d duplicates ignored in %s", ls.Added, ls.Duplicates, ls.Elapsed.Round(time.Microsecond))
}

func newLoadBar(total int, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("🌳 Inserting keys..."),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(w)
		}),
	)
}

// Load inserts entries in file order. A nil progress writer disables the
// progress bar. Keys that fail to parse abort the load; the pairs inserted
// before stay in the tree.
func (s *Session[K]) Load(entries []DatasetEntry, progress io.Writer) (LoadStats, error) {
	var stats LoadStats
	start := time.Now()

	var bar *progressbar.ProgressBar
	if progress != nil && len(entries) > 0 {
		bar = newLoadBar(len(entries), progress)
	}

	for _, e := range entries {
		key, err := s.parseKey(e.Key)
		if err != nil {
			if bar != nil {
				_ = bar.Exit()
			}
			return stats, fmt.Errorf("line %d: %w", e.Line, err)
		}
		if s.insert(key, e.Value) {
			stats.Added++
		} else {
			stats.Duplicates++
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	stats.Elapsed = time.Since(start)
	log.Info().
		Int("added", stats.Added).
		Int("duplicates", stats.Duplicates).
		Int("height", s.tree.Height()).
		Dur("elapsed", stats.Elapsed).
		Msg("dataset loaded")
	return stats, nil
}
