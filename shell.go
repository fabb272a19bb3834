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

	"github.com/mattn/go-isatty"
)

const shellPrompt = "avl> "

// openSession creates an executor for cfg.Keys.Type and, when path is not
// empty, loads the dataset into it. Progress goes to progress only when
// load.show_progress is on.
func openSession(cfg *Config, path string, progress io.Writer) (Executor, LoadStats, error) {
	exec, err := newExecutor(cfg.Keys.Type, cfg)
	if err != nil {
		return nil, LoadStats{}, err
	}
	if path == "" {
		return exec, LoadStats{}, nil
	}

	entries, err := ReadDataset(path)
	if err != nil {
		return nil, LoadStats{}, err
	}
	if !cfg.Load.ShowProgress {
		progress = nil
	}
	stats, err := exec.Load(entries, progress)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return exec, stats, nil
}

// loadReport runs the summary commands printed after "avlkv load".
func loadReport(w io.Writer, exec Executor, stats LoadStats) error {
	fmt.Fprintf(w, "%s✔ %s%s\n", Green, stats, Reset)
	if stats.Duplicates > 0 {
		fmt.Fprintf(w, "%s! duplicate keys keep their first value%s\n", Warning, Reset)
	}
	for _, line := range []string{"size", "height", "check"} {
		out, err := exec.Exec(line)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s%-7s%s %s\n", Info, line, Reset, out)
	}
	return nil
}

// runShell executes one session command per input line until EOF or quit.
// Command errors are reported on errOut and do not stop the shell.
func runShell(exec Executor, in io.Reader, out, errOut io.Writer, prompt bool) error {
	scanner := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(out, shellPrompt)
		}
		if !scanner.Scan() {
			break
		}

		result, err := exec.Exec(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(errOut, "%serror:%s %v\n", Red, Reset, err)
			continue
		}
		if result != "" {
			fmt.Fprintln(out, result)
		}
	}
	if prompt {
		fmt.Fprintln(out)
	}
	return scanner.Err()
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
