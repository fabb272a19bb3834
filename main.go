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
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	asciiLogo := `
 █████╗ ██╗   ██╗██╗     ██╗  ██╗██╗   ██╗
██╔══██╗██║   ██║██║     ██║ ██╔╝██║   ██║
███████║██║   ██║██║     █████╔╝ ██║   ██║
██╔══██║╚██╗ ██╔╝██║     ██╔═██╗ ╚██╗ ██╔╝
██║  ██║ ╚████╔╝ ███████╗██║  ██╗ ╚████╔╝
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝  ╚═╝  ╚═══╝
Self-balancing ordered key/value store for the terminal [Version: %s%s%s]

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var (
		configPath string
		keyType    string
		logLevel   string
		treeView   bool
		cfg        *Config
	)

	var rootCmd = &cobra.Command{
		Use:     "avlkv",
		Version: version,
		Long:    asciiLogo,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = LoadConfig(configPath)
			if keyType != "" {
				cfg.Keys.Type = keyType
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			if err := setupLogger(cfg.Log.Level, os.Stderr); err != nil {
				return err
			}
			InitializeColors(cfg.Display.Color)
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the explorer with an empty tree
			exec, _, err := openSession(cfg, "", nil)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to start session")
			}
			if err := runExplorer(exec, cfg); err != nil {
				log.Fatal().Err(err).Msg("Explorer failed")
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/"+configFileName+")")
	rootCmd.PersistentFlags().StringVar(&keyType, "keys", "", "key type: int or string (overrides keys.type)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "trace, debug, info, warn or error (overrides log.level)")

	var cmdLoad = &cobra.Command{
		Use:   "load FILE",
		Short: "Insert a dataset and report size, height and invariants",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Load reads a text or YAML dataset into a fresh tree`),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			exec, stats, err := openSession(cfg, args[0], os.Stderr)
			if err != nil {
				log.Fatal().Err(err).Msg("Error loading dataset")
			}
			if err := loadReport(os.Stdout, exec, stats); err != nil {
				log.Fatal().Err(err).Msg("Tree failed verification")
			}
		},
	}

	var cmdShow = &cobra.Command{
		Use:   "show FILE",
		Short: "Print the in-order triples or draw the tree",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			exec, _, err := openSession(cfg, args[0], nil)
			if err != nil {
				log.Fatal().Err(err).Msg("Error loading dataset")
			}
			line := "show"
			if treeView {
				line = "tree"
			}
			out, err := exec.Exec(line)
			if err != nil {
				log.Fatal().Err(err).Msg("Show failed")
			}
			fmt.Println(out)
		},
	}
	cmdShow.Flags().BoolVar(&treeView, "tree", false, "draw the tree instead of the in-order triples")

	var cmdSearch = &cobra.Command{
		Use:   "search FILE KEY",
		Short: "Print the value stored under KEY",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			runOneShot(cfg, args[0], "search", args[1:]...)
		},
	}

	var cmdDistance = &cobra.Command{
		Use:   "distance FILE KEY1 KEY2",
		Short: "Print the number of edges between two keys",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			runOneShot(cfg, args[0], "distance", args[1:]...)
		},
	}

	var cmdShell = &cobra.Command{
		Use:   "shell [FILE]",
		Short: "Read session commands from stdin",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Shell executes one command per line, type help for the list`),
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			exec, _, err := openSession(cfg, firstArg(args), os.Stderr)
			if err != nil {
				log.Fatal().Err(err).Msg("Error loading dataset")
			}
			if err := runShell(exec, os.Stdin, os.Stdout, os.Stderr, stdinIsTerminal()); err != nil {
				log.Fatal().Err(err).Msg("Error reading commands")
			}
		},
	}

	var cmdExplore = &cobra.Command{
		Use:   "explore [FILE]",
		Short: "Launch the interactive tree explorer",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			exec, _, err := openSession(cfg, firstArg(args), os.Stderr)
			if err != nil {
				log.Fatal().Err(err).Msg("Error loading dataset")
			}
			if err := runExplorer(exec, cfg); err != nil {
				log.Fatal().Err(err).Msg("Explorer failed")
			}
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlkv usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avlkv CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating it when missing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := displaySettings(os.Stdout, configPath); err != nil {
				log.Fatal().Err(err).Msg("Failed to display settings")
			}
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlkv version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	rootCmd.AddCommand(cmdLoad, cmdShow, cmdSearch, cmdDistance, cmdShell, cmdExplore, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runOneShot loads path and prints the output of a single session command.
func runOneShot(cfg *Config, path, name string, args ...string) {
	exec, _, err := openSession(cfg, path, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading dataset")
	}
	out, err := exec.Exec(quoteCommand(name, args...))
	if err != nil {
		log.Fatal().Err(err).Str("command", name).Msg("Command failed")
	}
	fmt.Println(out)
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
