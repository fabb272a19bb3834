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
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// ANSI escapes used by plain (non-lipgloss) output such as settings.
var (
	Green   = "\033[92m"
	Info    = "\033[96m"
	Warning = "\033[93m"
	Red     = "\033[91m"
	Reset   = "\033[0m"
)

var detectedMode TerminalMode

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, name := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(name)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

// InitializeColors detects the terminal mode and picks matching ANSI escapes.
// With color disabled every escape becomes empty.
func InitializeColors(enabled bool) {
	detectedMode = detectTerminalMode()
	if !enabled {
		Green, Info, Warning, Red, Reset = "", "", "", "", ""
		return
	}
	Green, Info, Warning, Red, Reset = GetANSIColors()
}

// GetANSIColors returns darker escapes for light terminals and brighter
// ones for dark terminals.
func GetANSIColors() (success, info, warning, failure, reset string) {
	if detectedMode == TerminalModeLight {
		success = "\033[32m"
		info = "\033[34m"
		warning = "\033[33m"
		failure = "\033[31m"
	} else {
		success = "\033[92m"
		info = "\033[96m"
		warning = "\033[93m"
		failure = "\033[91m"
	}
	reset = "\033[0m"
	return
}

// Styles holds the lipgloss styles shared by the printer and the explorer.
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	Key            lipgloss.Style
	Value          lipgloss.Style
	Height         lipgloss.Style
	Branch         lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates styles for the detected terminal mode. Plain styles
// are returned when color is off so output stays byte-for-byte stable.
func NewStyles(color bool) *Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return &Styles{
			BorderFocused:  plain.BorderStyle(lipgloss.NormalBorder()),
			BorderBlurred:  plain.BorderStyle(lipgloss.NormalBorder()),
			Title:          plain,
			InputPrompt:    plain,
			HelpKey:        plain,
			HelpDesc:       plain,
			Key:            plain,
			Value:          plain,
			Height:         plain,
			Branch:         plain,
			SuccessMessage: plain,
			ErrorMessage:   plain,
		}
	}

	accent := lipgloss.Color("39")
	muted := lipgloss.Color("243")
	if detectedMode == TerminalModeLight {
		accent = lipgloss.Color("25")
		muted = lipgloss.Color("240")
	}

	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(accent).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(muted),
		Key: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		Value:  lipgloss.NewStyle(),
		Height: lipgloss.NewStyle().Foreground(muted),
		Branch: lipgloss.NewStyle().Foreground(muted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}
