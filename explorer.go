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
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// ExplorerModel is the Bubble Tea state of the interactive explorer.
type ExplorerModel struct {
	ready bool

	input    textinput.Model
	treePane viewport.Model
	helpPane viewport.Model

	exec     Executor
	showHelp bool

	// previously entered commands, oldest first
	history    []string
	historyPos int

	status    string
	statusErr bool

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

func NewExplorerModel(exec Executor, styles *Styles) ExplorerModel {
	ti := textinput.New()
	ti.Placeholder = "insert 42 answer, distance 1 7, help..."
	ti.Prompt = "avl> "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	treePane := viewport.New(0, 0)
	helpPane := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := ExplorerModel{
		input:           ti,
		treePane:        treePane,
		helpPane:        helpPane,
		exec:            exec,
		showHelp:        true,
		styles:          styles,
		glamourRenderer: glamourRenderer,
	}
	m.refreshTree()
	m.renderHelp()
	return m
}

func (m ExplorerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f1":
			m.showHelp = !m.showHelp
			m.updateLayout()
			return m, nil
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			return m.run(line)
		case "up":
			m.recall(-1)
			return m, nil
		case "down":
			m.recall(1)
			return m, nil
		case "pgup", "pgdown":
			m.treePane, cmd = m.treePane.Update(msg)
			return m, cmd
		}
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

// run executes one command. Multi-line output replaces the tree pane until
// the next command, single-line output goes to the status line.
func (m ExplorerModel) run(line string) (tea.Model, tea.Cmd) {
	m.history = append(m.history, line)
	m.historyPos = len(m.history)

	out, err := m.exec.Exec(line)
	if errors.Is(err, errQuit) {
		return m, tea.Quit
	}
	if err != nil {
		m.status = err.Error()
		m.statusErr = true
		return m, nil
	}

	m.statusErr = false
	if strings.Contains(out, "\n") {
		m.status = line
		m.treePane.SetContent(out)
		m.treePane.GotoTop()
		return m, nil
	}
	m.status = out
	m.refreshTree()
	return m, nil
}

func (m *ExplorerModel) recall(step int) {
	if len(m.history) == 0 {
		return
	}
	pos := m.historyPos + step
	if pos < 0 {
		pos = 0
	}
	if pos >= len(m.history) {
		m.historyPos = len(m.history)
		m.input.SetValue("")
		return
	}
	m.historyPos = pos
	m.input.SetValue(m.history[pos])
	m.input.CursorEnd()
}

func (m *ExplorerModel) refreshTree() {
	out, err := m.exec.Exec("tree")
	if err != nil {
		out = err.Error()
	}
	m.treePane.SetContent(out)
}

func (m *ExplorerModel) renderHelp() {
	helpTxt := "# Commands\n\n" + commandsMarkdown()
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(helpTxt); err == nil {
			m.helpPane.SetContent(rendered)
			return
		}
	}
	m.helpPane.SetContent(commandsHelp())
}

func (m *ExplorerModel) paneWidths() (int, int) {
	if !m.showHelp {
		return m.width - 2, 0
	}
	helpWidth := m.width * 4 / 10
	return m.width - helpWidth - 3, helpWidth
}

func (m *ExplorerModel) updateLayout() {
	inputHeight := 3
	paneHeight := m.height - inputHeight - 7
	if paneHeight < 1 {
		paneHeight = 1
	}
	treeWidth, helpWidth := m.paneWidths()

	m.input.Width = m.width - 10
	m.treePane.Width = treeWidth - 2
	m.treePane.Height = paneHeight
	m.helpPane.Width = helpWidth - 2
	m.helpPane.Height = paneHeight
}

func (m ExplorerModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	treeWidth, helpWidth := m.paneWidths()

	treeBox := m.styles.BorderFocused.
		Width(treeWidth).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(" 🌳 Tree "),
			m.treePane.View(),
		))

	panes := treeBox
	if m.showHelp {
		helpBox := m.styles.BorderBlurred.
			Width(helpWidth).
			Render(lipgloss.JoinVertical(
				lipgloss.Left,
				m.styles.Title.Render(" 📖 Commands "),
				m.helpPane.View(),
			))
		panes = lipgloss.JoinHorizontal(lipgloss.Top, treeBox, helpBox)
	}

	inputBox := m.styles.BorderFocused.
		Width(m.width - 2).
		Render(m.styles.InputPrompt.Render(m.input.View()))

	status := m.styles.SuccessMessage.Render(m.status)
	if m.statusErr {
		status = m.styles.ErrorMessage.Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		panes,
		inputBox,
		status,
		m.renderFooter(),
	)
}

func (m ExplorerModel) renderFooter() string {
	keys := []string{"enter", "↑/↓", "pgup/pgdn", "f1", "esc"}
	descs := []string{"run", "history", "scroll", "toggle help", "quit"}

	parts := make([]string, len(keys))
	for i := range keys {
		parts[i] = m.styles.HelpKey.Render(keys[i]) + " " + m.styles.HelpDesc.Render(descs[i])
	}
	return strings.Join(parts, " • ")
}

// runExplorer starts the explorer on exec.
func runExplorer(exec Executor, cfg *Config) error {
	model := NewExplorerModel(exec, NewStyles(cfg.Display.Color))

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
