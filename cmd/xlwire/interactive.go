package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/xlcodec/hostmem"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#217346")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#217346"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// entry is one message the inspector can decode: a file or a generated
// sample.
type entry struct {
	name string
	kind string
}

type modelState int

const (
	stateSelect modelState = iota
	stateOpenFile
	stateShowReport
)

type interactiveModel struct {
	err      error
	session  *session
	input    textinput.Model
	view     viewport.Model
	entries  []entry
	cfg      hostmem.Config
	debug    bool
	selected int
	state    modelState
}

type sessionMsg struct {
	err     error
	session *session
}

type reportMsg struct {
	body string
}

func newInteractiveModel(cfg hostmem.Config, files []string, debug bool) *interactiveModel {
	m := &interactiveModel{cfg: cfg, debug: debug, state: stateSelect}
	for _, name := range files {
		m.entries = append(m.entries, entry{name: name, kind: "file"})
	}
	for _, kind := range sampleKinds {
		m.entries = append(m.entries, entry{name: kind, kind: "sample"})
	}

	ti := textinput.New()
	ti.Placeholder = "path/to/message.bin"
	ti.Prompt = "open: "
	ti.Width = 50
	m.input = ti

	m.view = viewport.New(80, 20)
	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.startSession
}

func (m *interactiveModel) startSession() tea.Msg {
	s, err := newSession(context.Background(), m.cfg, m.debug)
	return sessionMsg{session: s, err: err}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.view.Width = msg.Width
		m.view.Height = max(msg.Height-6, 5)

	case sessionMsg:
		m.session, m.err = msg.session, msg.err

	case reportMsg:
		m.view.SetContent(msg.body)
		m.view.GotoTop()
		m.state = stateShowReport

	case tea.KeyMsg:
		if m.state == stateOpenFile {
			return m.updateOpen(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			if m.session != nil {
				m.session.close(context.Background())
			}
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelect && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelect && m.selected < len(m.entries)-1 {
				m.selected++
			}

		case "o":
			if m.state == stateSelect {
				m.state = stateOpenFile
				m.input.SetValue("")
				return m, m.input.Focus()
			}

		case "enter":
			switch m.state {
			case stateSelect:
				if m.session != nil {
					return m, m.decodeSelected
				}
			case stateShowReport:
				m.state = stateSelect
			}

		case "esc":
			if m.state == stateShowReport {
				m.state = stateSelect
			}
		}
	}

	if m.state == stateShowReport {
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *interactiveModel) updateOpen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.state = stateSelect
		return m, nil
	case "enter":
		path := strings.TrimSpace(m.input.Value())
		m.input.Blur()
		m.state = stateSelect
		if path == "" {
			return m, nil
		}
		m.entries = append([]entry{{name: path, kind: "file"}}, m.entries...)
		m.selected = 0
		return m, m.decodeSelected
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// decodeSelected runs the selected entry through the session and renders
// the report, a hex dump of the message and the heap counters.
func (m *interactiveModel) decodeSelected() tea.Msg {
	e := m.entries[m.selected]
	var (
		data []byte
		err  error
	)
	if e.kind == "file" {
		data, err = os.ReadFile(e.name)
	} else {
		data, err = sample(e.name)
	}
	if err != nil {
		return reportMsg{body: errorStyle.Render(fmt.Sprintf("Error: %v", err))}
	}

	r := m.session.decode(filepath.Base(e.name), data)
	st := m.session.heap.Stats()

	var b strings.Builder
	b.WriteString(r.render(true))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("heap: %d allocs, %d frees, %d outstanding, %d faults",
		st.Allocs, st.Frees, st.Outstanding, st.Faults)))
	b.WriteString("\n\n")
	b.WriteString(hex.Dump(data))
	return reportMsg{body: b.String()}
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.session == nil {
		return "Creating host arena..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("xlwire"))
	b.WriteString(" wire message inspector\n\n")

	switch m.state {
	case stateSelect, stateOpenFile:
		for i, e := range m.entries {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + e.name))
			} else {
				b.WriteString("  " + e.name)
			}
			b.WriteString(" " + kindStyle.Render("("+e.kind+")"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.state == stateOpenFile {
			b.WriteString(m.input.View())
			b.WriteString("\n")
			b.WriteString(helpStyle.Render("enter decode • esc cancel"))
		} else {
			b.WriteString(helpStyle.Render("↑/↓ select • enter decode • o open file • q quit"))
		}

	case stateShowReport:
		b.WriteString(m.view.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • enter back • q quit"))
	}

	return b.String()
}

func runInteractive(cfg hostmem.Config, files []string, debug bool) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errors.New("interactive mode needs a terminal")
	}
	p := tea.NewProgram(newInteractiveModel(cfg, files, debug), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
