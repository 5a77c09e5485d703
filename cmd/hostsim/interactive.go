package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/asyncload/dsmap"
	"github.com/wippyai/asyncload/errors"
	"github.com/wippyai/asyncload/hostsim"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	fieldKey = iota
	fieldValue
	fieldEvent
)

type interactiveModel struct {
	err      error
	host     *hostsim.Host
	current  *dsmap.Map
	status   string
	inputs   []textinput.Model
	focusIdx int
	kind     hostsim.ValueKind
}

func newInteractiveModel() *interactiveModel {
	host := hostsim.New()
	m := &interactiveModel{
		host:    host,
		current: dsmap.New(host.Registry()),
	}

	labels := []struct{ prompt, placeholder string }{
		{"key: ", "key1"},
		{"value: ", "21.37"},
		{"event: ", strconv.Itoa(int(dsmap.Social))},
	}
	m.inputs = make([]textinput.Model, len(labels))
	for i, l := range labels {
		ti := textinput.New()
		ti.Prompt = l.prompt
		ti.Placeholder = l.placeholder
		ti.Width = 40
		if i == fieldKey {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.host.Close()
			return m, tea.Quit

		case "tab":
			m.inputs[m.focusIdx].Blur()
			m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
			m.inputs[m.focusIdx].Focus()
			return m, nil

		case "ctrl+t":
			if m.kind == hostsim.KindNumber {
				m.kind = hostsim.KindString
			} else {
				m.kind = hostsim.KindNumber
			}
			return m, nil

		case "enter":
			m.addEntry()
			return m, nil

		case "ctrl+d":
			m.dispatch()
			return m, nil

		case "ctrl+n":
			m.current = dsmap.New(m.host.Registry())
			m.status = fmt.Sprintf("created map %d", m.current.ID())
			m.err = nil
			return m, nil
		}
	}

	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *interactiveModel) addEntry() {
	key := m.inputs[fieldKey].Value()
	raw := m.inputs[fieldValue].Value()

	var (
		ok  bool
		err error
	)
	switch m.kind {
	case hostsim.KindString:
		ok, err = m.current.AddString(key, raw)
	default:
		v, perr := strconv.ParseFloat(raw, 64)
		if perr != nil {
			m.err = errors.InvalidInput(errors.PhaseMarshal, fmt.Sprintf("value %q is not a number", raw))
			return
		}
		ok, err = m.current.AddDouble(key, v)
	}

	m.err = err
	switch {
	case err != nil:
		m.status = ""
	case ok:
		m.status = fmt.Sprintf("added %s", key)
		m.inputs[fieldKey].SetValue("")
		m.inputs[fieldValue].SetValue("")
	default:
		m.status = fmt.Sprintf("host rejected %s (missing map or duplicate key)", key)
	}
}

func (m *interactiveModel) dispatch() {
	code := float64(dsmap.DefaultEventType)
	if s := m.inputs[fieldEvent].Value(); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			m.err = errors.InvalidInput(errors.PhaseEvent, fmt.Sprintf("event %q is not a number", s))
			return
		}
		code = v
	}

	event := dsmap.EventTypeFromDouble(code)
	if err := m.current.Dispatch(event); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.status = fmt.Sprintf("dispatched map %d to %s", m.current.ID(), event)
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Host Simulator"))
	b.WriteString("\n\n")

	if m.current.Dispatched() {
		b.WriteString(fmt.Sprintf("Map %d dispatched, press ctrl+n for a new one\n\n", m.current.ID()))
	} else {
		b.WriteString(fmt.Sprintf("Map %d\n", m.current.ID()))
		entries, _ := m.host.Entries(m.current.ID())
		b.WriteString(formatStyled(entries))
		b.WriteString("\n")
	}

	for _, input := range m.inputs {
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	b.WriteString("type: ")
	b.WriteString(typeStyle.Render(m.kind.String()))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	} else if m.status != "" {
		b.WriteString(resultStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	events := m.host.Events()
	if len(events) > 0 {
		b.WriteString("Dispatched events:\n")
		for i := len(events) - 1; i >= 0 && i >= len(events)-5; i-- {
			ev := events[i]
			b.WriteString(fmt.Sprintf("  %s (map %d)\n", keyStyle.Render(ev.Type.String()), ev.MapID))
			b.WriteString(indent(formatStyled(ev.Entries), "  "))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab next field • enter add • ctrl+t toggle type • ctrl+d dispatch • ctrl+n new map • esc quit"))
	return b.String()
}

func formatStyled(entries []hostsim.Entry) string {
	if len(entries) == 0 {
		return helpStyle.Render("  (empty)") + "\n"
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteString("  ")
		b.WriteString(keyStyle.Render(e.Key))
		b.WriteString(": ")
		if e.Value.Kind == hostsim.KindString {
			b.WriteString(strconv.Quote(e.Value.Text))
		} else {
			b.WriteString(strconv.FormatFloat(e.Value.Number, 'g', -1, 64))
		}
		b.WriteString(" ")
		b.WriteString(typeStyle.Render(e.Value.Kind.String()))
		b.WriteString("\n")
	}
	return b.String()
}

func indent(s, prefix string) string {
	lines := strings.SplitAfter(s, "\n")
	var b strings.Builder
	for _, l := range lines {
		if l != "" {
			b.WriteString(prefix)
			b.WriteString(l)
		}
	}
	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
