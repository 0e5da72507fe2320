package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tgedikli/jsonfx/accessor"
	"github.com/tgedikli/jsonfx/cache"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	memberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	thunks   *cache.Thunks
	result   string
	items    []memberItem
	input    textinput.Model
	selected int
	state    modelState
}

// memberItem is one selectable member together with the instance it is
// read from.
type memberItem struct {
	sample *sample
	member accessor.Member
	get    accessor.Getter
	set    accessor.Setter
}

type modelState int

const (
	stateSelectMember modelState = iota
	stateInputValue
	stateShowResult
)

func newInteractiveModel(samples []*sample, thunks *cache.Thunks) (*interactiveModel, error) {
	m := &interactiveModel{
		thunks: thunks,
		state:  stateSelectMember,
	}
	for _, s := range samples {
		for _, mem := range s.members {
			get, err := thunks.Getter(mem)
			if err != nil {
				return nil, err
			}
			set, err := thunks.Setter(mem)
			if err != nil {
				return nil, err
			}
			m.items = append(m.items, memberItem{sample: s, member: mem, get: get, set: set})
		}
	}
	return m, nil
}

type readResultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputValue {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectMember && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectMember && m.selected < len(m.items)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectMember:
				return m, m.readMember

			case stateInputValue:
				return m, m.writeMember

			case stateShowResult:
				m.state = stateSelectMember
				m.result = ""
				m.err = nil
			}

		case "e":
			if m.state == stateSelectMember && m.items[m.selected].set != nil {
				m.prepareInput()
				m.state = stateInputValue
				return m, textinput.Blink
			}

		case "esc":
			switch m.state {
			case stateInputValue, stateShowResult:
				m.state = stateSelectMember
				m.result = ""
				m.err = nil
			}
		}

	case readResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputValue {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) prepareInput() {
	item := m.items[m.selected]
	ti := textinput.New()
	ti.Placeholder = memberType(item.member).String()
	ti.Prompt = memberName(item.member) + ": "
	ti.Width = 40
	if item.get != nil {
		ti.SetValue(editable(item.get(item.sample.instance)))
	}
	ti.Focus()
	m.input = ti
}

func (m *interactiveModel) readMember() tea.Msg {
	item := m.items[m.selected]
	if item.get == nil {
		return readResultMsg{err: fmt.Errorf("%s is not readable", memberName(item.member))}
	}
	return invoke(func() string {
		return formatValue(item.get(item.sample.instance))
	})
}

func (m *interactiveModel) writeMember() tea.Msg {
	item := m.items[m.selected]
	v, err := parseValue(m.input.Value(), memberType(item.member))
	if err != nil {
		return readResultMsg{err: err}
	}
	return invoke(func() string {
		item.set(item.sample.instance, v)
		if item.get == nil {
			return "written"
		}
		return formatValue(item.get(item.sample.instance))
	})
}

// invoke runs a thunk call, turning a panic into an error result.
func invoke(call func() string) (msg tea.Msg) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}
			msg = readResultMsg{err: err}
		}
	}()
	return readResultMsg{result: call()}
}

// editable renders a value the way parseValue reads it back.
func editable(v any) string {
	if ss, ok := v.([]string); ok {
		return strings.Join(ss, ",")
	}
	if s, ok := v.(Status); ok {
		return fmt.Sprint(uint8(s))
	}
	return fmt.Sprint(v)
}

func (m *interactiveModel) View() string {
	if len(m.items) == 0 {
		return "No members to inspect.\n\nPress q to quit."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Thunk Inspector"))
	b.WriteString(" ")
	b.WriteString(fmt.Sprintf("%d thunks compiled", m.thunks.Len()))
	b.WriteString("\n\n")

	item := m.items[m.selected]
	switch m.state {
	case stateSelectMember:
		b.WriteString("Select a member to read:\n\n")
		for i, it := range m.items {
			line := m.formatItem(it)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter read • e write • q quit"))

	case stateInputValue:
		b.WriteString(fmt.Sprintf("Writing %s\n\n", memberStyle.Render(item.sample.name+"."+memberName(item.member))))
		b.WriteString(m.input.View())
		b.WriteString(" ")
		b.WriteString(typeStyle.Render(memberType(item.member).String()))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter write • esc back"))

	case stateShowResult:
		b.WriteString(fmt.Sprintf("%s:\n\n", memberStyle.Render(item.sample.name+"."+memberName(item.member))))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatItem(it memberItem) string {
	access := "-"
	switch {
	case it.get != nil && it.set != nil:
		access = "rw"
	case it.get != nil:
		access = "r"
	case it.set != nil:
		access = "w"
	}
	return fmt.Sprintf("%s.%s %s %s [%s]",
		it.sample.name,
		memberStyle.Render(memberName(it.member)),
		typeStyle.Render(memberType(it.member).String()),
		memberShape(it.member),
		access)
}

func runInteractive(samples []*sample, thunks *cache.Thunks) error {
	model, err := newInteractiveModel(samples, thunks)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
