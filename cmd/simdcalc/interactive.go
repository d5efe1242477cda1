package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/simd128/dispatch"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	opStyle = lipgloss.NewStyle().
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

// visibleRows limits the operation list to a scrolling window.
const visibleRows = 16

type interactiveModel struct {
	err      error
	result   string
	filter   string
	ops      []opInfo
	matches  []int
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
}

type opInfo struct {
	name   string
	params []dispatch.Param
}

type modelState int

const (
	stateSelectOp modelState = iota
	stateInputArgs
	stateShowResult
)

func newInteractiveModel() *interactiveModel {
	reg := dispatch.Default()
	names := reg.Ops()
	ops := make([]opInfo, len(names))
	matches := make([]int, len(names))
	for i, name := range names {
		ops[i] = opInfo{name: name, params: reg.Lookup(name).Params}
		matches[i] = i
	}
	return &interactiveModel{ops: ops, matches: matches, state: stateSelectOp}
}

type callResultMsg struct {
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
			// still a filter character while selecting
			if m.state == stateShowResult {
				return m, tea.Quit
			}
			if m.state == stateSelectOp {
				m.filter += "q"
				m.refilter()
			}

		case "up":
			if m.state == stateSelectOp && m.selected > 0 {
				m.selected--
			}

		case "down":
			if m.state == stateSelectOp && m.selected < len(m.matches)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectOp:
				if len(m.matches) == 0 {
					break
				}
				m.prepareInputs()
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.callOp

			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateSelectOp:
				m.filter = ""
				m.refilter()
			case stateInputArgs:
				m.state = stateSelectOp
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}

		case "backspace":
			if m.state == stateSelectOp && m.filter != "" {
				m.filter = m.filter[:len(m.filter)-1]
				m.refilter()
			}

		default:
			// single printable characters narrow the operation list
			if m.state == stateSelectOp && len(msg.String()) == 1 {
				m.filter += msg.String()
				m.refilter()
			}
		}

	case callResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) refilter() {
	m.matches = m.matches[:0]
	for i, op := range m.ops {
		if strings.Contains(op.name, m.filter) {
			m.matches = append(m.matches, i)
		}
	}
	if m.selected >= len(m.matches) {
		m.selected = 0
	}
}

func (m *interactiveModel) current() opInfo {
	return m.ops[m.matches[m.selected]]
}

func (m *interactiveModel) prepareInputs() {
	op := m.current()
	m.inputs = make([]textinput.Model, len(op.params))
	for i, p := range op.params {
		ti := textinput.New()
		ti.Placeholder = placeholder(p)
		ti.Prompt = fmt.Sprintf("arg%d: ", i)
		ti.Width = 48
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func placeholder(p dispatch.Param) string {
	switch p {
	case dispatch.ParamNumber:
		return "3.5"
	case dispatch.ParamBool:
		return "true"
	case dispatch.ParamLane, dispatch.ParamIndex:
		return "0"
	case dispatch.ParamShift:
		return "1"
	case dispatch.ParamVector:
		return "float32x4:1,2,3,4"
	}
	// concrete vector kinds: show the right number of lanes
	if op := dispatch.Default().Lookup(string(p)); op != nil {
		lanes := make([]string, len(op.Params))
		for i := range lanes {
			if op.Params[i] == dispatch.ParamBool {
				lanes[i] = "false"
			} else {
				lanes[i] = fmt.Sprint(i + 1)
			}
		}
		return strings.Join(lanes, ",")
	}
	return string(p)
}

func (m *interactiveModel) callOp() tea.Msg {
	op := m.current()
	args := make([]any, len(m.inputs))
	for i, input := range m.inputs {
		v, err := parseArg(op.params[i], strings.TrimSpace(input.Value()))
		if err != nil {
			return callResultMsg{err: err}
		}
		args[i] = v
	}

	out, err := dispatch.Call(op.name, args...)
	if err != nil {
		return callResultMsg{err: err}
	}
	return callResultMsg{result: formatResult(out)}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("SIMD Calculator"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectOp:
		if m.filter != "" {
			b.WriteString("Filter: " + m.filter + "\n\n")
		} else {
			b.WriteString("Select an operation:\n\n")
		}

		start := 0
		if m.selected >= visibleRows {
			start = m.selected - visibleRows + 1
		}
		end := start + visibleRows
		if end > len(m.matches) {
			end = len(m.matches)
		}
		for row := start; row < end; row++ {
			op := m.ops[m.matches[row]]
			if row == m.selected {
				b.WriteString(selectedStyle.Render("> " + m.formatOp(op)))
			} else {
				b.WriteString("  " + m.formatOp(op))
			}
			b.WriteString("\n")
		}
		if len(m.matches) == 0 {
			b.WriteString(helpStyle.Render("  no matching operations"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • type to filter • enter call • ctrl+c quit"))

	case stateInputArgs:
		op := m.current()
		b.WriteString(fmt.Sprintf("Calling %s\n\n", opStyle.Render(op.name)))
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(typeStyle.Render(string(op.params[i])))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter call • esc back"))

	case stateShowResult:
		op := m.current()
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", opStyle.Render(op.name)))
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

func (m *interactiveModel) formatOp(op opInfo) string {
	params := make([]string, len(op.params))
	for i, p := range op.params {
		params[i] = typeStyle.Render(string(p))
	}
	return opStyle.Render(op.name) + "(" + strings.Join(params, ", ") + ")"
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
