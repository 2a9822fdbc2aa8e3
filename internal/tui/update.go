package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages (required by tea.Model interface)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ScenarioLoadedMsg:
		m.setForm(msg.Input)
		m.err = nil
		m.statusMsg = "loaded " + m.scenarioPath
		return m, calculateCmd(m.calcEngine, msg.Input)

	case ScenarioSavedMsg:
		m.statusMsg = "saved " + msg.Path
		return m, nil

	case CalculationCompleteMsg:
		m.computing = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.schedule = msg.Schedule
		m.baseline = msg.Baseline
		return m, nil

	case ErrorMsg:
		m.computing = false
		m.err = msg.Err
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "down":
		m.cycleFocus(1)
		return m, nil

	case "shift+tab", "up":
		m.cycleFocus(-1)
		return m, nil

	case "enter":
		input, err := m.parseForm()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.statusMsg = ""
		m.computing = true
		return m, calculateCmd(m.calcEngine, input)

	case "ctrl+s":
		input, err := m.parseForm()
		if err != nil {
			m.err = err
			return m, nil
		}
		path := m.scenarioPath
		if path == "" {
			path = "scenario.yaml"
			m.scenarioPath = path
		}
		return m, saveScenarioCmd(m.parser, input, path)
	}

	return m.updateFocusedInput(msg)
}

func (m *Model) cycleFocus(direction int) {
	m.inputs[m.focused].Blur()
	m.focused = (m.focused + direction + fieldCount) % fieldCount
	m.inputs[m.focused].Focus()
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}
