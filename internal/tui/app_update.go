package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case clipboardResultMsg:
		// Clipboard failures are shown, never propagated.
		if msg.err != nil {
			m.logger.Debug("clipboard copy failed", "err", msg.err)
			m.setFlash(flashError, "copy failed: "+msg.err.Error())
		} else {
			m.setFlash(flashInfo, "Copied: "+msg.text)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.saveUIState()
			return m, tea.Quit
		}
		switch m.mode {
		case modeAdd, modeEdit:
			return m.updateInput(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case modeHelp:
			m.mode = modeBrowse
			return m, nil
		default:
			return m.updateBrowse(msg)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the filter prompt is open, every key belongs to the list.
	if m.list.SettingFilter() {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	m.flash = nil
	switch msg.String() {
	case "q":
		m.saveUIState()
		return m, tea.Quit

	case "a":
		m.mode = modeAdd
		m.input.Reset()
		m.input.Prompt = "Add: "
		cmd := m.input.Focus()
		return m, cmd

	case "e":
		id, ok := m.selectedTaskID()
		if !ok {
			return m, nil
		}
		m.tasks.Edit(id)
		t, _ := m.tasks.Get(id)
		m.mode = modeEdit
		m.input.Prompt = "Edit: "
		m.input.SetValue(formatTaskInput(t))
		m.input.CursorEnd()
		m.refreshList()
		cmd := m.input.Focus()
		return m, cmd

	case "x", " ", "space":
		if id, ok := m.selectedTaskID(); ok {
			m.tasks.Toggle(id)
			m.afterMutation()
		}
		return m, nil

	case "p":
		if id, ok := m.selectedTaskID(); ok {
			m.tasks.TogglePin(id)
			m.afterMutation()
		}
		return m, nil

	case "d":
		if id, ok := m.selectedTaskID(); ok {
			m.confirmID = id
			m.mode = modeConfirmDelete
		}
		return m, nil

	case "s":
		m.tasks.SortByPriority()
		m.afterMutation()
		return m, nil

	case "r":
		m.suggestion = m.gen.Next()
		m.saveUIState()
		return m, nil

	case "c":
		if m.suggestion == "" {
			m.setFlash(flashInfo, "No suggestion yet (press r)")
			return m, nil
		}
		return m, copyCmd(m.copier, m.suggestion)

	case "A":
		if m.suggestion == "" {
			return m, nil
		}
		t := m.tasks.Add(m.suggestion, nil, false)
		m.afterMutation()
		m.selectTaskID(t.ID)
		return m, nil

	case "t":
		m.setDarkMode(!m.darkMode)
		return m, nil

	case "?":
		m.mode = modeHelp
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.mode == modeEdit {
			m.tasks.CancelEditing()
		}
		m.leaveInput()
		m.refreshList()
		return m, nil

	case "enter":
		text, priority := parseTaskInput(m.input.Value())
		var added int64
		if m.mode == modeEdit {
			if id, ok := m.tasks.Editing(); ok {
				m.tasks.SaveEdited(id, text, priority)
			} else {
				m.tasks.CancelEditing()
			}
		} else {
			added = m.tasks.Add(text, priority, false).ID
		}
		m.leaveInput()
		m.afterMutation()
		m.selectTaskID(added)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "y" || msg.String() == "Y" {
		m.tasks.Delete(m.confirmID)
		m.logger.Debug("deleted task", "id", m.confirmID)
		m.afterMutation()
	}
	m.confirmID = 0
	m.mode = modeBrowse
	return m, nil
}

func (m *appModel) leaveInput() {
	m.input.Blur()
	m.input.Reset()
	m.mode = modeBrowse
}

func (m *appModel) afterMutation() {
	m.refreshList()
	m.checkPersisted()
}
