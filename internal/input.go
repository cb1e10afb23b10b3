package internal

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"simple_duration/duration"
	"simple_duration/internal/project"
)

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ShowTagInput {
		return m.handleTagInput(msg)
	}

	if m.ShowLogView {
		return m.handleLogViewInput(msg)
	}

	if m.ShowAddForm || m.ShowEditForm {
		return m.handleFormInput(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.SelectedIndex > 0 {
			m.SelectedIndex--
		}
	case "down", "j":
		if m.SelectedIndex < len(m.Projects)-1 {
			m.SelectedIndex++
		}
	case "enter":
		m.toggleSelectedTimer()
	case "n":
		m.ShowAddForm = true
		m.FormName = ""
		m.FormBudget = ""
		m.InputFocus = 0
	case "e":
		if p := m.SelectedProject(); p != nil {
			m.ShowEditForm = true
			m.EditingProject = p
			m.FormName = p.Name
			m.FormBudget = p.Budget.Format()
			m.InputFocus = 0
		}
	case "d":
		if p := m.SelectedProject(); p != nil {
			m.DeleteProject(p.ID)
		}
	case "r":
		if p := m.SelectedProject(); p != nil {
			t := m.SelectedTimer()
			t.Reset()
			p.Elapsed = duration.Zero()
			p.Running = false
			delete(m.SessionStarts, p.ID)
			m.repo.Update(p)
		}
	case "l":
		// Open the all-logs viewer
		allLogs, err := m.repo.GetAllLogs()
		if err == nil {
			m.AllLogs = allLogs
		} else {
			m.AllLogs = nil
		}
		m.ShowLogView = true
		m.LogViewScroll = 0
	case "tab":
		m.InputFocus = 1 - m.InputFocus
	}
	return m, nil
}

// toggleSelectedTimer starts the selected project's timer, or stops it
// and opens the tag prompt for the finished session.
func (m *Model) toggleSelectedTimer() {
	p := m.SelectedProject()
	if p == nil {
		return
	}

	t := m.SelectedTimer()
	if t.Running() {
		t.Stop()
		p.Elapsed = t.Elapsed()
		p.Running = false
		m.repo.Update(p)

		m.PendingLog = m.endSession(p)
		m.TagInput = ""
		m.ShowTagInput = true
		return
	}

	// Stop all other timers first (will auto-log them without tag)
	m.StopAllTimers()
	t.SetElapsed(p.Elapsed)
	t.Start()
	p.Running = true
	m.SessionStarts[p.ID] = time.Now()
	m.repo.Update(p)
}

func (m *Model) handleLogViewInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc", "l":
		m.ShowLogView = false
		m.AllLogs = nil
	case "up", "k":
		if m.LogViewScroll > 0 {
			m.LogViewScroll--
		}
	case "down", "j":
		maxScroll := len(m.AllLogs) - 1
		if maxScroll < 0 {
			maxScroll = 0
		}
		if m.LogViewScroll < maxScroll {
			m.LogViewScroll++
		}
	}
	return m, nil
}

func (m *Model) handleTagInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		// Save the log without a tag
		if m.PendingLog != nil {
			m.PendingLog.Tag = ""
			m.saveLog(m.PendingLog)
			m.PendingLog = nil
		}
		m.ShowTagInput = false
		m.TagInput = ""
	case "enter":
		// Save the log with the tag
		if m.PendingLog != nil {
			m.PendingLog.Tag = m.TagInput
			m.saveLog(m.PendingLog)
			m.PendingLog = nil
		}
		m.ShowTagInput = false
		m.TagInput = ""
	case "backspace":
		if len(m.TagInput) > 0 {
			m.TagInput = m.TagInput[:len(m.TagInput)-1]
		}
	default:
		runes := []rune(msg.String())
		if len(runes) == 1 {
			m.TagInput += string(runes[0])
		}
	}
	return m, nil
}

func (m *Model) handleFormInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.closeForm()
	case "enter":
		if m.InputFocus == 0 {
			m.InputFocus = 1
			break
		}
		m.submitForm()
	case "backspace":
		if m.InputFocus == 0 {
			if len(m.FormName) > 0 {
				m.FormName = m.FormName[:len(m.FormName)-1]
			}
		} else {
			if len(m.FormBudget) > 0 {
				m.FormBudget = m.FormBudget[:len(m.FormBudget)-1]
			}
		}
	case "tab", "shift+tab":
		m.InputFocus = 1 - m.InputFocus
	default:
		runes := []rune(msg.String())
		if len(runes) != 1 {
			break
		}
		if m.InputFocus == 0 {
			m.FormName += string(runes[0])
		} else if (runes[0] >= '0' && runes[0] <= '9') || runes[0] == ':' {
			// Budget accepts plain minutes or the HH:MM:SS clock form
			m.FormBudget += string(runes[0])
		}
	}
	return m, nil
}

func (m *Model) submitForm() {
	budget := defaultBudget
	if m.FormBudget != "" {
		if parsed, err := project.ParseBudget(m.FormBudget); err == nil && !parsed.IsZero() {
			budget = parsed
		}
	}

	if m.ShowAddForm {
		m.AddProject(m.FormName, budget)
	} else if m.ShowEditForm && m.EditingProject != nil {
		m.EditingProject.Name = m.FormName
		m.EditingProject.Budget = budget
		if m.EditingProject.Elapsed.Compare(budget) > 0 {
			m.EditingProject.Elapsed = budget
		}
		m.UpdateProject(m.EditingProject)
	}
	m.closeForm()
}

func (m *Model) closeForm() {
	m.ShowAddForm = false
	m.ShowEditForm = false
	m.EditingProject = nil
}
