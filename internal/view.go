package internal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"simple_duration/internal/timelog"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			Align(lipgloss.Center)

	projectItemStyle = lipgloss.NewStyle().
				Padding(0, 1)

	projectItemSelectedStyle = lipgloss.NewStyle().
					Foreground(lipgloss.Color("170")).
					Background(lipgloss.Color("235")).
					Padding(0, 1)

	timerDisplayStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("69")).
				Bold(true)

	timerRunningStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("82")).
				Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 0)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170"))

	inputInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	logHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	logTagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170"))

	logTimeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	runningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")).
			Bold(true)
)

func (m *Model) emptyStateView() string {
	return lipgloss.Place(
		80, 24,
		lipgloss.Center, lipgloss.Center,
		titleStyle.Render("Time Tracker")+"\n\n"+
			inactiveStyle.Render("No projects yet. Press 'n' to add one."),
	)
}

func (m *Model) mainView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Width(80).Render("Time Tracker"))
	sb.WriteString("\n\n")

	boxes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.projectListView(),
		"  ",
		m.projectDetailView(),
	)
	sb.WriteString(boxes)
	sb.WriteString("\n\n")
	sb.WriteString(helpStyle.Render("Navigate: Up/Down | Start/Stop: Enter | New: n | Edit: e | Delete: d | Reset: r | Logs: l | Quit: q"))

	return sb.String()
}

func (m *Model) projectListView() string {
	var sb strings.Builder

	sb.WriteString("Projects\n\n")

	for i, p := range m.Projects {
		t := m.Timers[p.ID]
		running := ""
		if t.Running() {
			running = " ●"
		}

		line := fmt.Sprintf("%s %s%s", p.Name, p.Remaining().Format(), running)

		if i == m.SelectedIndex {
			sb.WriteString(projectItemSelectedStyle.Render(line))
		} else {
			sb.WriteString(projectItemStyle.Render(inactiveStyle.Render(line)))
		}
		sb.WriteString("\n")
	}

	return boxStyle.Width(28).Height(15).Render(sb.String())
}

func (m *Model) projectDetailView() string {
	p := m.SelectedProject()
	if p == nil {
		return boxStyle.Width(45).Height(15).Render("Select a project")
	}

	t := m.Timers[p.ID]
	remaining := p.Remaining().Format()

	var timerStr string
	if t.Running() {
		timerStr = timerRunningStyle.Render(remaining)
	} else {
		timerStr = timerDisplayStyle.Render(remaining)
	}

	status := "Stopped"
	statusStyle := inactiveStyle
	if t.Running() {
		status = "Running"
		statusStyle = runningStyle
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Project: %s\n\n", p.Name))
	sb.WriteString(timerStr)
	sb.WriteString(fmt.Sprintf("\n\n%s\n", statusStyle.Render(status)))
	sb.WriteString(fmt.Sprintf("Budget: %s\n", p.Budget.Format()))

	// Show recent time logs
	logs := m.TimeLogs[p.ID]
	if len(logs) > 0 {
		sb.WriteString("\n")
		sb.WriteString(logHeaderStyle.Render("Recent Logs"))
		sb.WriteString("\n")
		displayCount := min(len(logs), 5)
		for _, l := range logs[:displayCount] {
			sb.WriteString(m.formatLogEntry(l))
			sb.WriteString("\n")
		}
	}

	return boxStyle.Width(45).Height(15).Render(sb.String())
}

// formView renders the add/edit project form. Which one it is only
// changes the title; the fields are identical.
func (m *Model) formView(title string) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Width(80).Render(title))
	sb.WriteString("\n\n")

	nameLabel := formLabel("Project Name: ", m.InputFocus == 0)
	budgetLabel := formLabel("Budget (min or HH:MM:SS): ", m.InputFocus == 1)

	nameValue := m.FormName
	if m.InputFocus == 0 {
		nameValue = inputStyle.Render(nameValue + "█")
	}

	budgetValue := m.FormBudget
	if m.InputFocus == 1 {
		budgetValue = inputStyle.Render(budgetValue + "█")
	}

	// Show which field is currently focused in the help line to make tab behavior explicit
	focusName := "Project Name"
	if m.InputFocus == 1 {
		focusName = "Budget"
	}
	helpText := fmt.Sprintf("Tab: Switch (Focused: %s) | Enter: Save | Esc: Cancel", focusName)

	form := fmt.Sprintf("%s%s\n\n%s%s\n\n%s",
		nameLabel, nameValue,
		budgetLabel, budgetValue,
		helpStyle.Render(helpText),
	)

	return lipgloss.Place(
		80, 24,
		lipgloss.Center, lipgloss.Center,
		boxStyle.Width(50).Render(form),
	)
}

// formLabel adds a visible focus marker so it's obvious which field is
// active.
func formLabel(text string, focused bool) string {
	marker := "  "
	if focused {
		marker = "→ "
	}
	label := marker + text
	if focused {
		return inputStyle.Render(label)
	}
	return inputInactiveStyle.Render(label)
}

func (m *Model) tagInputView() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Width(80).Render("Log Time Session"))
	sb.WriteString("\n\n")

	durationStr := ""
	if m.PendingLog != nil {
		durationStr = m.PendingLog.Duration.Format()
	}

	label := inputStyle.Render("→ Tag: ")
	value := inputStyle.Render(m.TagInput + "█")

	form := fmt.Sprintf(
		"%s\n\n%s%s\n\n%s",
		fmt.Sprintf("Session duration: %s", timerDisplayStyle.Render(durationStr)),
		label, value,
		helpStyle.Render("Enter: Save | Esc: Skip (no tag)"),
	)

	return lipgloss.Place(
		80, 24,
		lipgloss.Center, lipgloss.Center,
		boxStyle.Width(50).Render(form),
	)
}

func (m *Model) allLogsView() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Width(80).Render("All Logs"))
	sb.WriteString("\n\n")

	if len(m.AllLogs) == 0 {
		sb.WriteString(inactiveStyle.Render("No logged sessions yet."))
	} else {
		const pageSize = 15
		end := min(m.LogViewScroll+pageSize, len(m.AllLogs))
		for _, lp := range m.AllLogs[m.LogViewScroll:end] {
			name := logHeaderStyle.Render(fmt.Sprintf("%-15s", lp.ProjectName))
			sb.WriteString(fmt.Sprintf("%s %s\n", name, m.formatLogEntry(lp.Log)))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("Scroll: Up/Down | Back: Esc"))

	return boxStyle.Width(78).Render(sb.String())
}

func (m *Model) formatLogEntry(l timelog.TimeLog) string {
	timeStr := logTimeStyle.Render(l.StoppedAt.Format("Jan 02 15:04"))
	tag := ""
	if l.Tag != "" {
		tag = " " + logTagStyle.Render("["+l.Tag+"]")
	}
	return fmt.Sprintf("  %s  %s%s", timeStr, l.Duration.Format(), tag)
}
