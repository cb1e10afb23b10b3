package internal

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"simple_duration/duration"
	"simple_duration/internal/project"
	"simple_duration/internal/timelog"
	"simple_duration/internal/timer"
)

type MsgTick struct{}

// defaultBudget is used when the form leaves the budget field blank or
// unparseable.
var defaultBudget = duration.FromMinutes(25)

type Model struct {
	Projects       []*project.Project
	SelectedIndex  int
	ShowAddForm    bool
	ShowEditForm   bool
	EditingProject *project.Project
	FormName       string
	FormBudget     string
	InputFocus     int
	Err            error
	Timers         map[int64]*timer.Timer
	repo           *project.Repository

	// Session tracking for time logs
	SessionStarts map[int64]time.Time // tracks when each project's current session started

	// Tag input state (shown after stopping a timer)
	ShowTagInput bool
	TagInput     string
	PendingLog   *timelog.TimeLog // the log entry waiting for a tag

	// Time logs per project
	TimeLogs map[int64][]timelog.TimeLog

	// All-logs viewer state
	ShowLogView   bool
	LogViewScroll int
	AllLogs       []project.LogWithProject
}

func NewModel(dbPath string) (*Model, error) {
	repo, err := project.NewRepository(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	projectList, err := repo.GetAll()
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	projects := make([]*project.Project, len(projectList))
	for i := range projectList {
		projects[i] = &projectList[i]
	}

	timers := make(map[int64]*timer.Timer)
	sessionStarts := make(map[int64]time.Time)
	for _, p := range projects {
		timers[p.ID] = timer.New()
		if p.Running {
			timers[p.ID].SetElapsed(p.Elapsed)
			timers[p.ID].Start()
			sessionStarts[p.ID] = time.Now()
		}
	}

	// Load time logs for all projects
	timeLogs := make(map[int64][]timelog.TimeLog)
	for _, p := range projects {
		logs, err := repo.GetLogsByProject(p.ID)
		if err == nil {
			timeLogs[p.ID] = logs
		}
	}

	return &Model{
		Projects:      projects,
		Timers:        timers,
		repo:          repo,
		SessionStarts: sessionStarts,
		TimeLogs:      timeLogs,
	}, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MsgTick:
		for _, p := range m.Projects {
			t := m.Timers[p.ID]
			if t.Running() {
				p.Elapsed = t.Elapsed()
			}
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m, nil
	}
	return m, nil
}

func (m *Model) View() string {
	switch {
	case m.ShowTagInput:
		return m.tagInputView()
	case m.ShowLogView:
		return m.allLogsView()
	case m.ShowAddForm:
		return m.formView("Add New Project")
	case m.ShowEditForm:
		return m.formView("Edit Project")
	case len(m.Projects) == 0:
		return m.emptyStateView()
	}
	return m.mainView()
}

func (m *Model) SelectedProject() *project.Project {
	if m.SelectedIndex >= 0 && m.SelectedIndex < len(m.Projects) {
		return m.Projects[m.SelectedIndex]
	}
	return nil
}

func (m *Model) SelectedTimer() *timer.Timer {
	p := m.SelectedProject()
	if p == nil {
		return nil
	}
	return m.Timers[p.ID]
}

func (m *Model) AddProject(name string, budget duration.Duration) error {
	p, err := m.repo.Create(name, budget)
	if err != nil {
		return err
	}
	m.Timers[p.ID] = timer.New()
	m.TimeLogs[p.ID] = nil
	m.Projects = append(m.Projects, p)
	m.SelectedIndex = len(m.Projects) - 1
	return nil
}

func (m *Model) UpdateProject(p *project.Project) error {
	if err := m.repo.Update(p); err != nil {
		return err
	}
	for i, proj := range m.Projects {
		if proj.ID == p.ID {
			m.Projects[i] = p
			break
		}
	}
	return nil
}

func (m *Model) DeleteProject(id int64) error {
	if err := m.repo.Delete(id); err != nil {
		return err
	}
	delete(m.Timers, id)
	delete(m.SessionStarts, id)
	delete(m.TimeLogs, id)
	for i, p := range m.Projects {
		if p.ID == id {
			m.Projects = append(m.Projects[:i], m.Projects[i+1:]...)
			break
		}
	}
	if m.SelectedIndex >= len(m.Projects) {
		m.SelectedIndex = len(m.Projects) - 1
	}
	return nil
}

// endSession closes the current session of p and returns its log entry.
// The recorded span comes from differencing the session's two instants;
// a session whose clock went backwards records a zero span.
func (m *Model) endSession(p *project.Project) *timelog.TimeLog {
	stoppedAt := time.Now()
	startedAt := stoppedAt
	if sa, ok := m.SessionStarts[p.ID]; ok {
		startedAt = sa
		delete(m.SessionStarts, p.ID)
	}

	span, ok := duration.Between(startedAt, stoppedAt)
	if !ok {
		span = duration.Zero()
	}

	return &timelog.TimeLog{
		ProjectID: p.ID,
		StartedAt: startedAt,
		StoppedAt: stoppedAt,
		Duration:  span,
	}
}

func (m *Model) saveLog(log *timelog.TimeLog) {
	m.repo.CreateLog(log)
	m.TimeLogs[log.ProjectID] = append([]timelog.TimeLog{*log}, m.TimeLogs[log.ProjectID]...)
}

// StopAllTimers stops every running timer, logging each session without
// a tag prompt.
func (m *Model) StopAllTimers() {
	for _, p := range m.Projects {
		t := m.Timers[p.ID]
		if !t.Running() {
			continue
		}
		t.Stop()
		p.Elapsed = t.Elapsed()
		p.Running = false
		m.repo.Update(p)
		m.saveLog(m.endSession(p))
	}
}

func (m *Model) Close() error {
	for _, p := range m.Projects {
		t := m.Timers[p.ID]
		if t.Running() {
			t.Stop()
			p.Elapsed = t.Elapsed()
			p.Running = false
			m.repo.CreateLog(m.endSession(p))
			m.repo.Update(p)
		}
	}
	return m.repo.Close()
}
