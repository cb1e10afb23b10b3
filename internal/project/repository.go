package project

import (
	"database/sql"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"simple_duration/duration"
	"simple_duration/internal/timelog"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	repo := &Repository{db: db}
	if err := repo.init(); err != nil {
		return nil, err
	}

	return repo, nil
}

func (r *Repository) init() error {
	projectsQuery := `
	CREATE TABLE IF NOT EXISTS projects (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		budget_seconds INTEGER NOT NULL,
		running INTEGER DEFAULT 0,
		elapsed_seconds INTEGER DEFAULT 0
	)
	`
	if _, err := r.db.Exec(projectsQuery); err != nil {
		return err
	}

	timeLogsQuery := `
	CREATE TABLE IF NOT EXISTS time_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id INTEGER NOT NULL,
		started_at TEXT NOT NULL,
		stopped_at TEXT NOT NULL,
		duration_seconds INTEGER NOT NULL,
		tag TEXT NOT NULL DEFAULT '',
		FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
	)
	`
	_, err := r.db.Exec(timeLogsQuery)
	return err
}

func (r *Repository) GetAll() ([]Project, error) {
	rows, err := r.db.Query("SELECT id, name, budget_seconds, running, elapsed_seconds FROM projects")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		var running int
		if err := rows.Scan(&p.ID, &p.Name, &p.Budget, &running, &p.Elapsed); err != nil {
			return nil, err
		}
		p.Running = running == 1
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *Repository) GetByID(id int64) (*Project, error) {
	var p Project
	var running int
	err := r.db.QueryRow("SELECT id, name, budget_seconds, running, elapsed_seconds FROM projects WHERE id = ?", id).
		Scan(&p.ID, &p.Name, &p.Budget, &running, &p.Elapsed)
	if err != nil {
		return nil, err
	}
	p.Running = running == 1
	return &p, nil
}

func (r *Repository) Create(name string, budget duration.Duration) (*Project, error) {
	result, err := r.db.Exec(
		"INSERT INTO projects (name, budget_seconds, running, elapsed_seconds) VALUES (?, ?, 0, 0)",
		name, budget,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &Project{
		ID:     id,
		Name:   name,
		Budget: budget,
	}, nil
}

func (r *Repository) Update(p *Project) error {
	running := 0
	if p.Running {
		running = 1
	}
	_, err := r.db.Exec(
		"UPDATE projects SET name = ?, budget_seconds = ?, running = ?, elapsed_seconds = ? WHERE id = ?",
		p.Name, p.Budget, running, p.Elapsed, p.ID,
	)
	return err
}

func (r *Repository) Delete(id int64) error {
	_, err := r.db.Exec("DELETE FROM projects WHERE id = ?", id)
	return err
}

func (r *Repository) StopAllTimers() error {
	_, err := r.db.Exec("UPDATE projects SET running = 0")
	return err
}

func (r *Repository) CreateLog(log *timelog.TimeLog) error {
	result, err := r.db.Exec(
		"INSERT INTO time_logs (project_id, started_at, stopped_at, duration_seconds, tag) VALUES (?, ?, ?, ?, ?)",
		log.ProjectID,
		log.StartedAt.Format(time.RFC3339),
		log.StoppedAt.Format(time.RFC3339),
		log.Duration,
		log.Tag,
	)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	log.ID = id
	return nil
}

func (r *Repository) GetLogsByProject(projectID int64) ([]timelog.TimeLog, error) {
	rows, err := r.db.Query(
		"SELECT id, project_id, started_at, stopped_at, duration_seconds, tag FROM time_logs WHERE project_id = ? ORDER BY stopped_at DESC",
		projectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []timelog.TimeLog
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// LogWithProject pairs a TimeLog with the project name it belongs to.
type LogWithProject struct {
	Log         timelog.TimeLog
	ProjectName string
}

func (r *Repository) GetAllLogs() ([]LogWithProject, error) {
	rows, err := r.db.Query(
		`SELECT tl.id, tl.project_id, p.name, tl.started_at, tl.stopped_at, tl.duration_seconds, tl.tag
		 FROM time_logs tl
		 JOIN projects p ON tl.project_id = p.id
		 ORDER BY tl.stopped_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []LogWithProject
	for rows.Next() {
		var lp LogWithProject
		var startedAt, stoppedAt string
		if err := rows.Scan(
			&lp.Log.ID, &lp.Log.ProjectID, &lp.ProjectName,
			&startedAt, &stoppedAt, &lp.Log.Duration, &lp.Log.Tag,
		); err != nil {
			return nil, err
		}
		lp.Log.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		lp.Log.StoppedAt, _ = time.Parse(time.RFC3339, stoppedAt)
		results = append(results, lp)
	}
	return results, rows.Err()
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func scanLog(rows *sql.Rows) (timelog.TimeLog, error) {
	var l timelog.TimeLog
	var startedAt, stoppedAt string
	if err := rows.Scan(&l.ID, &l.ProjectID, &startedAt, &stoppedAt, &l.Duration, &l.Tag); err != nil {
		return timelog.TimeLog{}, err
	}
	l.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
	l.StoppedAt, _ = time.Parse(time.RFC3339, stoppedAt)
	return l, nil
}

// ParseBudget reads a time budget from user input: either a plain
// number of minutes or the "HH:MM:SS" clock form.
func ParseBudget(input string) (duration.Duration, error) {
	if minutes, err := strconv.ParseUint(input, 10, 64); err == nil {
		return duration.FromMinutes(minutes), nil
	}
	return duration.Parse(input)
}
