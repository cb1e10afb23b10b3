package project

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simple_duration/duration"
	"simple_duration/internal/timelog"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestCreateAndGet(t *testing.T) {
	repo := newTestRepository(t)

	created, err := repo.Create("writing", duration.FromMinutes(25))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "writing", got.Name)
	assert.Equal(t, duration.FromMinutes(25), got.Budget)
	assert.False(t, got.Running)
	assert.True(t, got.Elapsed.IsZero())

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
}

func TestUpdate(t *testing.T) {
	repo := newTestRepository(t)

	p, err := repo.Create("writing", duration.FromMinutes(25))
	require.NoError(t, err)

	p.Name = "editing"
	p.Budget = duration.FromHMS(1, 30, 0)
	p.Running = true
	p.Elapsed = duration.FromSeconds(90)
	require.NoError(t, repo.Update(p))

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "editing", got.Name)
	assert.Equal(t, duration.FromMinutes(90), got.Budget)
	assert.True(t, got.Running)
	assert.Equal(t, duration.FromSeconds(90), got.Elapsed)
}

func TestDelete(t *testing.T) {
	repo := newTestRepository(t)

	p, err := repo.Create("writing", duration.FromMinutes(25))
	require.NoError(t, err)
	require.NoError(t, repo.Delete(p.ID))

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStopAllTimers(t *testing.T) {
	repo := newTestRepository(t)

	p, err := repo.Create("writing", duration.FromMinutes(25))
	require.NoError(t, err)
	p.Running = true
	require.NoError(t, repo.Update(p))

	require.NoError(t, repo.StopAllTimers())

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.False(t, got.Running)
}

func TestLogs(t *testing.T) {
	repo := newTestRepository(t)

	p, err := repo.Create("writing", duration.FromMinutes(25))
	require.NoError(t, err)

	stoppedAt := time.Now().Truncate(time.Second)
	startedAt := stoppedAt.Add(-90 * time.Second)
	span, ok := duration.Between(startedAt, stoppedAt)
	require.True(t, ok)

	log := &timelog.TimeLog{
		ProjectID: p.ID,
		StartedAt: startedAt,
		StoppedAt: stoppedAt,
		Duration:  span,
		Tag:       "draft",
	}
	require.NoError(t, repo.CreateLog(log))
	assert.NotZero(t, log.ID)

	logs, err := repo.GetLogsByProject(p.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, duration.FromSeconds(90), logs[0].Duration)
	assert.Equal(t, "draft", logs[0].Tag)
	assert.True(t, logs[0].StartedAt.Equal(startedAt))

	all, err := repo.GetAllLogs()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "writing", all[0].ProjectName)
	assert.Equal(t, duration.FromSeconds(90), all[0].Log.Duration)
}

func TestParseBudget(t *testing.T) {
	// Plain numbers are minutes.
	d, err := ParseBudget("25")
	require.NoError(t, err)
	assert.Equal(t, duration.FromMinutes(25), d)

	// Clock form.
	d, err = ParseBudget("01:30:00")
	require.NoError(t, err)
	assert.Equal(t, duration.FromMinutes(90), d)

	_, err = ParseBudget("soon")
	assert.ErrorIs(t, err, duration.ErrInvalidFormat)

	_, err = ParseBudget("-5")
	assert.Error(t, err)
}
