package internal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simple_duration/duration"
	"simple_duration/internal/timelog"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m, err := NewModel(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	return m
}

func TestAddProject(t *testing.T) {
	m := newTestModel(t)

	require.NoError(t, m.AddProject("writing", duration.FromMinutes(25)))
	require.Len(t, m.Projects, 1)
	assert.Equal(t, 0, m.SelectedIndex)
	assert.Equal(t, duration.FromMinutes(25), m.Projects[0].Budget)
	assert.NotNil(t, m.Timers[m.Projects[0].ID])
}

func TestUpdateProject(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.AddProject("writing", duration.FromMinutes(25)))

	p := m.SelectedProject()
	require.NotNil(t, p)
	p.Budget = duration.FromHours(1)
	require.NoError(t, m.UpdateProject(p))

	assert.Equal(t, duration.FromHours(1), m.Projects[0].Budget)
}

func TestDeleteProject(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.AddProject("writing", duration.FromMinutes(25)))
	require.NoError(t, m.AddProject("editing", duration.FromMinutes(10)))

	id := m.Projects[0].ID
	require.NoError(t, m.DeleteProject(id))

	require.Len(t, m.Projects, 1)
	assert.Equal(t, "editing", m.Projects[0].Name)
	assert.NotContains(t, m.Timers, id)
	assert.Less(t, m.SelectedIndex, len(m.Projects))
}

func TestStopAllTimersLogsSessions(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.AddProject("writing", duration.FromMinutes(25)))

	p := m.Projects[0]
	m.Timers[p.ID].Start()
	p.Running = true
	m.SessionStarts[p.ID] = time.Now().Add(-90 * time.Second)

	m.StopAllTimers()

	assert.False(t, p.Running)
	assert.False(t, m.Timers[p.ID].Running())
	require.Len(t, m.TimeLogs[p.ID], 1)
	logged := m.TimeLogs[p.ID][0]
	assert.GreaterOrEqual(t, logged.Duration.Seconds(), uint64(90))
	assert.Empty(t, logged.Tag)
	assert.NotContains(t, m.SessionStarts, p.ID)
}

func TestEndSessionWithoutStart(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.AddProject("writing", duration.FromMinutes(25)))

	// No recorded session start: falls back to a zero-length span
	// instead of fabricating one.
	log := m.endSession(m.Projects[0])
	assert.True(t, log.Duration.IsZero())
}

func TestSaveLogPrepends(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.AddProject("writing", duration.FromMinutes(25)))
	p := m.Projects[0]

	now := time.Now()
	m.saveLog(&timelog.TimeLog{
		ProjectID: p.ID,
		StartedAt: now.Add(-time.Minute),
		StoppedAt: now,
		Duration:  duration.FromSeconds(60),
		Tag:       "first",
	})
	m.saveLog(&timelog.TimeLog{
		ProjectID: p.ID,
		StartedAt: now.Add(-30 * time.Second),
		StoppedAt: now,
		Duration:  duration.FromSeconds(30),
		Tag:       "second",
	})

	logs := m.TimeLogs[p.ID]
	require.Len(t, logs, 2)
	assert.Equal(t, "second", logs[0].Tag)
	assert.NotZero(t, logs[0].ID)
}
