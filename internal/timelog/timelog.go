package timelog

import (
	"time"

	"simple_duration/duration"
)

// TimeLog represents one recorded timer session for a project. Duration
// is the whole-second span between the two instants.
type TimeLog struct {
	ID        int64
	ProjectID int64
	StartedAt time.Time
	StoppedAt time.Time
	Duration  duration.Duration
	Tag       string
}
