package project

import "simple_duration/duration"

// Project is a tracked activity with a time budget. Budget and Elapsed
// are whole-second spans.
type Project struct {
	ID      int64
	Name    string
	Budget  duration.Duration
	Running bool
	Elapsed duration.Duration
}

func NewProject(name string, budget duration.Duration) *Project {
	return &Project{
		Name:   name,
		Budget: budget,
	}
}

// Remaining returns the unspent part of the budget. Sub clamps at
// zero, so an overrun project simply reports no time left.
func (p *Project) Remaining() duration.Duration {
	return p.Budget.Sub(p.Elapsed)
}

func (p *Project) IsComplete() bool {
	return p.Elapsed.Compare(p.Budget) >= 0
}
