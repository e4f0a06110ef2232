// Package templatemethod fixes an algorithm's skeleton in one place and lets
// implementations fill in the steps. The skeleton here is a package-level
// function, which is the point: in Go the order of steps is not a method a
// subclass could override, it is code nobody gets to touch.
package templatemethod

import (
	"fmt"
	"io"
)

// RoomStats is one room's share of the reporting window.
type RoomStats struct {
	Room     string
	Messages int
	Flagged  int
}

// Summary holds the derived numbers the skeleton computes for every report.
type Summary struct {
	Rooms    int
	Messages int
	Flagged  int
	Busiest  string
}

// Report supplies the two varying steps of the pipeline. Everything between
// them belongs to the skeleton.
type Report interface {
	Collect() ([]RoomStats, error)
	Render(w io.Writer, rooms []RoomStats, sum Summary)
}

// Build is the template method: collect, then summarize, then render,
// always in that order. Summarizing is the fixed middle step; no report
// gets to compute its own totals.
func Build(w io.Writer, r Report) error {
	rooms, err := r.Collect()
	if err != nil {
		return fmt.Errorf("collect: %w", err)
	}
	sum := summarize(rooms)
	r.Render(w, rooms, sum)
	return nil
}

// summarize totals the window and picks the busiest room. Ties keep the
// first room seen, so input order decides.
func summarize(rooms []RoomStats) Summary {
	sum := Summary{Rooms: len(rooms)}
	busiest := -1
	for _, r := range rooms {
		sum.Messages += r.Messages
		sum.Flagged += r.Flagged
		if r.Messages > busiest {
			busiest = r.Messages
			sum.Busiest = r.Room
		}
	}
	return sum
}

// StatsSource is a ready-made Collect step over a fixed slice. Concrete
// reports embed it and only write their Render, the Go rendition of
// inheriting a default step.
type StatsSource struct {
	Rooms []RoomStats
}

func (s StatsSource) Collect() ([]RoomStats, error) {
	return s.Rooms, nil
}
