package templatemethod

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// spyReport records the order the skeleton calls its steps in and what the
// skeleton computed between them.
type spyReport struct {
	calls []string
	got   Summary
}

func (s *spyReport) Collect() ([]RoomStats, error) {
	s.calls = append(s.calls, "collect")
	return []RoomStats{
		{Room: "a", Messages: 10, Flagged: 1},
		{Room: "b", Messages: 30, Flagged: 2},
	}, nil
}

func (s *spyReport) Render(_ io.Writer, _ []RoomStats, sum Summary) {
	s.calls = append(s.calls, "render")
	s.got = sum
}

func TestBuild_RunsStepsInOrder(t *testing.T) {
	req := require.New(t)
	spy := &spyReport{}

	req.NoError(Build(io.Discard, spy))

	req.Equal([]string{"collect", "render"}, spy.calls)
	req.Equal(Summary{Rooms: 2, Messages: 40, Flagged: 3, Busiest: "b"}, spy.got)
}

type failingReport struct{}

func (failingReport) Collect() ([]RoomStats, error) {
	return nil, errors.New("stats backend down")
}

func (failingReport) Render(io.Writer, []RoomStats, Summary) {
	panic("render must not run when collect fails")
}

func TestBuild_StopsOnCollectError(t *testing.T) {
	err := Build(io.Discard, failingReport{})
	require.ErrorContains(t, err, "collect: stats backend down")
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name  string
		rooms []RoomStats
		want  Summary
	}{
		{
			name: "totals and busiest",
			rooms: []RoomStats{
				{Room: "x", Messages: 5, Flagged: 1},
				{Room: "y", Messages: 9, Flagged: 0},
			},
			want: Summary{Rooms: 2, Messages: 14, Flagged: 1, Busiest: "y"},
		},
		{
			name: "tie keeps the first room seen",
			rooms: []RoomStats{
				{Room: "x", Messages: 7},
				{Room: "y", Messages: 7},
			},
			want: Summary{Rooms: 2, Messages: 14, Busiest: "x"},
		},
		{
			name:  "empty window",
			rooms: nil,
			want:  Summary{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, summarize(tt.rooms))
		})
	}
}

func TestTextReport_Render(t *testing.T) {
	req := require.New(t)
	var sb strings.Builder
	report := TextReport{StatsSource{Rooms: []RoomStats{
		{Room: "general", Messages: 412, Flagged: 3},
	}}}

	req.NoError(Build(&sb, report))

	out := sb.String()
	req.Contains(out, "MODERATION REPORT")
	req.Contains(out, "general")
	req.Contains(out, "rooms: 1  messages: 412  flagged: 3  busiest: general")
}

func TestMarkdownReport_Render(t *testing.T) {
	req := require.New(t)
	var sb strings.Builder
	report := MarkdownReport{StatsSource{Rooms: []RoomStats{
		{Room: "general", Messages: 412, Flagged: 3},
		{Room: "random", Messages: 266, Flagged: 0},
	}}}

	req.NoError(Build(&sb, report))

	out := sb.String()
	req.Contains(out, "# Moderation report")
	req.Contains(out, "| room | messages | flagged |")
	req.Contains(out, "| general | 412 | 3 |")
	req.Contains(out, "**678** messages across **2** rooms, **3** flagged. Busiest room: `general`.")
}

func TestDemo_Runs(t *testing.T) {
	var sb strings.Builder
	Demo(&sb)

	out := sb.String()
	require.Contains(t, out, "--- TextReport ---")
	require.Contains(t, out, "--- MarkdownReport ---")
	require.Contains(t, out, "busiest: general")
	require.Contains(t, out, "Busiest room: `general`.")
}
