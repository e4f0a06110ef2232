package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Every entry must run clean and actually narrate something. This is the
// repository's smoke test: a demo that panics or goes silent fails here
// before anyone runs the binary.
func TestAll_EveryDemoRunsAndNarrates(t *testing.T) {
	all := All()
	require.Len(t, all, 16)

	for _, e := range all {
		t.Run(e.Name, func(t *testing.T) {
			req := require.New(t)
			req.NotEmpty(e.Blurb)
			req.NotNil(e.Run)

			var sb strings.Builder
			req.NotPanics(func() { e.Run(&sb) })
			req.Greater(len(sb.String()), 50, "a demo must narrate, not whisper")
		})
	}
}

// Narration is program output, so running a demo twice must produce the
// same bytes. The coupling lesson narrates a timing bucket around a real
// bcrypt call and is the one entry allowed to vary.
func TestAll_NarrationIsRepeatable(t *testing.T) {
	for _, e := range All() {
		if e.Name == "coupling" {
			continue
		}
		t.Run(e.Name, func(t *testing.T) {
			req := require.New(t)

			var first, second strings.Builder
			e.Run(&first)
			e.Run(&second)

			req.Equal(first.String(), second.String())
		})
	}
}

func TestAll_OrderedByFamilyThenName(t *testing.T) {
	req := require.New(t)
	all := All()

	rank := map[Family]int{Behavioral: 0, Creational: 1, Structural: 2, Lesson: 3}
	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		if prev.Family == cur.Family {
			req.Less(prev.Name, cur.Name, "names must sort within a family")
		} else {
			req.Less(rank[prev.Family], rank[cur.Family], "families must keep index order")
		}
	}
}

func TestFind(t *testing.T) {
	req := require.New(t)

	entry, err := Find("singleton")
	req.NoError(err)
	req.Equal("singleton", entry.Name)
	req.Equal(Creational, entry.Family)

	_, err = Find("flyweight")
	req.ErrorIs(err, ErrUnknownDemo)
}

func TestNames_UniqueAndComplete(t *testing.T) {
	req := require.New(t)
	names := Names()
	req.Len(names, len(All()))

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		req.False(seen[n], "duplicate demo name %q", n)
		seen[n] = true
	}
	req.True(seen["proxy"])
	req.True(seen["container"])
}
