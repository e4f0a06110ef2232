package strategy

import (
	"regexp"
	"strings"
)

var spaceRun = regexp.MustCompile(`\s{2,}`)

// Moderator is the context: it knows which words are banned and where they
// sit in a message, but delegates what a hit becomes to its strategy.
type Moderator struct {
	strategy CensorStrategy
	banned   *regexp.Regexp
}

// NewModerator compiles a whole-word, case-insensitive matcher over the
// dictionary. An empty dictionary yields a moderator that passes everything
// through.
func NewModerator(strategy CensorStrategy, dictionary ...string) *Moderator {
	m := &Moderator{strategy: strategy}
	if len(dictionary) == 0 {
		return m
	}
	quoted := make([]string, 0, len(dictionary))
	for _, word := range dictionary {
		quoted = append(quoted, regexp.QuoteMeta(word))
	}
	m.banned = regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
	return m
}

// SetStrategy swaps the redaction policy. This is the move the pattern
// exists for: the moderator's matching logic never changes.
func (m *Moderator) SetStrategy(s CensorStrategy) {
	m.strategy = s
}

// Strategy reports the current policy's name.
func (m *Moderator) Strategy() string {
	return m.strategy.Name()
}

// Moderate rewrites every banned word using the current strategy. When a
// redaction deletes a word outright, the leftover double space is collapsed.
func (m *Moderator) Moderate(text string) string {
	if m.banned == nil {
		return text
	}
	cutSeam := false
	out := m.banned.ReplaceAllStringFunc(text, func(match string) string {
		replacement := m.strategy.Redact(match)
		if replacement == "" {
			cutSeam = true
		}
		return replacement
	})
	if cutSeam {
		out = strings.TrimSpace(spaceRun.ReplaceAllString(out, " "))
	}
	return out
}
