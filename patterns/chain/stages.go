package chain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"
)

// DropEmptyStage rejects blank messages before anything heavier runs.
type DropEmptyStage struct {
	base
}

func NewDropEmptyStage() *DropEmptyStage {
	return &DropEmptyStage{}
}

func (s *DropEmptyStage) Handle(m Message) (Message, error) {
	if strings.TrimSpace(m.Content) == "" {
		return Message{}, ErrMessageEmpty
	}
	return s.pass(m)
}

// LengthStage caps content length in runes, not bytes.
type LengthStage struct {
	base
	limit int
}

func NewLengthStage(limit int) *LengthStage {
	return &LengthStage{limit: limit}
}

func (s *LengthStage) Handle(m Message) (Message, error) {
	if n := utf8.RuneCountInString(m.Content); n > s.limit {
		return Message{}, fmt.Errorf("%w: %d runes over a limit of %d", ErrMessageTooLong, n, s.limit)
	}
	return s.pass(m)
}

// LanguageStage keeps only messages whose detected language sits in the
// allow-list (ISO 639-1 codes, e.g. "en"). Detection is statistical, so the
// stage is meant for full sentences; one-word messages are waved through.
type LanguageStage struct {
	base
	allowed map[string]struct{}
}

func NewLanguageStage(isoCodes ...string) *LanguageStage {
	allowed := make(map[string]struct{}, len(isoCodes))
	for _, code := range isoCodes {
		allowed[strings.ToLower(code)] = struct{}{}
	}
	return &LanguageStage{allowed: allowed}
}

func (s *LanguageStage) Handle(m Message) (Message, error) {
	if !strings.Contains(strings.TrimSpace(m.Content), " ") {
		// too short to trust the detector
		return s.pass(m)
	}

	info := whatlanggo.Detect(m.Content)
	code := info.Lang.Iso6391()
	if _, ok := s.allowed[code]; !ok {
		return Message{}, fmt.Errorf("%w: detected %q", ErrLanguageRejected, code)
	}
	return s.pass(m)
}
