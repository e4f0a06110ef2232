package chain

import (
	"sort"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// ProfanityStage rewrites instead of rejecting: matched dictionary words are
// masked and the message keeps moving down the chain. Matching runs over a
// normalized shadow of the text (lowercased, leet-speak folded, punctuation
// and spacing stripped) so "B.4.d.g.3.r" still hits "badger", while an index
// map points every shadow rune back at its original position for masking.
type ProfanityStage struct {
	base
	machine *goahocorasick.Machine
	mask    rune
}

// NewProfanityStage builds the Aho-Corasick automaton once, over the
// normalized dictionary. An empty dictionary is a configuration mistake.
func NewProfanityStage(dictionary []string, mask rune) (*ProfanityStage, error) {
	if len(dictionary) == 0 {
		return nil, ErrEmptyDictionary
	}

	patterns := make([][]rune, 0, len(dictionary))
	for _, word := range dictionary {
		if folded := foldRunes([]rune(word)); len(folded) > 0 {
			patterns = append(patterns, folded)
		}
	}
	sort.Slice(patterns, func(i, j int) bool {
		return string(patterns[i]) < string(patterns[j])
	})

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	return &ProfanityStage{machine: machine, mask: mask}, nil
}

func (s *ProfanityStage) Handle(m Message) (Message, error) {
	censored, _ := s.Censor(m.Content)
	m.Content = censored
	return s.pass(m)
}

// Censor masks every dictionary hit in text and reports the matched shadow
// words. Spacing and punctuation inside a masked span are overwritten too,
// so the span length always equals what the reader saw.
func (s *ProfanityStage) Censor(text string) (string, []string) {
	original := []rune(text)

	// shadow text plus a map from shadow index to original index
	shadow := make([]rune, 0, len(original))
	backref := make([]int, 0, len(original))
	for i, r := range original {
		folded := deleet(r)
		if isNoise(folded) {
			continue
		}
		shadow = append(shadow, unicode.ToLower(folded))
		backref = append(backref, i)
	}
	if len(shadow) == 0 {
		return text, nil
	}

	terms := s.machine.MultiPatternSearch(shadow, false)
	if len(terms) == 0 {
		return text, nil
	}

	var hits []string
	for _, term := range terms {
		start := term.Pos
		end := start + len(term.Word)
		if start < 0 || end > len(backref) {
			continue
		}
		hits = append(hits, string(term.Word))

		// mask the original span, first matched rune through last
		for i := backref[start]; i <= backref[end-1]; i++ {
			original[i] = s.mask
		}
	}
	return string(original), hits
}

// foldRunes normalizes a whole pattern the same way message text is
// normalized, so dictionary and shadow agree.
func foldRunes(in []rune) []rune {
	out := make([]rune, 0, len(in))
	for _, r := range in {
		folded := deleet(r)
		if isNoise(folded) {
			continue
		}
		out = append(out, unicode.ToLower(folded))
	}
	return out
}

// deleet folds the usual digit/symbol substitutions back onto letters.
func deleet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	case '7':
		return 't'
	default:
		return r
	}
}

// isNoise marks runes that never count during matching.
func isNoise(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
}
