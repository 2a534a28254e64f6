package normalize

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// TokenSet is a set of semantic tokens. Order is irrelevant; duplicates collapse.
type TokenSet map[string]struct{}

// Add inserts a token, ignoring empties.
func (s TokenSet) Add(tok string) {
	if tok != "" {
		s[tok] = struct{}{}
	}
}

// Has reports whether the set contains tok.
func (s TokenSet) Has(tok string) bool {
	_, ok := s[tok]
	return ok
}

// Overlap returns the number of tokens shared with other.
func (s TokenSet) Overlap(other TokenSet) int {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	n := 0
	for tok := range small {
		if large.Has(tok) {
			n++
		}
	}
	return n
}

// Sorted returns the tokens in lexical order, for logging and tests.
func (s TokenSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for tok := range s {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

var (
	lettersDigits = regexp.MustCompile(`^([a-z]+)([0-9]+)$`)
	digitsLetters = regexp.MustCompile(`^([0-9]+)([a-z]+)$`)
)

// Stop-listed tokens are too generic to count toward the fast-path two-token
// rule; they still participate in overlap scoring.
var stopTokens = map[string]struct{}{
	"wagon": {}, "coach": {}, "train": {}, "pack": {},
	"rake": {}, "set": {}, "new": {}, "old": {}, "v": {},
}

// IsStopToken reports whether tok is too generic for fast-path matching.
func IsStopToken(tok string) bool {
	_, ok := stopTokens[tok]
	return ok
}

// Expander turns identifier strings into expanded token sets. The alias table
// is data-driven and may be overlaid from a user-supplied YAML file.
type Expander struct {
	aliases map[string][]string
}

// NewExpander returns an expander seeded with the built-in alias table.
func NewExpander() *Expander {
	aliases := make(map[string][]string, len(defaultAliases))
	for k, v := range defaultAliases {
		aliases[k] = append([]string(nil), v...)
	}
	return &Expander{aliases: aliases}
}

// MergeOverlay merges user alias entries over the built-in table. User
// synonyms append to existing ones; unknown abbreviations create new entries.
func (e *Expander) MergeOverlay(overlay map[string][]string) {
	for abbr, syns := range overlay {
		abbr = strings.ToLower(strings.TrimSpace(abbr))
		if abbr == "" {
			continue
		}
		seen := make(map[string]struct{})
		for _, s := range e.aliases[abbr] {
			seen[s] = struct{}{}
		}
		for _, s := range syns {
			s = strings.ToLower(strings.TrimSpace(s))
			if s == "" {
				continue
			}
			if _, dup := seen[s]; !dup {
				e.aliases[abbr] = append(e.aliases[abbr], s)
				seen[s] = struct{}{}
			}
		}
	}
}

// Tokenize splits normalized text into a base token set, splits joined
// letter/digit runs, expands domain abbreviations into synonym tokens, and
// finally adds adjacent base-token bigrams as compound tokens.
func (e *Expander) Tokenize(text string) TokenSet {
	base := strings.Fields(Normalize(text))
	set := make(TokenSet, len(base)*3)

	for _, tok := range base {
		set.Add(tok)
		parts := []string{tok}
		if m := lettersDigits.FindStringSubmatch(tok); m != nil {
			set.Add(m[1])
			set.Add(m[2])
			parts = append(parts, m[1])
		} else if m := digitsLetters.FindStringSubmatch(tok); m != nil {
			set.Add(m[1])
			set.Add(m[2])
			parts = append(parts, m[2])
		}
		for _, p := range parts {
			for _, syn := range e.aliases[p] {
				set.Add(syn)
			}
		}
	}

	for i := 0; i+1 < len(base); i++ {
		set.Add(base[i] + "_" + base[i+1])
	}

	return set
}

var defaultExpander = NewExpander()

// Tokenize tokenizes text with the built-in alias table.
func Tokenize(text string) TokenSet {
	return defaultExpander.Tokenize(text)
}

// LoadOverlay reads a YAML alias overlay of the form
//
//	abbrev: [synonym, synonym]
func LoadOverlay(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- operator-supplied config path
	if err != nil {
		return nil, fmt.Errorf("reading alias overlay: %w", err)
	}
	overlay := make(map[string][]string)
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parsing alias overlay %s: %w", path, err)
	}
	return overlay, nil
}
