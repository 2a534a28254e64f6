// Package normalize canonicalizes asset identifier strings and projects them
// onto a shared token space. Raw consist identifiers are inconsistent
// abbreviations of a small closed vocabulary; normalization plus alias
// expansion is what makes overlap scoring robust to naming variance.
package normalize

import (
	"regexp"
	"strings"
)

// Vendor and source prefixes stripped only when anchored at the start of the
// raw identifier. Each form carries its separator so that a normalized string
// (which contains no separators) is never re-stripped.
var vendorPrefixes = []string{
	"ir_", "ir-", "ir ",
	"msts_", "msts-", "msts ",
	"or_", "or-", "or ",
	"tsre_", "tsre-", "tsre ",
	"openrails_", "openrails-", "openrails ",
}

var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize strips anchored vendor prefixes, collapses non-alphanumeric runs
// into single spaces, lowercases, and trims. Idempotent; empty or
// whitespace-only input yields "".
func Normalize(text string) string {
	s := text
	for {
		stripped := false
		lower := strings.ToLower(s)
		for _, p := range vendorPrefixes {
			if strings.HasPrefix(lower, p) {
				s = s[len(p):]
				stripped = true
				break
			}
		}
		if !stripped {
			break
		}
	}
	s = strings.ToLower(s)
	s = nonAlnumRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// WithoutFolderTokens removes every token of the normalized folder name from
// the normalized name and rejoins the remainder. Used by the scorer to detect
// names that are exact matches once folder decoration is ignored.
func WithoutFolderTokens(name, folder string) string {
	folderTokens := make(map[string]struct{})
	for _, t := range strings.Fields(Normalize(folder)) {
		folderTokens[t] = struct{}{}
	}
	var kept []string
	for _, t := range strings.Fields(Normalize(name)) {
		if _, drop := folderTokens[t]; !drop {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, " ")
}
