// Package consist parses and rewrites asset reference statements inside
// consist files. Only the two reference statements are understood; every other
// line passes through untouched.
package consist

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/openraildev/consistfix/internal/catalog"
)

// Reference is one parsed reference statement.
type Reference struct {
	Kind   catalog.Kind
	Shape  string
	Folder string
	Indent string
}

// Reference keywords for the two recognized kinds.
const (
	engineKeyword = "EngineData"
	wagonKeyword  = "WagonData"
)

// token is either bare (no whitespace, parens, or quotes) or double-quoted.
const tokenPattern = `"[^"]*"|[^\s()"]+`

// refLineRe is the strict grammar used by the resolution pass: keyword, two
// tokens inside parens, nothing else on the line.
var refLineRe = regexp.MustCompile(
	`^(\s*)(EngineData|WagonData)\s*\(\s*(` + tokenPattern + `)\s+(` + tokenPattern + `)\s*\)\s*$`)

// looseRefRe is the relaxed grammar used by the canonicalization pass: it
// tolerates missing whitespace and trailing content after the closing paren.
var looseRefRe = regexp.MustCompile(
	`^(\s*)(EngineData|WagonData)\s*\(\s*(` + tokenPattern + `)[\s,]+(` + tokenPattern + `)\s*\)\s*(.*)$`)

func unquote(tok string) string {
	if len(tok) >= 2 && strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`) {
		return tok[1 : len(tok)-1]
	}
	return tok
}

// assignTokens maps the two raw tokens onto shape and folder. When exactly one
// token is quoted, the quoted token is the shape: the canonical form quotes
// the name and leaves the folder bare, and that rule holds in either order.
// Otherwise the first token is the shape, per the read grammar.
func assignTokens(first, second string) (shape, folder string) {
	firstQuoted := strings.HasPrefix(first, `"`)
	secondQuoted := strings.HasPrefix(second, `"`)
	if secondQuoted && !firstQuoted {
		return unquote(second), unquote(first)
	}
	if firstQuoted && !secondQuoted {
		return unquote(first), unquote(second)
	}
	return unquote(first), unquote(second)
}

func kindForKeyword(keyword string) catalog.Kind {
	if keyword == engineKeyword {
		return catalog.KindEngine
	}
	return catalog.KindWagon
}

// ParseReference parses a line under the strict reference grammar.
func ParseReference(line string) (Reference, bool) {
	m := refLineRe.FindStringSubmatch(line)
	if m == nil {
		return Reference{}, false
	}
	shape, folder := assignTokens(m[3], m[4])
	return Reference{
		Kind:   kindForKeyword(m[2]),
		Shape:  shape,
		Folder: folder,
		Indent: m[1],
	}, true
}

// parseLoose parses a line under the relaxed grammar, returning any trailing
// content after the closing paren.
func parseLoose(line string) (Reference, string, bool) {
	m := looseRefRe.FindStringSubmatch(line)
	if m == nil {
		return Reference{}, "", false
	}
	shape, folder := assignTokens(m[3], m[4])
	return Reference{
		Kind:   kindForKeyword(m[2]),
		Shape:  shape,
		Folder: folder,
		Indent: m[1],
	}, m[5], true
}

// CanonicalLine renders a reference in the single canonical form: bare folder,
// quoted shape, one space around the parenthesized contents.
func CanonicalLine(ref Reference) string {
	keyword := wagonKeyword
	if ref.Kind == catalog.KindEngine {
		keyword = engineKeyword
	}
	return fmt.Sprintf(`%s%s ( %s "%s" )`, ref.Indent, keyword, ref.Folder, ref.Shape)
}
