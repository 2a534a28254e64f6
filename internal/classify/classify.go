// Package classify derives coarse domain attributes from asset identifiers.
// All functions are pure, regex/table-driven, and case-insensitive over the
// concatenation of name and folder. Unrecognized input maps to Unknown or the
// empty string, never to an error: role mismatch is used as a comparability
// filter downstream, not as ground truth.
package classify

import (
	"regexp"
	"strings"
)

// Role is a coarse functional bucket used to filter candidates before scoring.
type Role string

const (
	RoleUnknown   Role = "Unknown"
	RolePassenger Role = "Passenger"
	RoleFreight   Role = "Freight"
	RoleCaboose   Role = "Caboose"
	RoleParcel    Role = "Parcel"
	RoleContainer Role = "Container"
)

// Traction is the power type implied by a locomotive class or family.
type Traction string

const (
	TractionUnknown  Traction = "Unknown"
	TractionElectric Traction = "Electric"
	TractionDiesel   Traction = "Diesel"
)

// EngineAttributes is the structured attribute bundle for a locomotive
// identifier, used by the scorer's guardrails and agreement bonuses.
type EngineAttributes struct {
	Class       string // class prefix, e.g. "wap"
	Series      string // series designation, e.g. "7" or "4b"
	ClassSeries string // combined tag, e.g. "wap7"
	Family      string // multiple-unit family, e.g. "emu"; empty for classed locos
	Traction    Traction
}

// WagonAttributes is the structured attribute bundle for a wagon identifier.
type WagonAttributes struct {
	Stock           string // carbody family: "icf", "lhb", or ""
	Coach           string // coach class code, e.g. "sl"
	Freight         string // freight wagon code, e.g. "boxn"
	ContainerVendor string // container operator, e.g. "concor"
	IsCaboose       bool
	SetHint         string // named train service, e.g. "rajdhani"
}

// separatorRun collapses identifier punctuation into spaces. Regexp \b treats
// underscore as a word character, so "lhb_cc" would otherwise hide its codes.
var separatorRun = regexp.MustCompile(`[_\-.]+`)

func subject(name, folder string) string {
	s := strings.ToLower(name + " " + folder)
	return separatorRun.ReplaceAllString(s, " ")
}

// EngineClass returns the combined class+series tag ("wap7") for a classed
// locomotive, the family tag ("emu") for a multiple unit, or "".
func EngineClass(name, folder string) string {
	s := subject(name, folder)
	if m := engineClassRe.FindStringSubmatch(s); m != nil {
		return strings.ToLower(m[1] + m[2])
	}
	if m := muFamilyRe.FindStringSubmatch(s); m != nil {
		return strings.ToLower(m[1])
	}
	return ""
}

// ParseEngineTokens derives the full engine attribute bundle.
func ParseEngineTokens(name, folder string) EngineAttributes {
	s := subject(name, folder)
	var attrs EngineAttributes
	if m := engineClassRe.FindStringSubmatch(s); m != nil {
		attrs.Class = strings.ToLower(m[1])
		attrs.Series = strings.ToLower(m[2])
		attrs.ClassSeries = attrs.Class + attrs.Series
	}
	if m := muFamilyRe.FindStringSubmatch(s); m != nil {
		attrs.Family = strings.ToLower(m[1])
	}
	attrs.Traction = tractionOf(attrs)
	return attrs
}

func tractionOf(attrs EngineAttributes) Traction {
	if attrs.Family != "" {
		if _, ok := electricFamilies[attrs.Family]; ok {
			return TractionElectric
		}
		if _, ok := dieselFamilies[attrs.Family]; ok {
			return TractionDiesel
		}
		return TractionUnknown
	}
	if _, ok := electricClasses[attrs.Class]; ok {
		return TractionElectric
	}
	if _, ok := dieselClasses[attrs.Class]; ok {
		return TractionDiesel
	}
	return TractionUnknown
}

// EngineRole buckets a locomotive identifier as Passenger, Freight, or Unknown
// from its class or explicit keywords.
func EngineRole(name, folder string) Role {
	attrs := ParseEngineTokens(name, folder)
	if attrs.Family != "" {
		// Multiple units carry passengers
		return RolePassenger
	}
	if _, ok := passengerClasses[attrs.Class]; ok {
		return RolePassenger
	}
	if _, ok := freightClasses[attrs.Class]; ok {
		return RoleFreight
	}
	s := subject(name, folder)
	if passengerKeywordRe.MatchString(s) {
		return RolePassenger
	}
	if freightKeywordRe.MatchString(s) {
		return RoleFreight
	}
	return RoleUnknown
}

// WagonRole buckets a wagon identifier, checking in fixed priority order:
// caboose, parcel, container, multiple-unit, freight code, coach family,
// coach class, generic keywords.
func WagonRole(name, folder string) Role {
	s := subject(name, folder)
	if cabooseRe.MatchString(s) {
		return RoleCaboose
	}
	if parcelRe.MatchString(s) {
		return RoleParcel
	}
	for _, vendor := range containerVendors {
		if strings.Contains(s, vendor) {
			return RoleContainer
		}
	}
	if muFamilyRe.MatchString(s) {
		return RolePassenger
	}
	if freightCodeIn(s) != "" {
		return RoleFreight
	}
	if carbodyRe.MatchString(s) {
		return RolePassenger
	}
	if coachTypeRe.MatchString(s) || coachKeywordIn(s) != "" {
		return RolePassenger
	}
	for _, kw := range freightKeywords {
		if containsToken(s, kw) {
			return RoleFreight
		}
	}
	if passengerKeywordRe.MatchString(s) {
		return RolePassenger
	}
	if freightKeywordRe.MatchString(s) {
		return RoleFreight
	}
	return RoleUnknown
}

// CoachType returns the passenger coach class code or "".
func CoachType(name, folder string) string {
	s := subject(name, folder)
	if m := coachTypeRe.FindStringSubmatch(s); m != nil {
		return strings.ToLower(m[1])
	}
	return coachKeywordIn(s)
}

// ParseWagonTokens derives the full wagon attribute bundle.
func ParseWagonTokens(name, folder string) WagonAttributes {
	s := subject(name, folder)
	attrs := WagonAttributes{
		Coach:     CoachType(name, folder),
		Freight:   freightCodeIn(s),
		IsCaboose: cabooseRe.MatchString(s),
	}
	if m := carbodyRe.FindStringSubmatch(s); m != nil {
		attrs.Stock = strings.ToLower(m[1])
	}
	for _, vendor := range containerVendors {
		if strings.Contains(s, vendor) {
			attrs.ContainerVendor = vendor
			break
		}
	}
	for _, hint := range setHints {
		if strings.Contains(s, hint) {
			attrs.SetHint = hint
			break
		}
	}
	return attrs
}

// IsPseudoReference reports whether a shape names an ancillary sound or effect
// sub-object rather than rolling stock.
func IsPseudoReference(shape string) bool {
	return pseudoRe.MatchString(subject(shape, ""))
}

func freightCodeIn(s string) string {
	for _, code := range freightCodes {
		if containsToken(s, code) {
			return code
		}
	}
	for _, kw := range freightKeywords {
		if containsToken(s, kw) {
			return kw
		}
	}
	return ""
}

func coachKeywordIn(s string) string {
	for kw, code := range coachKeywordTypes {
		if containsToken(s, kw) {
			return code
		}
	}
	return ""
}

// containsToken reports whether s contains word bounded by non-alphanumerics.
// Freight codes are short and prefix-heavy (boxn vs boxnhl), so plain
// substring search would misclassify; the caller passes the longest codes first.
func containsToken(s, word string) bool {
	idx := 0
	for {
		i := strings.Index(s[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		beforeOK := start == 0 || !isAlnum(s[start-1])
		afterOK := end == len(s) || !isAlnum(s[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isAlnum(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b >= 'A' && b <= 'Z'
}
