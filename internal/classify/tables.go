package classify

import "regexp"

// Locomotive class prefixes. First letter is gauge/traction (W = broad gauge,
// Y = metre gauge), second is traction or duty, remainder narrows the duty.
var engineClassPrefixes = []string{
	"wcam", "wcg", "wcm", "wam", "wap", "wag",
	"wdg", "wdm", "wdp", "wds", "ydm", "yam",
}

// engineClassRe captures a class prefix plus its series designation
// ("WAP-7", "wdm 3a", "WAG9H").
var engineClassRe = regexp.MustCompile(`(?i)\b(wcam|wcg|wcm|wam|wap|wag|wdg|wdm|wdp|wds|ydm|yam)[ _-]?([0-9]+[a-z]*)\b`)

// Multiple-unit family designations. These never cross-match with discrete
// locomotive classes.
var muFamilyRe = regexp.MustCompile(`(?i)\b(memu|demu|emu|dmu|mmu)\b`)

var electricClasses = map[string]struct{}{
	"wap": {}, "wag": {}, "wam": {}, "wcam": {}, "wcm": {}, "wcg": {}, "yam": {},
}

var dieselClasses = map[string]struct{}{
	"wdm": {}, "wdp": {}, "wdg": {}, "wds": {}, "ydm": {},
}

var electricFamilies = map[string]struct{}{
	"emu": {}, "memu": {}, "mmu": {},
}

var dieselFamilies = map[string]struct{}{
	"dmu": {}, "demu": {},
}

var passengerClasses = map[string]struct{}{
	"wap": {}, "wdp": {},
}

var freightClasses = map[string]struct{}{
	"wag": {}, "wdg": {}, "wcg": {},
}

// Coach class codes, longest-first so e.g. "accc" wins over "cc".
var coachTypeRe = regexp.MustCompile(`(?i)\b(accc|eog|slr|1a|2a|3a|3e|2s|sl|gs|cc|ec|pc)\b`)

var coachKeywordTypes = map[string]string{
	"sleeper":   "sl",
	"general":   "gs",
	"chair":     "cc",
	"pantry":    "pc",
	"executive": "ec",
	"generator": "eog",
}

// Freight wagon codes grouped by family; matched longest-first.
var freightCodes = []string{
	"boxnhl", "boxnha", "boxnhs", "boxncr", "boxnlb", "boxnm1", "boxnm2", "boxnr", "boxng", "boxn",
	"bcnhl", "bcna", "bcne", "bcnh", "bcnl", "bccnr", "bccw", "bcn",
	"btpgln", "btpn", "btap", "btcs", "btaln", "btfln", "btmn",
	"blca", "blcb", "blc", "bfns", "bfkn", "bfki", "bfat", "bfr",
	"bobrnhs", "bobrn", "bobr", "bobyn", "boby",
	"brna", "brn", "brd", "brs", "bru",
	"nmgc", "nmg", "vvn",
}

var freightKeywords = []string{
	"tanker", "tank", "hopper", "gondola", "flat", "container",
	"coal", "ore", "ballast", "cement", "coil", "timber",
}

var cabooseRe = regexp.MustCompile(`(?i)\b(caboose|bvzi|bvzc|brakevan|brake[ _-]?van|guardvan|guard[ _-]?van|slr)\b`)

var parcelRe = regexp.MustCompile(`(?i)\b(hpcv|hcpv|parcel|mail|luggage|vvn)\b`)

// Container operator marks. Matching one both buckets the wagon as container
// stock and records the operator for strict-type comparison.
var containerVendors = []string{"concor", "apl", "gatimaan", "maersk"}

var carbodyRe = regexp.MustCompile(`(?i)\b(lhb|icf)\b`)

// Named train services; a shared hint is worth a minor scoring bonus only.
var setHints = []string{
	"vandebharat", "vande", "train18", "rajdhani", "shatabdi", "janshatabdi",
	"duronto", "garibrath", "humsafar", "tejas", "gatiman", "antyodaya",
	"utkrisht", "doubledecker", "samparkkranti", "yuva",
}

var passengerKeywordRe = regexp.MustCompile(`(?i)\b(passenger|coach|ac|seater)\b`)

var freightKeywordRe = regexp.MustCompile(`(?i)\b(freight|goods|wagon)\b`)

// Pseudo-reference shapes: ancillary sound/effect sub-objects that ride along
// in consists but are not rolling stock.
var pseudoRe = regexp.MustCompile(`(?i)\b(ai[ _-]?horn|horn|sound|whistle|smoke|effect)\b`)
