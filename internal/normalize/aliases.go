package normalize

// defaultAliases maps domain abbreviations onto semantic synonym tokens.
// Vocabulary follows Indian Railways rolling-stock conventions: locomotive
// class prefixes (WAP = broad-gauge AC passenger, WDG = broad-gauge diesel
// goods, ...), multiple-unit families, coach class codes, and freight wagon
// codes. The table is data, not logic, so it can be tested exhaustively and
// overlaid from user config.
var defaultAliases = map[string][]string{
	// Multiple-unit families
	"emu":  {"electric", "passenger", "unit"},
	"memu": {"electric", "passenger", "unit"},
	"dmu":  {"diesel", "passenger", "unit"},
	"demu": {"diesel", "passenger", "unit"},
	"mmu":  {"passenger", "unit"},

	// Locomotive class prefixes
	"wap":  {"electric", "passenger"},
	"wag":  {"electric", "freight"},
	"wam":  {"electric", "mixed"},
	"wcam": {"electric", "mixed"},
	"wcm":  {"electric", "mixed"},
	"wcg":  {"electric", "freight"},
	"wdm":  {"diesel", "mixed"},
	"wdp":  {"diesel", "passenger"},
	"wdg":  {"diesel", "freight"},
	"wds":  {"diesel", "shunter"},
	"ydm":  {"diesel", "mixed"},
	"yam":  {"electric", "mixed"},

	// Coach class codes
	"1a":   {"ac", "passenger"},
	"2a":   {"ac", "passenger"},
	"3a":   {"ac", "passenger"},
	"3e":   {"ac", "passenger"},
	"2s":   {"seater", "passenger"},
	"sl":   {"sleeper", "passenger"},
	"gs":   {"general", "passenger"},
	"cc":   {"chair", "passenger"},
	"accc": {"ac", "chair", "passenger"},
	"ec":   {"executive", "chair", "passenger"},
	"slr":  {"guard", "caboose", "luggage"},
	"eog":  {"generator", "power"},
	"pc":   {"pantry", "passenger"},
	"sleeper": {"sl", "passenger"},
	"general": {"gs", "passenger"},
	"chair":   {"cc", "passenger"},
	"guard":   {"caboose"},
	"brake":   {"caboose"},

	// Carbody families
	"icf": {"coach", "conventional"},
	"lhb": {"coach", "modern"},

	// Freight wagon codes
	"boxn": {"freight", "open"},
	"bcn":  {"freight", "covered"},
	"bcna": {"freight", "covered"},
	"btpn": {"freight", "tank"},
	"btap": {"freight", "tank"},
	"tank": {"freight", "tanker"},
	"blc":  {"freight", "container", "flat"},
	"blca": {"freight", "container", "flat"},
	"blcb": {"freight", "container", "flat"},
	"bfns": {"freight", "flat"},
	"nmg":  {"freight", "auto"},
	"bobr": {"freight", "hopper"},
	"boby": {"freight", "hopper"},
	"bobyn": {"freight", "hopper"},
	"brn":  {"freight", "brake"},
	"brd":  {"freight", "brake"},
	"bvzi": {"freight", "brake", "caboose"},
	"bvzc": {"freight", "brake", "caboose"},
	"hpcv": {"parcel", "freight"},
	"hcpv": {"parcel", "freight"},
	"vvn":  {"parcel", "milk"},
	"concor": {"container", "freight"},
	"container": {"freight"},
	"hopper":    {"freight"},
	"flat":      {"freight"},
	"parcel":    {"freight", "mail"},
}
