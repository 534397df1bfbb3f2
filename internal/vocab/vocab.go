// Package vocab holds the static vocabularies and weight tables the analysis
// core runs on. Everything here is immutable data initialized once at process
// start; callers must treat the slices as read-only.
package vocab

// DamageTypes is the fixed damage vocabulary the detector is prompted with.
var DamageTypes = []string{
	"burn marks", "scorch marks", "corrosion", "rust",
	"broken display", "overheating", "loose wires",
	"water damage", "mechanical damage", "missing components",
}

// Penalty maps a damage-type keyword to its health-score deduction.
type Penalty struct {
	Keyword string
	Weight  int
}

// Penalties is evaluated in order; the first keyword that is a
// case-insensitive substring of a damage label wins. The order is a semantic
// contract, not cosmetic: "scorch marks" must be tried before "corrosion"
// matches nothing, and so on.
var Penalties = []Penalty{
	{"burn marks", 25},
	{"scorch marks", 20},
	{"corrosion", 15},
	{"rust", 15},
	{"broken display", 20},
	{"overheating", 30},
	{"loose wires", 10},
	{"water damage", 40},
	{"mechanical damage", 20},
	{"missing components", 25},
}

// Manufacturers is the nameplate brand list the fallback parser matches
// against, uppercased for line matching.
var Manufacturers = []string{
	"SIEMENS", "ABB", "GE", "ROCKWELL", "HONEYWELL",
	"SCHNEIDER", "MITSUBISHI", "FUJI", "DELTA", "TOSHIBA",
}

// Recommendation pairs a damage keyword with its maintenance advice.
// First-substring-match semantics, same as Penalties.
type Recommendation struct {
	Keyword string
	Advice  string
}

// DamageRecommendations maps detected damage to repair advice.
var DamageRecommendations = []Recommendation{
	{"burn marks", "Replace damaged components and inspect electrical connections"},
	{"rust", "Apply anti-corrosion treatment and check for moisture ingress"},
	{"loose wires", "Tighten all electrical connections and secure wire harnesses"},
	{"overheating", "Clean cooling surfaces and check ventilation"},
	{"broken display", "Replace display unit if LCD/LED indicators are critical"},
}

// CategoryHint attaches maintenance advice to category-name keywords.
// Hints are additive across groups: a category name matching several groups
// collects all of their advice.
type CategoryHint struct {
	Keywords []string
	Advice   []string
}

// CategoryHints is keyed by substring match on the lowercased category name.
var CategoryHints = []CategoryHint{
	{
		Keywords: []string{"ups", "inverter"},
		Advice:   []string{"Schedule battery capacity test", "Check cooling fan operation"},
	},
	{
		Keywords: []string{"transformer"},
		Advice:   []string{"Check insulation resistance", "Verify oil levels and quality"},
	},
	{
		Keywords: []string{"battery"},
		Advice:   []string{"Check individual cell voltages", "Test specific gravity of electrolyte"},
	},
}

// ConditionRule assigns condition/status/confidence when any of its keywords
// appears in the lowercased OCR text.
type ConditionRule struct {
	Keywords          []string
	Condition         string
	OperationalStatus string
	Confidence        string
}

// ConditionRules is checked in priority order; the first rule with a keyword
// hit wins and no further rules are considered.
var ConditionRules = []ConditionRule{
	{
		Keywords:          []string{"new", "unused", "never used", "factory", "boxed"},
		Condition:         "Good - Appears new/unused",
		OperationalStatus: "Fully functional - New equipment",
		Confidence:        "medium",
	},
	{
		Keywords:          []string{"used", "service", "maintenance required"},
		Condition:         "Fair - Shows signs of use",
		OperationalStatus: "Limited functionality - May need maintenance",
		Confidence:        "medium",
	},
	{
		Keywords:          []string{"rust", "corrosion", "damaged", "broken", "faulty"},
		Condition:         "Poor - Visible damage/wear",
		OperationalStatus: "Non-functional - Requires repair",
		Confidence:        "medium",
	},
	{
		Keywords:          []string{"voltage", "current", "power"},
		Condition:         "Good - Specifications readable",
		OperationalStatus: "Functional - Based on available specs",
		Confidence:        "medium",
	},
}

// AgeBucket groups design-era indicator keywords. Buckets are checked in
// order; an earlier bucket wins even when later ones also match.
type AgeBucket struct {
	Label      string
	Confidence string
	Indicators []string
}

// AgeBuckets orders modern before intermediate before old.
var AgeBuckets = []AgeBucket{
	{
		Label:      "Modern (< 5 years)",
		Confidence: "medium",
		Indicators: []string{"LED", "DISPLAY", "DIGITAL", "MICROCONTROLLER"},
	},
	{
		Label:      "Intermediate (5-15 years)",
		Confidence: "low",
		Indicators: []string{"LCD", "ANALOG", "TRANSISTOR"},
	},
	{
		Label:      "Old (> 15 years)",
		Confidence: "medium",
		Indicators: []string{"VACUUM TUBE", "MECHANICAL DIALS", "OUTDATED LABELS"},
	},
}

// Certification pairs the keyword scanned for with its canonical label.
type Certification struct {
	Token string
	Label string
}

// Certifications lists the compliance markings the scanner looks for.
var Certifications = []Certification{
	{"ISO", "ISO"},
	{"CE", "CE"},
	{"ROHS", "RoHS"},
	{"BIS", "BIS"},
	{"UL", "UL"},
}
