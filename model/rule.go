package model

// PatternType selects how a pattern is evaluated against text.
type PatternType string

const (
	PatternKeyword   PatternType = "keyword"
	PatternPhrase    PatternType = "phrase"
	PatternRegex     PatternType = "regex"
	PatternProximity PatternType = "proximity"
)

// Severity is the 4-level ordinal weight shared by rules and required sections.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Valid reports whether s is one of the four known levels.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// RuleCategory groups rules by what they detect.
type RuleCategory string

const (
	CategoryRisk       RuleCategory = "risk"
	CategoryMissing    RuleCategory = "missing"
	CategoryObligation RuleCategory = "obligation"
)

// Valid reports whether c is a known category.
func (c RuleCategory) Valid() bool {
	switch c {
	case CategoryRisk, CategoryMissing, CategoryObligation:
		return true
	}
	return false
}

// Pattern is one matching strategy belonging to a rule.
// Values holds one literal for keyword/phrase/regex patterns and
// exactly two terms for proximity patterns.
type Pattern struct {
	Type      PatternType `yaml:"type" json:"type"`
	Values    []string    `yaml:"values" json:"values"`
	Context   int         `yaml:"context,omitempty" json:"context,omitempty"`     // context window in characters, 0 = default
	Proximity int         `yaml:"proximity,omitempty" json:"proximity,omitempty"` // max distance between terms, 0 = default
}

// Rule is an externally supplied detection rule. Rules are read-only
// configuration; the engine never mutates them.
type Rule struct {
	ID             string       `yaml:"id" json:"id"`
	Name           string       `yaml:"name" json:"name"`
	Category       RuleCategory `yaml:"category" json:"category"`
	Severity       Severity     `yaml:"severity" json:"severity"`
	Patterns       []Pattern    `yaml:"patterns" json:"patterns"`
	Description    string       `yaml:"description" json:"description"`
	Recommendation string       `yaml:"recommendation,omitempty" json:"recommendation,omitempty"`
}

// Match is a single pattern hit in the source text.
type Match struct {
	Text     string `json:"text"`
	Position int    `json:"position"` // 0-based character offset
	Context  string `json:"context"`
}
