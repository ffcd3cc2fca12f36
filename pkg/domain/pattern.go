package domain

// PatternRule is a configured suggestion rule: a regular expression plus the
// partial template it proposes when the expression matches the input text.
// Rules are loaded once at startup and immutable for the session.
type PatternRule struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Rule     string        `json:"rule"`
	Template FeynmanMethod `json:"template"`
	Priority int           `json:"priority"`
}

// PatternMatch is a single suggestion produced by the matcher. Derived and
// ephemeral, never persisted.
type PatternMatch struct {
	Rule        string        `json:"rule"`
	Confidence  int           `json:"confidence"`
	Template    FeynmanMethod `json:"template"`
	MatchedText string        `json:"matched_text"`
}
