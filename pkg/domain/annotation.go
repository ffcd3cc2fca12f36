package domain

import (
	"strings"
	"time"
)

// BreakdownStep is a single step of a stepwise decomposition. Step numbers are
// 1-based and kept contiguous by the FeynmanMethod helpers.
type BreakdownStep struct {
	Step          int    `json:"step"`
	Explanation   string `json:"explanation"`
	LinkedConcept string `json:"linked_concept"`
}

// Analogy is one illustrative analogy within an explanation
type Analogy struct {
	Domain      string `json:"domain"`
	Scenario    string `json:"scenario"`
	Description string `json:"description"`
}

// FeynmanMethod is the structured explanation template: a core concept, one
// analogy, a stepwise breakdown and a closing summary
type FeynmanMethod struct {
	CoreConcept string          `json:"core_concept"`
	Analogy     Analogy         `json:"analogy"`
	Breakdown   []BreakdownStep `json:"breakdown"`
	Summary     string          `json:"summary"`
}

// AddStep appends a breakdown step and renumbers the sequence
func (m *FeynmanMethod) AddStep(explanation, linkedConcept string) {
	m.Breakdown = append(m.Breakdown, BreakdownStep{Explanation: explanation, LinkedConcept: linkedConcept})
	m.RenumberSteps()
}

// RemoveStep deletes the step at the given zero-based index and renumbers the
// remaining steps. Out of range index is a no-op.
func (m *FeynmanMethod) RemoveStep(idx int) {
	if idx < 0 || idx >= len(m.Breakdown) {
		return
	}
	m.Breakdown = append(m.Breakdown[:idx], m.Breakdown[idx+1:]...)
	m.RenumberSteps()
}

// RenumberSteps rewrites step numbers to 1..N, no gaps and no duplicates
func (m *FeynmanMethod) RenumberSteps() {
	for i := range m.Breakdown {
		m.Breakdown[i].Step = i + 1
	}
}

// IsZero reports whether the method carries no content at all
func (m FeynmanMethod) IsZero() bool {
	return m.CoreConcept == "" && m.Analogy == Analogy{} && len(m.Breakdown) == 0 && m.Summary == ""
}

// StyleFeature marks a rhetorical device used in an answer
type StyleFeature string

// supported style features
const (
	StyleAnalogy         StyleFeature = "analogy"
	StyleSimplify        StyleFeature = "simplify"
	StyleStory           StyleFeature = "story"
	StyleFirstPrinciples StyleFeature = "firstprinciples"
)

// Quality is a reviewer-assigned quality grade, empty when not graded
type Quality string

// quality grades
const (
	QualityExcellent Quality = "excellent"
	QualityGood      Quality = "good"
	QualityNeedsWork Quality = "needs-work"
)

// Valid reports whether the quality value is one of the known grades or empty
func (q Quality) Valid() bool {
	switch q {
	case QualityExcellent, QualityGood, QualityNeedsWork, "":
		return true
	}
	return false
}

// AnnotationRecord is one persisted training example: a question, the final
// answer, optional structured explanation and grading metadata
type AnnotationRecord struct {
	ID            string         `json:"id"`
	Question      string         `json:"question"`
	AnswerFinal   string         `json:"answer_final"`
	FeynmanMethod *FeynmanMethod `json:"feynman_method,omitempty"`
	StyleFeatures []StyleFeature `json:"styleFeatures,omitempty"`
	Quality       Quality        `json:"quality,omitempty"`
	Notes         string         `json:"notes,omitempty"`
	Source        string         `json:"source,omitempty"`
	Timestamp     time.Time      `json:"timestamp"`
	Annotator     string         `json:"annotator"`
}

// Validate checks the required fields, question and final answer must be
// non-empty after trimming whitespace
func (r *AnnotationRecord) Validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return &MissingFieldError{Field: "question"}
	}
	if strings.TrimSpace(r.AnswerFinal) == "" {
		return &MissingFieldError{Field: "answer_final"}
	}
	return nil
}

// ListFilter restricts List results. Query is a case-insensitive substring
// match against question and answer, Quality is an exact match when set.
type ListFilter struct {
	Query   string
	Quality Quality
}

// Matches reports whether the record passes the filter
func (f ListFilter) Matches(r *AnnotationRecord) bool {
	if f.Quality != "" && r.Quality != f.Quality {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(r.Question), q) &&
			!strings.Contains(strings.ToLower(r.AnswerFinal), q) {
			return false
		}
	}
	return true
}
