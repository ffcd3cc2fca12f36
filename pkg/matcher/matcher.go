package matcher

import (
	"math"
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feynman/pkg/domain"
)

// Matcher evaluates free-form text against a prioritized set of pattern rules
// and produces ranked suggestions. The rule set is fixed at construction time;
// Detect is pure apart from the randomized component of the confidence score.
type Matcher struct {
	rules []compiledRule
	rnd   *rand.Rand
}

type compiledRule struct {
	rule domain.PatternRule
	re   *regexp.Regexp
}

// Option modifies matcher construction
type Option func(*Matcher)

// WithRand sets the random source for confidence scoring, used by tests to
// make scores deterministic
func WithRand(rnd *rand.Rand) Option {
	return func(m *Matcher) { m.rnd = rnd }
}

// New creates a matcher from the given rules, sorted by descending priority
// with ties broken by discovery order. A rule with a malformed regular
// expression is logged and skipped; it contributes no matches.
func New(rules []domain.PatternRule, opts ...Option) *Matcher {
	sorted := make([]domain.PatternRule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Priority > sorted[j].Priority })

	m := &Matcher{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))} //nolint:gosec // display heuristic, not crypto
	for _, r := range sorted {
		re, err := regexp.Compile("(?i)" + r.Rule)
		if err != nil {
			lgr.Printf("[WARN] skipping malformed pattern rule %s: %v", r.ID, err)
			continue
		}
		m.rules = append(m.rules, compiledRule{rule: r, re: re})
	}

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Detect returns matches for every rule whose expression finds at least one
// match in the text, sorted by non-increasing confidence. Callers truncate
// the result for display.
func (m *Matcher) Detect(text string) []domain.PatternMatch {
	var matches []domain.PatternMatch
	for _, cr := range m.rules {
		matched := cr.re.FindString(text)
		if matched == "" {
			continue
		}
		matches = append(matches, domain.PatternMatch{
			Rule:        cr.rule.Name,
			Confidence:  m.confidence(text),
			Template:    cr.rule.Template,
			MatchedText: matched,
		})
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Confidence > matches[j].Confidence })
	return matches
}

// keyword classes contributing to the confidence bonus. Each keyword counts
// once per call, presence not occurrence count.
var (
	feynmanKeywords   = []string{"简单", "解释", "类比", "步骤", "总结", "想象", "比如"}
	analogyKeywords   = []string{"就像", "类似于", "比如说", "想象一下", "如同"}
	structureKeywords = []string{"首先", "然后", "最后", "接下来", "因此"}
)

// confidence produces the display score: random base in [60,90), +10 for
// inputs of 10-100 words, keyword bonuses, clamped to 95. This is a
// presentation heuristic with a deliberate randomized component, not a
// calibrated probability.
func (m *Matcher) confidence(text string) int {
	base := 60 + m.rnd.Float64()*30

	if words := len(strings.Fields(text)); words >= 10 && words <= 100 {
		base += 10
	}

	score := base + float64(keywordBonus(text))
	if score > 95 {
		score = 95
	}
	return int(math.Round(score))
}

// keywordBonus sums per-class keyword bonuses: +3 per Feynman-method
// indicator, +5 per analogy indicator, +2 per structural indicator
func keywordBonus(text string) int {
	lower := strings.ToLower(text)
	bonus := 0
	for _, kw := range feynmanKeywords {
		if strings.Contains(lower, kw) {
			bonus += 3
		}
	}
	for _, kw := range analogyKeywords {
		if strings.Contains(lower, kw) {
			bonus += 5
		}
	}
	for _, kw := range structureKeywords {
		if strings.Contains(lower, kw) {
			bonus += 2
		}
	}
	return bonus
}

// ApplyTemplate merges a partial template into the current draft. Each field
// of the template overrides the draft's value only when present, absent fields
// keep the draft's value. The merge is total, it always produces a complete
// FeynmanMethod.
func ApplyTemplate(template, draft domain.FeynmanMethod) domain.FeynmanMethod {
	res := domain.FeynmanMethod{
		CoreConcept: override(template.CoreConcept, draft.CoreConcept),
		Analogy: domain.Analogy{
			Domain:      override(template.Analogy.Domain, draft.Analogy.Domain),
			Scenario:    override(template.Analogy.Scenario, draft.Analogy.Scenario),
			Description: override(template.Analogy.Description, draft.Analogy.Description),
		},
		Breakdown: draft.Breakdown,
		Summary:   override(template.Summary, draft.Summary),
	}
	if len(template.Breakdown) > 0 {
		res.Breakdown = template.Breakdown
	}
	return res
}

func override(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
