package matcher

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/umputun/feynman/pkg/domain"
)

// default suggestion policy, mirrors the annotation form behavior: wait for
// input to settle, ignore short fragments, show at most three suggestions
const (
	DefaultDebounce       = 500 * time.Millisecond
	DefaultMinTextLength  = 20
	DefaultMaxSuggestions = 3
)

// Suggester applies the caller-level policy around Detect: a minimum-length
// gate on trimmed input and truncation of the ranked result for display
type Suggester struct {
	matcher *Matcher
	minLen  int
	max     int
}

// NewSuggester creates a suggester over the given matcher. Zero values for
// minLen and maxSuggestions fall back to the defaults.
func NewSuggester(m *Matcher, minLen, maxSuggestions int) *Suggester {
	if minLen == 0 {
		minLen = DefaultMinTextLength
	}
	if maxSuggestions == 0 {
		maxSuggestions = DefaultMaxSuggestions
	}
	return &Suggester{matcher: m, minLen: minLen, max: maxSuggestions}
}

// Suggest runs the matcher when the trimmed text passes the length gate and
// returns the top suggestions. Short input never invokes the matcher and
// yields an empty result.
func (s *Suggester) Suggest(text string) []domain.PatternMatch {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < s.minLen {
		return nil
	}
	matches := s.matcher.Detect(text)
	if len(matches) > s.max {
		matches = matches[:s.max]
	}
	return matches
}

// Debouncer delays suggestion recomputation until input stops changing. Each
// Input call cancels the previously scheduled run, so only the final text of
// an editing burst reaches the matcher: last writer wins, no queueing, no
// overlapping runs.
type Debouncer struct {
	suggester *Suggester
	delay     time.Duration
	deliver   func([]domain.PatternMatch)

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

// NewDebouncer wraps a suggester with a fixed debounce delay. Results are
// pushed to the deliver callback; a zero delay falls back to the default.
func NewDebouncer(s *Suggester, delay time.Duration, deliver func([]domain.PatternMatch)) *Debouncer {
	if delay == 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{suggester: s, delay: delay, deliver: deliver}
}

// Input registers a new version of the text. Text below the length gate
// clears suggestions immediately; otherwise a matcher run is scheduled after
// the debounce delay, replacing any pending run.
func (d *Debouncer) Input(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	if utf8.RuneCountInString(strings.TrimSpace(text)) < d.suggester.minLen {
		d.deliver(nil)
		return
	}

	d.timer = time.AfterFunc(d.delay, func() {
		res := d.suggester.Suggest(text)
		d.mu.Lock()
		closed := d.closed
		d.mu.Unlock()
		if !closed {
			d.deliver(res)
		}
	})
}

// Close cancels any pending run, further Input calls are ignored
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
