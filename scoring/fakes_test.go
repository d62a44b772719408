package scoring

import (
	"strings"
	"sync"
	"time"

	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/sentiment"
)

// fakeLexicon knows every token except those listed.
type fakeLexicon map[string]bool

func (f fakeLexicon) IsKnown(token string) bool { return !f[token] }

type panicLexicon struct{}

func (panicLexicon) IsKnown(string) bool { panic("dictionary unavailable") }

// fakeSentiment reports a fixed positive share for any non-blank text.
type fakeSentiment struct{ pos float64 }

func (f fakeSentiment) Polarity(text string) sentiment.Scores {
	if strings.TrimSpace(text) == "" {
		return sentiment.Scores{}
	}
	return sentiment.Scores{Positive: f.pos, Neutral: 1 - f.pos, Compound: 0.12345}
}

type fakeSuggester map[string][]string

func (f fakeSuggester) Suggest(word string, n int) []string {
	s := f[word]
	if len(s) > n {
		s = s[:n]
	}
	return s
}

type observation struct {
	outcome string
	overall float64
}

type recordingObserver struct {
	mu  sync.Mutex
	got []observation
}

func (o *recordingObserver) ObserveScore(outcome string, overall float64, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.got = append(o.got, observation{outcome, overall})
}

// words returns n space-separated copies of "word".
func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}
