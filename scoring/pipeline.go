// Package scoring grades a self-introduction transcript against a weighted
// rubric and builds the diagnostic breakdown shown alongside the score.
package scoring

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/rubric"
	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/sentiment"
	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/transcript"
)

// Lexicon reports whether a lowercase token is a known word.
type Lexicon interface {
	IsKnown(token string) bool
}

// SentimentModel scores the polarity of a text span.
type SentimentModel interface {
	Polarity(text string) sentiment.Scores
}

// Suggester proposes up to n corrections for a misspelled word.
type Suggester interface {
	Suggest(word string, n int) []string
}

// Observer receives one call per Score with its outcome.
type Observer interface {
	ObserveScore(outcome string, overall float64, elapsed time.Duration)
}

// Score outcomes reported to an Observer.
const (
	OutcomeOK               = "ok"
	OutcomeValidationError  = "validation_error"
	OutcomeComputationError = "computation_error"
)

type Option func(*Pipeline)

// WithSuggestions attaches spelling suggestions (at most n per word) to
// the diagnostics. n <= 0 disables them.
func WithSuggestions(s Suggester, n int) Option {
	return func(p *Pipeline) {
		p.suggester = s
		p.suggestions = n
	}
}

func WithObserver(o Observer) Option {
	return func(p *Pipeline) { p.observer = o }
}

// Pipeline scores transcripts. It holds only read-only collaborators and is
// safe for concurrent use.
type Pipeline struct {
	rubric      *rubric.Rubric
	lex         Lexicon
	senti       SentimentModel
	suggester   Suggester
	suggestions int
	observer    Observer
	log         logrus.FieldLogger
}

func NewPipeline(r *rubric.Rubric, lex Lexicon, senti SentimentModel, log logrus.FieldLogger, opts ...Option) *Pipeline {
	if r == nil {
		r = rubric.Default()
	}
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		log = l
	}
	p := &Pipeline{rubric: r, lex: lex, senti: senti, log: log}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Rubric returns the rule tables the pipeline scores against.
func (p *Pipeline) Rubric() *rubric.Rubric { return p.rubric }

// Score grades transcript spoken over duration seconds. A blank transcript
// is a *ValidationError; any failure while scoring is a *ComputationError.
// No partial result is ever returned with an error.
func (p *Pipeline) Score(text string, duration int) (res *Result, err error) {
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			res, err = nil, &ComputationError{Err: fmt.Errorf("scoring: %v", rec)}
		}
		p.observe(res, err, time.Since(start))
	}()

	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Message: MsgEmptyTranscript}
	}

	t := transcript.Normalize(text)
	kw := MatchKeywords(p.rubric, t)
	raw := p.rawScores(t, duration, kw)
	diag := p.diagnose(t, duration, kw)

	res, err = aggregate(p.rubric, raw, t.WordCount(), diag)
	if err != nil {
		return nil, err
	}
	p.log.WithFields(logrus.Fields{
		"words":     t.WordCount(),
		"sentences": t.SentenceCount(),
		"duration":  duration,
		"overall":   res.OverallScore,
	}).Debug("transcript scored")
	return res, nil
}

func (p *Pipeline) rawScores(t *transcript.Text, duration int, kw KeywordMatch) map[string]int {
	r := p.rubric
	return map[string]int{
		rubric.Salutation:      ScoreSalutation(r, t),
		rubric.KeywordPresence: kw.Score,
		rubric.Flow:            ScoreFlow(r, t),
		rubric.SpeechRate:      ScoreSpeechRate(r, t, duration),
		rubric.Grammar:         ScoreGrammar(r, p.lex, t),
		rubric.Vocabulary:      ScoreVocabulary(r, t),
		rubric.FillerWords:     ScoreFillerWords(r, t),
		rubric.Sentiment:       ScoreSentiment(r, p.senti, t),
	}
}

func (p *Pipeline) observe(res *Result, err error, elapsed time.Duration) {
	outcome, overall := OutcomeOK, 0.0
	switch {
	case err == nil && res != nil:
		overall = res.OverallScore
	case IsValidation(err):
		outcome = OutcomeValidationError
	default:
		outcome = OutcomeComputationError
		p.log.WithError(err).Warn("scoring failed")
	}
	if p.observer != nil {
		p.observer.ObserveScore(outcome, overall, elapsed)
	}
}
