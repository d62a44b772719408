// Package rubric holds the self-introduction scoring rubric as data: phrase
// lists, keyword categories, score bands and criterion weights. The default
// rubric is embedded as YAML and decoded once per process.
package rubric

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Criterion names, in display order.
const (
	Salutation      = "Salutation"
	KeywordPresence = "Keyword Presence"
	Flow            = "Flow"
	SpeechRate      = "Speech Rate"
	Grammar         = "Grammar"
	Vocabulary      = "Vocabulary"
	FillerWords     = "Filler Words"
	Sentiment       = "Sentiment"
)

// TotalWeight is the sum every rubric's criterion weights must reach.
const TotalWeight = 100

var criterionOrder = []string{
	Salutation, KeywordPresence, Flow, SpeechRate,
	Grammar, Vocabulary, FillerWords, Sentiment,
}

//go:embed rubric.yaml
var defaultYAML []byte

// Rubric is the complete set of rule tables. A Rubric is read-only once
// parsed and may be shared between goroutines.
type Rubric struct {
	Criteria    []Criterion     `yaml:"criteria"`
	Salutation  SalutationRules `yaml:"salutation"`
	Keywords    KeywordRules    `yaml:"keywords"`
	Flow        FlowRules       `yaml:"flow"`
	SpeechRate  SpeechRateRules `yaml:"speech_rate"`
	Grammar     GrammarRules    `yaml:"grammar"`
	Vocabulary  RatioRules      `yaml:"vocabulary"`
	FillerWords FillerRules     `yaml:"filler_words"`
	Sentiment   SentimentRules  `yaml:"sentiment"`
}

type Criterion struct {
	Name   string `yaml:"name"`
	Weight int    `yaml:"weight"`
}

// SalutationRules scores the opening sentence. Tiers are tried in order.
type SalutationRules struct {
	Tiers     []SalutationTier `yaml:"tiers"`
	Otherwise int              `yaml:"otherwise"`
}

type SalutationTier struct {
	Score   int     `yaml:"score"`
	Phrases Phrases `yaml:"phrases"`
}

type KeywordRules struct {
	MustHave   KeywordTier `yaml:"must_have"`
	GoodToHave KeywordTier `yaml:"good_to_have"`
}

// KeywordTier awards Points once per category with at least one phrase hit.
type KeywordTier struct {
	Points     int        `yaml:"points"`
	Categories []Category `yaml:"categories"`
}

type Category struct {
	Label   string  `yaml:"label"`
	Phrases Phrases `yaml:"phrases"`
}

// Max is the most a tier can award.
func (t KeywordTier) Max() int { return t.Points * len(t.Categories) }

type FlowRules struct {
	Score             int     `yaml:"score"`
	MinSentences      int     `yaml:"min_sentences"`
	SalutationWindow  int     `yaml:"salutation_window"`
	ClosingWindow     int     `yaml:"closing_window"`
	Salutation        Phrases `yaml:"salutation"`
	BasicDetails      Phrases `yaml:"basic_details"`
	AdditionalDetails Phrases `yaml:"additional_details"`
	Closing           Phrases `yaml:"closing"`
}

type SpeechRateRules struct {
	UnknownDuration int        `yaml:"unknown_duration"`
	Bands           []Interval `yaml:"bands"`
	Otherwise       int        `yaml:"otherwise"`
}

// Score maps words per minute to points. The first containing band wins.
func (r SpeechRateRules) Score(wpm float64) int {
	for _, b := range r.Bands {
		if b.Contains(wpm) {
			return b.Score
		}
	}
	return r.Otherwise
}

type GrammarRules struct {
	NoWords int `yaml:"no_words"`
	// ErrorCeiling is the errors-per-100-words rate at which the
	// correctness fraction bottoms out at zero.
	ErrorCeiling float64 `yaml:"error_ceiling_per_100"`
	Bands        Bands   `yaml:"bands"`
}

type RatioRules struct {
	NoWords int   `yaml:"no_words"`
	Bands   Bands `yaml:"bands"`
}

type FillerRules struct {
	NoWords int     `yaml:"no_words"`
	Lexicon Phrases `yaml:"lexicon"`
	Bands   Bands   `yaml:"bands"`
}

type SentimentRules struct {
	Blank int   `yaml:"blank"`
	Bands Bands `yaml:"bands"`
}

var (
	defaultOnce    sync.Once
	defaultRubric  *Rubric
	defaultLoadErr error
)

// Default returns the embedded rubric. It panics if the embedded document
// is invalid, which only a broken build can cause.
func Default() *Rubric {
	defaultOnce.Do(func() {
		defaultRubric, defaultLoadErr = Parse(defaultYAML)
	})
	if defaultLoadErr != nil {
		panic(fmt.Sprintf("rubric: embedded rubric: %v", defaultLoadErr))
	}
	return defaultRubric
}

// Parse decodes and validates a rubric document.
func Parse(data []byte) (*Rubric, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var r Rubric
	if err := dec.Decode(&r); err != nil {
		return nil, fmt.Errorf("rubric: decode: %w", err)
	}
	r.lowercase()
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate checks the structural invariants the scorers depend on.
func (r *Rubric) Validate() error {
	if len(r.Criteria) != len(criterionOrder) {
		return fmt.Errorf("rubric: want %d criteria, got %d", len(criterionOrder), len(r.Criteria))
	}
	total := 0
	for i, c := range r.Criteria {
		if c.Name != criterionOrder[i] {
			return fmt.Errorf("rubric: criterion %d: want %q, got %q", i, criterionOrder[i], c.Name)
		}
		if c.Weight <= 0 {
			return fmt.Errorf("rubric: criterion %q: weight must be positive", c.Name)
		}
		total += c.Weight
	}
	if total != TotalWeight {
		return fmt.Errorf("rubric: weights sum to %d, want %d", total, TotalWeight)
	}

	var errs []error
	check := func(name string, scores ...int) {
		w := r.Weight(name)
		for _, s := range scores {
			if s < 0 || s > w {
				errs = append(errs, fmt.Errorf("rubric: %s: score %d outside [0,%d]", name, s, w))
			}
		}
	}

	sal := []int{r.Salutation.Otherwise}
	for _, t := range r.Salutation.Tiers {
		sal = append(sal, t.Score)
	}
	check(Salutation, sal...)
	check(KeywordPresence, r.Keywords.MustHave.Max()+r.Keywords.GoodToHave.Max())
	check(Flow, r.Flow.Score)

	rate := []int{r.SpeechRate.UnknownDuration, r.SpeechRate.Otherwise}
	for _, b := range r.SpeechRate.Bands {
		rate = append(rate, b.Score)
	}
	check(SpeechRate, rate...)
	check(Grammar, append(r.Grammar.Bands.Scores(), r.Grammar.NoWords)...)
	check(Vocabulary, append(r.Vocabulary.Bands.Scores(), r.Vocabulary.NoWords)...)
	check(FillerWords, append(r.FillerWords.Bands.Scores(), r.FillerWords.NoWords)...)
	check(Sentiment, append(r.Sentiment.Bands.Scores(), r.Sentiment.Blank)...)

	for name, b := range map[string]Bands{
		Grammar: r.Grammar.Bands, Vocabulary: r.Vocabulary.Bands,
		FillerWords: r.FillerWords.Bands, Sentiment: r.Sentiment.Bands,
	} {
		if err := b.validate(); err != nil {
			errs = append(errs, fmt.Errorf("rubric: %s: %w", name, err))
		}
	}
	if r.Grammar.ErrorCeiling <= 0 {
		errs = append(errs, errors.New("rubric: Grammar: error ceiling must be positive"))
	}
	for _, b := range r.SpeechRate.Bands {
		if math.IsNaN(b.Min) || math.IsNaN(b.Max) || b.Min > b.Max {
			errs = append(errs, fmt.Errorf("rubric: Speech Rate: bad band [%v,%v]", b.Min, b.Max))
		}
	}
	return errors.Join(errs...)
}

// Order returns the criterion names in display order.
func (r *Rubric) Order() []string {
	out := make([]string, len(r.Criteria))
	for i, c := range r.Criteria {
		out[i] = c.Name
	}
	return out
}

// Weights returns a fresh criterion→weight map.
func (r *Rubric) Weights() map[string]int {
	out := make(map[string]int, len(r.Criteria))
	for _, c := range r.Criteria {
		out[c.Name] = c.Weight
	}
	return out
}

// Weight returns the weight of the named criterion, or 0 if unknown.
func (r *Rubric) Weight(name string) int {
	for _, c := range r.Criteria {
		if c.Name == name {
			return c.Weight
		}
	}
	return 0
}

// MaxScore is the sum of all weights.
func (r *Rubric) MaxScore() int {
	total := 0
	for _, c := range r.Criteria {
		total += c.Weight
	}
	return total
}

// YAML renders the rubric back to its document form.
func (r *Rubric) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Rubric) lowercase() {
	for i := range r.Salutation.Tiers {
		r.Salutation.Tiers[i].Phrases = r.Salutation.Tiers[i].Phrases.lower()
	}
	for _, tier := range []*KeywordTier{&r.Keywords.MustHave, &r.Keywords.GoodToHave} {
		for i := range tier.Categories {
			tier.Categories[i].Phrases = tier.Categories[i].Phrases.lower()
		}
	}
	f := &r.Flow
	f.Salutation = f.Salutation.lower()
	f.BasicDetails = f.BasicDetails.lower()
	f.AdditionalDetails = f.AdditionalDetails.lower()
	f.Closing = f.Closing.lower()
	r.FillerWords.Lexicon = r.FillerWords.Lexicon.lower()
}

// Phrases is a list of lowercase trigger phrases.
type Phrases []string

// In reports whether any phrase occurs as a substring of text. text must
// already be lowercase.
func (p Phrases) In(text string) bool {
	for _, ph := range p {
		if strings.Contains(text, ph) {
			return true
		}
	}
	return false
}

// Has reports whether token equals one of the phrases.
func (p Phrases) Has(token string) bool {
	for _, ph := range p {
		if ph == token {
			return true
		}
	}
	return false
}

func (p Phrases) lower() Phrases {
	out := make(Phrases, len(p))
	for i, ph := range p {
		out[i] = strings.ToLower(ph)
	}
	return out
}
