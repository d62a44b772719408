package scoring

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/sentiment"
)

// Result is the composite outcome of scoring one transcript.
type Result struct {
	OverallScore     float64     `json:"overall_score"` // 0..100, one decimal
	WordCount        int         `json:"word_count"`
	CriteriaOrder    []string    `json:"criteria_order"`
	CriteriaScores   ScoreTable  `json:"criteria_scores"`
	Weights          ScoreTable  `json:"weights"`
	DetailedAnalysis Diagnostics `json:"detailed_analysis"`
}

// CriterionScore pairs a raw score with its criterion's weight.
type CriterionScore struct {
	Name      string `json:"name"`
	RawScore  int    `json:"raw_score"`
	MaxWeight int    `json:"max_weight"`
}

// Criteria returns the per-criterion scores in display order.
func (r *Result) Criteria() []CriterionScore {
	out := make([]CriterionScore, 0, len(r.CriteriaOrder))
	for _, name := range r.CriteriaOrder {
		raw, _ := r.CriteriaScores.Get(name)
		w, _ := r.Weights.Get(name)
		out = append(out, CriterionScore{Name: name, RawScore: raw, MaxWeight: w})
	}
	return out
}

// KeywordMatch is the content-coverage outcome.
type KeywordMatch struct {
	Score           int      `json:"score"`
	MustHaveFound   []string `json:"must_have_found"`
	GoodToHaveFound []string `json:"good_to_have_found"`
}

// Diagnostics are the display statistics behind the scores.
type Diagnostics struct {
	WordCount          int                 `json:"word_count"`
	SentenceCount      int                 `json:"sentence_count"`
	WPM                float64             `json:"wpm"`
	MustHaveFound      []string            `json:"must_have_found"`
	GoodToHaveFound    []string            `json:"good_to_have_found"`
	SpellingErrors     int                 `json:"spelling_errors"`
	MisspelledWords    []string            `json:"misspelled_words"`
	ErrorRate          float64             `json:"error_rate"`
	UniqueWords        int                 `json:"unique_words"`
	TTR                float64             `json:"ttr"`
	FillerWordsFound   []string            `json:"filler_words_found"`
	FillerCount        int                 `json:"filler_count"`
	FillerRate         float64             `json:"filler_rate"`
	Sentiment          sentiment.Scores    `json:"sentiment"`
	SentenceSentiments []SentenceSentiment `json:"sentence_sentiments"`

	// SpellingSuggestions maps each misspelled word to likely corrections.
	SpellingSuggestions map[string][]string `json:"spelling_suggestions,omitempty"`
}

type SentenceSentiment struct {
	Sentence string `json:"sentence"`
	sentiment.Scores
}

// ScoreTable is a criterion→value mapping that keeps rubric order. It
// encodes as a JSON object whose keys appear in that order.
type ScoreTable []Entry

type Entry struct {
	Name  string
	Value int
}

func (t ScoreTable) Get(name string) (int, bool) {
	for _, e := range t {
		if e.Name == name {
			return e.Value, true
		}
	}
	return 0, false
}

func (t ScoreTable) Sum() int {
	total := 0
	for _, e := range t {
		total += e.Value
	}
	return total
}

// Map returns the table as a plain map.
func (t ScoreTable) Map() map[string]int {
	out := make(map[string]int, len(t))
	for _, e := range t {
		out[e.Name] = e.Value
	}
	return out
}

func (t ScoreTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", e.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (t *ScoreTable) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("score table: want object, got %v", tok)
	}
	var out ScoreTable
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := tok.(string)
		var v int
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("score table: %q: %w", name, err)
		}
		out = append(out, Entry{Name: name, Value: v})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*t = out
	return nil
}
