// Package sentiment provides lexicon-based polarity scores for transcript
// text using the VADER model.
package sentiment

import (
	"math"
	"strings"

	"github.com/jonreiter/govader"
)

// Scores is a VADER polarity decomposition. Positive, Neutral and Negative
// are proportions in [0,1]; Compound is the normalized sum in [-1,1].
type Scores struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
	Compound float64 `json:"compound"`
}

// Analyzer scores text polarity. Construction loads the VADER lexicon, so
// build one per process and share it; Polarity is safe for concurrent use.
type Analyzer struct {
	sia *govader.SentimentIntensityAnalyzer
}

func New() *Analyzer {
	return &Analyzer{sia: govader.NewSentimentIntensityAnalyzer()}
}

// Polarity scores text. Blank text has no sentiment and yields zero Scores.
// Proportions are reported to 3 decimals and the compound score to 4, the
// precision of the reference VADER implementation.
func (a *Analyzer) Polarity(text string) Scores {
	if strings.TrimSpace(text) == "" {
		return Scores{}
	}
	s := a.sia.PolarityScores(text)
	return Scores{
		Positive: round(s.Positive, 3),
		Neutral:  round(s.Neutral, 3),
		Negative: round(s.Negative, 3),
		Compound: round(s.Compound, 4),
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
