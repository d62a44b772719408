package scoring

import (
	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/rubric"
)

// aggregate builds the weighted result from raw scores keyed by criterion.
// A raw score outside its criterion's weight is a computation error.
func aggregate(r *rubric.Rubric, raw map[string]int, wordCount int, diag Diagnostics) (*Result, error) {
	scores := make(ScoreTable, 0, len(r.Criteria))
	weights := make(ScoreTable, 0, len(r.Criteria))
	for _, c := range r.Criteria {
		v, ok := raw[c.Name]
		if !ok {
			return nil, NewComputationError("scoring: no score for %s", c.Name)
		}
		if v < 0 || v > c.Weight {
			return nil, NewComputationError("scoring: %s score %d outside [0,%d]", c.Name, v, c.Weight)
		}
		scores = append(scores, Entry{Name: c.Name, Value: v})
		weights = append(weights, Entry{Name: c.Name, Value: c.Weight})
	}

	maxScore := weights.Sum()
	if maxScore <= 0 {
		return nil, NewComputationError("scoring: rubric max score is %d", maxScore)
	}
	overall := float64(scores.Sum()) / float64(maxScore) * 100

	return &Result{
		OverallScore:     roundTo(overall, 1),
		WordCount:        wordCount,
		CriteriaOrder:    r.Order(),
		CriteriaScores:   scores,
		Weights:          weights,
		DetailedAnalysis: diag,
	}, nil
}
