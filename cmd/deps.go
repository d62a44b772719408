package cmd

import (
	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/lexicon"
	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/rubric"
	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/scoring"
	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/sentiment"
)

// newPipeline builds the process-wide dictionary and sentiment model and a
// pipeline over them. Failure here is fatal to the command.
func (a *app) newPipeline(opts ...scoring.Option) (*scoring.Pipeline, error) {
	dict, err := lexicon.New(
		lexicon.WithFiles(a.cfg.Lexicon.ExtraWords...),
		lexicon.WithMinSimilarity(a.cfg.Lexicon.MinSimilarity),
	)
	if err != nil {
		return nil, err
	}
	a.logger.WithField("words", dict.Len()).Debug("dictionary loaded")

	opts = append(opts, scoring.WithSuggestions(dict, a.cfg.Lexicon.Suggestions))
	return scoring.NewPipeline(rubric.Default(), dict, sentiment.New(), a.logger, opts...), nil
}
