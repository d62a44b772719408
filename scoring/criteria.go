package scoring

import (
	"strings"

	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/rubric"
	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/transcript"
)

// ScoreSalutation grades the opening sentence against the salutation tiers.
// No sentences means there is no greeting to grade.
func ScoreSalutation(r *rubric.Rubric, t *transcript.Text) int {
	if t.SentenceCount() == 0 {
		return 0
	}
	first := strings.ToLower(t.Sentences[0])
	for _, tier := range r.Salutation.Tiers {
		if tier.Phrases.In(first) {
			return tier.Score
		}
	}
	return r.Salutation.Otherwise
}

// MatchKeywords awards each keyword category at most once and reports the
// matched labels in declaration order.
func MatchKeywords(r *rubric.Rubric, t *transcript.Text) KeywordMatch {
	text := strings.ToLower(t.Joined())
	m := KeywordMatch{MustHaveFound: []string{}, GoodToHaveFound: []string{}}
	for _, c := range r.Keywords.MustHave.Categories {
		if c.Phrases.In(text) {
			m.Score += r.Keywords.MustHave.Points
			m.MustHaveFound = append(m.MustHaveFound, c.Label)
		}
	}
	for _, c := range r.Keywords.GoodToHave.Categories {
		if c.Phrases.In(text) {
			m.Score += r.Keywords.GoodToHave.Points
			m.GoodToHaveFound = append(m.GoodToHaveFound, c.Label)
		}
	}
	return m
}

// WordsPerMinute is wordCount/duration*60.
func WordsPerMinute(wordCount, duration int) float64 {
	return float64(wordCount) / float64(duration) * 60
}

// ScoreSpeechRate grades pace. A zero duration is unknown pace.
func ScoreSpeechRate(r *rubric.Rubric, t *transcript.Text, duration int) int {
	if duration == 0 {
		return r.SpeechRate.UnknownDuration
	}
	return r.SpeechRate.Score(WordsPerMinute(t.WordCount(), duration))
}

// ScoreGrammar uses the spelling-error rate as a grammar proxy. Every
// unknown token counts, repeats included.
func ScoreGrammar(r *rubric.Rubric, lex Lexicon, t *transcript.Text) int {
	n := t.WordCount()
	if n == 0 {
		return r.Grammar.NoWords
	}
	errs := 0
	for _, w := range t.Words {
		if !lex.IsKnown(w) {
			errs++
		}
	}
	per100 := rate(errs, n)
	fraction := 1 - min(per100/r.Grammar.ErrorCeiling, 1)
	return r.Grammar.Bands.Score(fraction)
}

// ScoreVocabulary grades the type-token ratio.
func ScoreVocabulary(r *rubric.Rubric, t *transcript.Text) int {
	n := t.WordCount()
	if n == 0 {
		return r.Vocabulary.NoWords
	}
	return r.Vocabulary.Bands.Score(float64(distinct(t.Words)) / float64(n))
}

// FillerTokens returns the tokens found in the filler lexicon, in order.
// Lexicon entries are compared to single tokens, so multi-word entries
// never match.
func FillerTokens(r *rubric.Rubric, t *transcript.Text) []string {
	found := []string{}
	for _, w := range t.Words {
		if r.FillerWords.Lexicon.Has(w) {
			found = append(found, w)
		}
	}
	return found
}

// ScoreFillerWords grades the filler rate per 100 words; lower is better.
func ScoreFillerWords(r *rubric.Rubric, t *transcript.Text) int {
	n := t.WordCount()
	if n == 0 {
		return r.FillerWords.NoWords
	}
	return r.FillerWords.Bands.Score(rate(len(FillerTokens(r, t)), n))
}

// ScoreSentiment grades the positive component of the whole transcript.
func ScoreSentiment(r *rubric.Rubric, model SentimentModel, t *transcript.Text) int {
	text := t.Joined()
	if strings.TrimSpace(text) == "" {
		return r.Sentiment.Blank
	}
	return r.Sentiment.Bands.Score(model.Polarity(text).Positive)
}
