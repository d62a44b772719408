package scoring

import (
	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/sentiment"
	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/transcript"
)

// diagnose recomputes the display statistics from the normalized text.
// Misspelled words are distinct, in first-appearance order.
func (p *Pipeline) diagnose(t *transcript.Text, duration int, kw KeywordMatch) Diagnostics {
	n := t.WordCount()
	d := Diagnostics{
		WordCount:       n,
		SentenceCount:   t.SentenceCount(),
		MustHaveFound:   nonNil(kw.MustHaveFound),
		GoodToHaveFound: nonNil(kw.GoodToHaveFound),
	}
	if duration > 0 {
		d.WPM = roundTo(WordsPerMinute(n, duration), 1)
	}

	d.MisspelledWords = nonNil(unknownWords(p.lex, t.Words))
	d.SpellingErrors = len(d.MisspelledWords)
	d.UniqueWords = distinct(t.Words)
	d.FillerWordsFound = FillerTokens(p.rubric, t)
	d.FillerCount = len(d.FillerWordsFound)
	if n > 0 {
		d.ErrorRate = roundTo(rate(d.SpellingErrors, n), 1)
		d.TTR = roundTo(float64(d.UniqueWords)/float64(n), 3)
		d.FillerRate = roundTo(rate(d.FillerCount, n), 1)
	}

	d.Sentiment = roundScores(p.senti.Polarity(t.Joined()))
	d.SentenceSentiments = make([]SentenceSentiment, 0, t.SentenceCount())
	for _, s := range t.Sentences {
		d.SentenceSentiments = append(d.SentenceSentiments, SentenceSentiment{
			Sentence: s,
			Scores:   roundScores(p.senti.Polarity(s)),
		})
	}

	if p.suggester != nil && p.suggestions > 0 {
		for _, w := range d.MisspelledWords {
			sug := p.suggester.Suggest(w, p.suggestions)
			if len(sug) == 0 {
				continue
			}
			if d.SpellingSuggestions == nil {
				d.SpellingSuggestions = make(map[string][]string)
			}
			d.SpellingSuggestions[w] = sug
		}
	}
	return d
}

// unknownWords lists distinct unknown tokens in first-appearance order.
func unknownWords(lex Lexicon, words []string) []string {
	if u, ok := lex.(interface{ Unknown([]string) []string }); ok {
		return u.Unknown(words)
	}
	var out []string
	seen := make(map[string]struct{})
	for _, w := range words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		if !lex.IsKnown(w) {
			out = append(out, w)
		}
	}
	return out
}

func roundScores(s sentiment.Scores) sentiment.Scores {
	return sentiment.Scores{
		Positive: roundTo(s.Positive, 3),
		Neutral:  roundTo(s.Neutral, 3),
		Negative: roundTo(s.Negative, 3),
		Compound: roundTo(s.Compound, 3),
	}
}
