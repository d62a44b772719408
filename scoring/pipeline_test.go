package scoring

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/rubric"
)

const sample = "Hello everyone. My name is Sam and I am 12 years old. I study in class 7. " +
	"I like to play chess with my family. Thank you."

func newTestPipeline(opts ...Option) *Pipeline {
	logger, _ := test.NewNullLogger()
	return NewPipeline(rubric.Default(), fakeLexicon{"sam": true}, fakeSentiment{pos: 0.75}, logger, opts...)
}

func TestPipeline_Score(t *testing.T) {
	t.Parallel()

	res, err := newTestPipeline().Score(sample, 13)
	require.NoError(t, err)

	assert.Equal(t, 77.0, res.OverallScore)
	assert.Equal(t, 27, res.WordCount)
	assert.Equal(t, rubric.Default().Order(), res.CriteriaOrder)
	assert.Equal(t, map[string]int{
		rubric.Salutation:      4,
		rubric.KeywordPresence: 20,
		rubric.Flow:            5,
		rubric.SpeechRate:      10,
		rubric.Grammar:         6,
		rubric.Vocabulary:      8,
		rubric.FillerWords:     12,
		rubric.Sentiment:       12,
	}, res.CriteriaScores.Map())
	assert.Equal(t, rubric.Default().Weights(), res.Weights.Map())

	d := res.DetailedAnalysis
	assert.Equal(t, 27, d.WordCount)
	assert.Equal(t, 5, d.SentenceCount)
	assert.Equal(t, 124.6, d.WPM)
	assert.Equal(t, []string{"name", "age", "school/class", "family", "hobbies"}, d.MustHaveFound)
	assert.Equal(t, []string{}, d.GoodToHaveFound)
	assert.Equal(t, 1, d.SpellingErrors)
	assert.Equal(t, []string{"sam"}, d.MisspelledWords)
	assert.Equal(t, 3.7, d.ErrorRate)
	assert.Equal(t, 24, d.UniqueWords)
	assert.Equal(t, 0.889, d.TTR)
	assert.Equal(t, []string{"like"}, d.FillerWordsFound)
	assert.Equal(t, 1, d.FillerCount)
	assert.Equal(t, 3.7, d.FillerRate)
	assert.Equal(t, 0.75, d.Sentiment.Positive)
	assert.Equal(t, 0.123, d.Sentiment.Compound)
	require.Len(t, d.SentenceSentiments, 5)
	assert.Equal(t, "Hello everyone", d.SentenceSentiments[0].Sentence)
	assert.Equal(t, "Thank you", d.SentenceSentiments[4].Sentence)
	assert.Nil(t, d.SpellingSuggestions)
}

func TestPipeline_BlankTranscript(t *testing.T) {
	t.Parallel()

	obs := &recordingObserver{}
	p := newTestPipeline(WithObserver(obs))
	for _, in := range []string{"", "   ", "\n\t "} {
		res, err := p.Score(in, 52)
		require.Error(t, err)
		assert.Nil(t, res)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, MsgEmptyTranscript, ve.Message)
		assert.True(t, IsValidation(err))
	}
	assert.Len(t, obs.got, 3)
	assert.Equal(t, OutcomeValidationError, obs.got[0].outcome)
}

// Text with no words and no sentences falls back on every sentinel branch.
func TestPipeline_NoWords(t *testing.T) {
	t.Parallel()

	res, err := newTestPipeline().Score(" ... ", 52)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		rubric.Salutation:      0,
		rubric.KeywordPresence: 0,
		rubric.Flow:            0,
		rubric.SpeechRate:      2,
		rubric.Grammar:         2,
		rubric.Vocabulary:      2,
		rubric.FillerWords:     15,
		rubric.Sentiment:       3,
	}, res.CriteriaScores.Map())
	assert.Equal(t, 24.0, res.OverallScore)

	d := res.DetailedAnalysis
	assert.Zero(t, d.WPM)
	assert.Zero(t, d.ErrorRate)
	assert.Zero(t, d.TTR)
	assert.Zero(t, d.FillerRate)
	assert.Empty(t, d.SentenceSentiments)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"misspelled_words":[]`)
	assert.Contains(t, string(raw), `"sentence_sentiments":[]`)
	assert.Contains(t, string(raw), `"filler_words_found":[]`)
}

func TestPipeline_ZeroDuration(t *testing.T) {
	t.Parallel()

	res, err := newTestPipeline().Score(sample, 0)
	require.NoError(t, err)

	v, _ := res.CriteriaScores.Get(rubric.SpeechRate)
	assert.Equal(t, 2, v)
	assert.Zero(t, res.DetailedAnalysis.WPM)
}

func TestPipeline_ComputationError(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	obs := &recordingObserver{}
	p := NewPipeline(rubric.Default(), panicLexicon{}, fakeSentiment{}, logger, WithObserver(obs))

	res, err := p.Score(sample, 52)
	require.Error(t, err)
	assert.Nil(t, res)

	var ce *ComputationError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, err.Error(), "dictionary unavailable")
	assert.False(t, IsValidation(err))

	require.Len(t, obs.got, 1)
	assert.Equal(t, OutcomeComputationError, obs.got[0].outcome)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestPipeline_Suggestions(t *testing.T) {
	t.Parallel()

	sug := fakeSuggester{"zed": {"zen", "zee", "red"}}
	p := NewPipeline(rubric.Default(), fakeLexicon{"zed": true, "qux": true}, fakeSentiment{}, nil, WithSuggestions(sug, 2))

	res, err := p.Score("Hello zed. Qux zed. Thank you.", 52)
	require.NoError(t, err)
	assert.Equal(t, []string{"zed", "qux"}, res.DetailedAnalysis.MisspelledWords)
	assert.Equal(t, map[string][]string{"zed": {"zen", "zee"}}, res.DetailedAnalysis.SpellingSuggestions)

	p = NewPipeline(rubric.Default(), fakeLexicon{"zed": true}, fakeSentiment{}, nil, WithSuggestions(sug, 0))
	res, err = p.Score("Hello zed.", 52)
	require.NoError(t, err)
	assert.Nil(t, res.DetailedAnalysis.SpellingSuggestions)
}

func TestPipeline_ObserverOK(t *testing.T) {
	t.Parallel()

	obs := &recordingObserver{}
	_, err := newTestPipeline(WithObserver(obs)).Score(sample, 13)
	require.NoError(t, err)
	assert.Equal(t, []observation{{OutcomeOK, 77.0}}, obs.got)
}

func TestPipeline_Properties(t *testing.T) {
	t.Parallel()

	p := newTestPipeline()
	inputs := []string{
		"x",
		"um uh um uh so so like",
		sample,
		"I am excited. Hello. My name is Sam. I enjoy my family. My dream is big. Thanks.",
		"Sam sam sam sam sam sam sam sam sam sam",
	}
	for _, in := range inputs {
		for _, d := range []int{-5, 0, 1, 13, 52, 3600} {
			res, err := p.Score(in, d)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, res.OverallScore, 0.0)
			assert.LessOrEqual(t, res.OverallScore, 100.0)
			for _, c := range res.Criteria() {
				assert.GreaterOrEqual(t, c.RawScore, 0, c.Name)
				assert.LessOrEqual(t, c.RawScore, c.MaxWeight, c.Name)
			}
			assert.Equal(t, 100, res.Weights.Sum())
			assert.Equal(t, roundTo(float64(res.CriteriaScores.Sum()), 1), res.OverallScore)
		}
	}
}

func TestPipeline_DeterministicAndConcurrent(t *testing.T) {
	t.Parallel()

	p := newTestPipeline()
	first, err := p.Score(sample, 52)
	require.NoError(t, err)
	want, err := json.Marshal(first)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				res, err := p.Score(sample, 52)
				if !assert.NoError(t, err) {
					return
				}
				got, err := json.Marshal(res)
				assert.NoError(t, err)
				assert.Equal(t, string(want), string(got))
			}
		}()
	}
	wg.Wait()
}

func TestAggregate_RejectsOutOfRange(t *testing.T) {
	t.Parallel()

	r := rubric.Default()
	raw := map[string]int{}
	for _, c := range r.Criteria {
		raw[c.Name] = 0
	}
	raw[rubric.Salutation] = 6

	res, err := aggregate(r, raw, 0, Diagnostics{})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "Salutation score 6 outside [0,5]")

	delete(raw, rubric.Salutation)
	_, err = aggregate(r, raw, 0, Diagnostics{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no score for Salutation")
}
