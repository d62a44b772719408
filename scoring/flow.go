package scoring

import (
	"strings"

	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/rubric"
	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/transcript"
)

// flowState tracks the four structural markers of an introduction across a
// single left-to-right pass over the sentences.
type flowState struct {
	rules *rubric.FlowRules
	total int

	salutation bool
	basic      bool
	additional bool
	closing    bool
}

func (f *flowState) step(i int, sentence string) {
	s := strings.ToLower(sentence)
	if i < f.rules.SalutationWindow && f.rules.Salutation.In(s) {
		f.salutation = true
	}
	if f.rules.BasicDetails.In(s) {
		f.basic = true
	}
	// additional details only count once basic details have been given,
	// in this sentence or an earlier one
	if f.basic && f.rules.AdditionalDetails.In(s) {
		f.additional = true
	}
	if i >= f.total-f.rules.ClosingWindow && f.rules.Closing.In(s) {
		f.closing = true
	}
}

func (f *flowState) complete() bool {
	return f.salutation && f.basic && f.additional && f.closing
}

// ScoreFlow is all-or-nothing: the full score when the transcript opens
// with a greeting, gives basic then additional details and closes with
// thanks, otherwise zero.
func ScoreFlow(r *rubric.Rubric, t *transcript.Text) int {
	if t.SentenceCount() < r.Flow.MinSentences {
		return 0
	}
	f := flowState{rules: &r.Flow, total: t.SentenceCount()}
	for i, s := range t.Sentences {
		f.step(i, s)
	}
	if f.complete() {
		return r.Flow.Score
	}
	return 0
}
