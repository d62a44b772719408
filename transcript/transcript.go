// Package transcript turns a raw speech transcript into the sentence and
// word views every rubric criterion works from.
package transcript

import (
	"regexp"
	"strings"
)

// wordPattern is the Unicode reading of \w+: letters, numbers and underscore.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Text is the normalized form of a transcript. It is built once per request
// by Normalize and never modified afterwards.
type Text struct {
	Original  string   // whitespace-collapsed input
	Sentences []string // trimmed, non-empty, in spoken order
	Words     []string // lowercase tokens, in spoken order
}

// Normalize collapses whitespace, splits sentences on '.' and tokenizes
// lowercase words. An empty input yields an empty Text, never an error.
func Normalize(raw string) *Text {
	collapsed := strings.Join(strings.Fields(raw), " ")

	var sentences []string
	for _, s := range strings.Split(collapsed, ".") {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}

	return &Text{
		Original:  collapsed,
		Sentences: sentences,
		Words:     wordPattern.FindAllString(strings.ToLower(collapsed), -1),
	}
}

func (t *Text) WordCount() int     { return len(t.Words) }
func (t *Text) SentenceCount() int { return len(t.Sentences) }

// Joined returns all sentences joined by a single space. Sentence-terminating
// periods are not restored.
func (t *Text) Joined() string {
	return strings.Join(t.Sentences, " ")
}
