// Package lexicon implements the spelling dictionary used as the grammar
// proxy: a word list lookup with Damerau-Levenshtein / Jaro-Winkler ranked
// suggestions for unknown words.
//
// A Dictionary is read-only after New returns; all methods are safe for
// concurrent use.
package lexicon

import (
	"bufio"
	"bytes"
	"compress/gzip"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/antzucaro/matchr"
)

const (
	defaultMinSimilarity = 0.8
	maxEditDistance      = 2
)

//go:embed data/words.txt.gz
var embeddedWords []byte

// Option configures a Dictionary.
type Option func(*options)

type options struct {
	files         []string
	words         []string
	skipEmbedded  bool
	minSimilarity float64
}

// WithFiles adds word-list files (one word per line, '#' starts a comment).
func WithFiles(paths ...string) Option {
	return func(o *options) { o.files = append(o.files, paths...) }
}

// WithWords adds individual words.
func WithWords(words ...string) Option {
	return func(o *options) { o.words = append(o.words, words...) }
}

// WithoutEmbedded starts from an empty dictionary instead of the bundled
// English word list.
func WithoutEmbedded() Option {
	return func(o *options) { o.skipEmbedded = true }
}

// WithMinSimilarity sets the Jaro-Winkler floor a suggestion must reach.
// Default: 0.8.
func WithMinSimilarity(v float64) Option {
	return func(o *options) { o.minSimilarity = v }
}

type Dictionary struct {
	words         map[string]struct{}
	minSimilarity float64
}

// New builds a dictionary from the embedded word list plus any extra
// sources given in opts.
func New(opts ...Option) (*Dictionary, error) {
	o := options{minSimilarity: defaultMinSimilarity}
	for _, fn := range opts {
		fn(&o)
	}

	d := &Dictionary{
		words:         make(map[string]struct{}, 40000),
		minSimilarity: o.minSimilarity,
	}
	if !o.skipEmbedded {
		zr, err := gzip.NewReader(bytes.NewReader(embeddedWords))
		if err != nil {
			return nil, fmt.Errorf("lexicon: embedded word list: %w", err)
		}
		if err := d.load(zr); err != nil {
			return nil, fmt.Errorf("lexicon: embedded word list: %w", err)
		}
	}
	for _, path := range o.files {
		if err := d.loadFile(path); err != nil {
			return nil, err
		}
	}
	for _, w := range o.words {
		d.add(w)
	}
	if len(d.words) == 0 {
		return nil, errors.New("lexicon: dictionary is empty")
	}
	return d, nil
}

func (d *Dictionary) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("lexicon: open %s: %w", path, err)
	}
	defer f.Close()
	if err := d.load(f); err != nil {
		return fmt.Errorf("lexicon: read %s: %w", path, err)
	}
	return nil
}

func (d *Dictionary) load(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		d.add(line)
	}
	return sc.Err()
}

func (d *Dictionary) add(word string) {
	if w := strings.ToLower(strings.TrimSpace(word)); w != "" {
		d.words[w] = struct{}{}
	}
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return len(d.words) }

// IsKnown reports whether token is a dictionary word. Numbers are always
// known.
func (d *Dictionary) IsKnown(token string) bool {
	t := strings.ToLower(token)
	if _, ok := d.words[t]; ok {
		return true
	}
	return isNumber(t)
}

// Unknown returns the distinct unknown tokens in order of first appearance.
func (d *Dictionary) Unknown(tokens []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, t := range tokens {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if !d.IsKnown(t) {
			out = append(out, t)
		}
	}
	return out
}

// Suggest returns up to n known words close to word, ranked by Jaro-Winkler
// similarity. Candidates must be within a Damerau-Levenshtein distance of 2
// and reach the configured similarity floor.
func (d *Dictionary) Suggest(word string, n int) []string {
	word = strings.ToLower(strings.TrimSpace(word))
	if n <= 0 || word == "" {
		return nil
	}

	type candidate struct {
		word     string
		distance int
		score    float64
	}
	var cands []candidate
	wl := utf8.RuneCountInString(word)
	for w := range d.words {
		if w == word {
			continue
		}
		if diff := utf8.RuneCountInString(w) - wl; diff > maxEditDistance || diff < -maxEditDistance {
			continue
		}
		dist := matchr.DamerauLevenshtein(word, w)
		if dist > maxEditDistance {
			continue
		}
		score := matchr.JaroWinkler(word, w, false)
		if score < d.minSimilarity {
			continue
		}
		cands = append(cands, candidate{word: w, distance: dist, score: score})
	}

	sort.Slice(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.distance != b.distance {
			return a.distance < b.distance
		}
		return a.word < b.word
	})
	if len(cands) > n {
		cands = cands[:n]
	}
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.word
	}
	return out
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}
