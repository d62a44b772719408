package lexicon

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSmall(t *testing.T, words ...string) *Dictionary {
	t.Helper()
	d, err := New(WithoutEmbedded(), WithWords(words...))
	require.NoError(t, err)
	return d
}

func TestNew_Embedded(t *testing.T) {
	t.Parallel()

	d, err := New()
	require.NoError(t, err)
	assert.Greater(t, d.Len(), 30000)

	for _, w := range []string{"hello", "my", "name", "is", "school", "family", "cricket", "i", "m", "thank"} {
		assert.True(t, d.IsKnown(w), w)
	}
	for _, w := range []string{"xqzv", "recieve", "teh", "helo"} {
		assert.False(t, d.IsKnown(w), w)
	}
}

func TestIsKnown_NumbersAndCase(t *testing.T) {
	t.Parallel()

	d := newSmall(t, "Hello")
	assert.True(t, d.IsKnown("hello"))
	assert.True(t, d.IsKnown("HELLO"))
	assert.True(t, d.IsKnown("2024"))
	assert.True(t, d.IsKnown("12"))
	assert.False(t, d.IsKnown("12th"))
	assert.False(t, d.IsKnown("world"))
}

func TestUnknown_DistinctFirstAppearance(t *testing.T) {
	t.Parallel()

	d := newSmall(t, "i", "am", "from")
	got := d.Unknown([]string{"i", "am", "zed", "from", "qux", "zed", "7", "qux", "abc"})
	assert.Equal(t, []string{"zed", "qux", "abc"}, got)
	assert.Empty(t, d.Unknown(nil))
	assert.Empty(t, d.Unknown([]string{"i", "am"}))
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	d := newSmall(t, "hello", "help", "halo", "world", "yellow")

	assert.Equal(t, []string{"hello", "help"}, d.Suggest("helo", 2))
	assert.Equal(t, []string{"hello", "help", "halo"}, d.Suggest("HELO", 5))
	assert.Nil(t, d.Suggest("helo", 0))
	assert.Nil(t, d.Suggest("", 3))
	assert.Empty(t, d.Suggest("zzzzzzzz", 3))
	assert.NotContains(t, d.Suggest("hello", 3), "hello")
}

func TestSuggest_MinSimilarity(t *testing.T) {
	t.Parallel()

	d, err := New(WithoutEmbedded(), WithWords("hello", "help", "halo"), WithMinSimilarity(0.9))
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, d.Suggest("helo", 3))
}

func TestNew_Files(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "extra.txt")
	require.NoError(t, os.WriteFile(path, []byte("# names\nPriyanka\n\n  Arjun  \n"), 0o644))

	d, err := New(WithoutEmbedded(), WithFiles(path))
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
	assert.True(t, d.IsKnown("priyanka"))
	assert.True(t, d.IsKnown("arjun"))

	_, err = New(WithFiles(filepath.Join(dir, "missing.txt")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestNew_EmptyDictionary(t *testing.T) {
	t.Parallel()

	_, err := New(WithoutEmbedded())
	require.Error(t, err)
}

func TestDictionary_ConcurrentReads(t *testing.T) {
	t.Parallel()

	d := newSmall(t, "hello", "world")
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = d.IsKnown("hello")
				_ = d.Unknown([]string{"hello", "wrld"})
				_ = d.Suggest("wrld", 1)
			}
		}()
	}
	wg.Wait()
}
