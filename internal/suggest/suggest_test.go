package suggest

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhrases_FixedEightEntries(t *testing.T) {
	got := Phrases()
	require.Len(t, got, 8)
	assert.Equal(t, "Learn a new language", got[0])
	assert.Equal(t, "Learn a magic trick", got[7])

	got[0] = "mutated"
	assert.Equal(t, "Learn a new language", Phrases()[0], "Phrases must return a copy")
}

func TestNext_OnlyReturnsKnownPhrasesAndIsRoughlyUniform(t *testing.T) {
	g := New(rand.NewPCG(1, 2))
	known := map[string]bool{}
	for _, p := range Phrases() {
		known[p] = true
	}

	const n = 80000
	counts := map[string]int{}
	for i := 0; i < n; i++ {
		s := g.Next()
		require.True(t, known[s], "unexpected phrase %q", s)
		counts[s]++
	}

	require.Len(t, counts, 8)
	expected := float64(n) / 8
	for p, c := range counts {
		assert.InDelta(t, expected, float64(c), expected*0.05, "phrase %q drawn %d times", p, c)
	}
}

func TestNext_DeterministicForSeed(t *testing.T) {
	a := New(rand.NewPCG(7, 9))
	b := New(rand.NewPCG(7, 9))
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestCopierFunc(t *testing.T) {
	var got string
	var c Copier = CopierFunc(func(s string) error {
		got = s
		return nil
	})
	require.NoError(t, c.Copy("Read a book"))
	assert.Equal(t, "Read a book", got)
}
