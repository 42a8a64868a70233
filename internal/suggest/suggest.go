// Package suggest picks a random task idea from a fixed list.
package suggest

import (
	"math/rand/v2"
	"time"
)

var phrases = [...]string{
	"Learn a new language",
	"Write a poem",
	"Try a new recipe",
	"Take a nature walk",
	"Read a book",
	"Learn to play a musical instrument",
	"Start a journal",
	"Learn a magic trick",
}

// Phrases returns a copy of the candidate list.
func Phrases() []string {
	out := make([]string, len(phrases))
	copy(out, phrases[:])
	return out
}

type Generator struct {
	rnd *rand.Rand
}

func New(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// Default returns a generator seeded from the clock.
func Default() *Generator {
	now := uint64(time.Now().UnixNano())
	return New(rand.NewPCG(now, now>>17|1))
}

// Next returns one phrase, uniformly distributed over Phrases.
func (g *Generator) Next() string {
	return phrases[g.rnd.IntN(len(phrases))]
}
