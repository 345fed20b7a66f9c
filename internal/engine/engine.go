package engine

import (
	"math/rand"
	"time"
)

// Engine bundles the read-only services built over one corpus.
type Engine struct {
	Corpus    *Corpus
	Selector  *Selector
	Validator *Validator
	Anagrams  *AnagramFinder
}

type options struct {
	seed        int64
	maxAttempts int
}

// Option configures an Engine.
type Option func(*options)

// WithSeed fixes the RNG seed. 0 seeds from the current time.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithMaxAttempts sets the random-draw budget of the selector.
func WithMaxAttempts(n int) Option {
	return func(o *options) { o.maxAttempts = n }
}

// New builds an engine over c.
func New(c *Corpus, opts ...Option) *Engine {
	o := options{maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(&o)
	}
	if o.seed == 0 {
		o.seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(o.seed))
	return &Engine{
		Corpus:    c,
		Selector:  NewSelector(c, rng, o.maxAttempts),
		Validator: NewValidator(c),
		Anagrams:  NewAnagramFinder(c),
	}
}
