package engine

// Validator checks guesses against a letter pool and the corpus.
type Validator struct {
	corpus *Corpus
}

// NewValidator creates a validator backed by c.
func NewValidator(c *Corpus) *Validator {
	return &Validator{corpus: c}
}

// Spellable reports whether word can be spelled from the letters in pool,
// using each pool letter at most once.
func Spellable(word, pool string) bool {
	return dominated(CountLetters(word), CountLetters(pool))
}

// Check reports whether word is a corpus word that can be spelled from pool.
func (v *Validator) Check(word, pool string) bool {
	return Spellable(word, pool) && v.corpus.Contains(word)
}

// ValidWordsFor returns every corpus entry that passes Check against pool,
// in corpus order.
func (v *Validator) ValidWordsFor(pool string) []string {
	have := CountLetters(pool)

	var out []string
	for _, w := range v.corpus.words {
		if dominated(CountLetters(w), have) {
			out = append(out, w)
		}
	}
	return out
}

func dominated(need, have Letters) bool {
	for r, n := range need {
		if n > have[r] {
			return false
		}
	}
	return true
}
