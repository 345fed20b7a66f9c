package engine

import "errors"

// Errors returned by the word engine. Callers match them with errors.Is.
var (
	// ErrCorpusUnavailable is returned when the dictionary source cannot be opened or read.
	ErrCorpusUnavailable = errors.New("engine: corpus unavailable")

	// ErrCorpusExhausted is returned when every corpus word has already been used.
	ErrCorpusExhausted = errors.New("engine: corpus exhausted")

	// ErrInsufficientCorpus is returned when the corpus holds fewer distinct
	// words than a requested set size.
	ErrInsufficientCorpus = errors.New("engine: insufficient corpus")

	// ErrInvalidCharacter is returned when scoring a word with a letter outside the value table.
	ErrInvalidCharacter = errors.New("engine: invalid character")
)
