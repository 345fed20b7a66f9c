package engine

import "fmt"

// letterValues holds the points awarded per letter of an accepted word.
var letterValues = map[rune]int{
	'e': 1, 'a': 1, 'i': 1, 'o': 1, 'n': 1, 'r': 1, 't': 1, 'l': 1, 's': 1, 'u': 1,
	'd': 2, 'g': 2,
	'b': 3, 'c': 3, 'm': 3, 'p': 3,
	'f': 4, 'h': 4, 'v': 4, 'w': 4, 'y': 4,
	'k': 5,
	'j': 8, 'x': 8,
	'q': 10, 'z': 10,
}

// LetterValue returns the points for r and whether r is a scoring letter.
func LetterValue(r rune) (int, bool) {
	v, ok := letterValues[r]
	return v, ok
}

// Score returns the sum of letter values of word.
func Score(word string) (int, error) {
	total := 0
	for _, r := range word {
		v, ok := letterValues[r]
		if !ok {
			return 0, fmt.Errorf("%w: %q in %q", ErrInvalidCharacter, r, word)
		}
		total += v
	}
	return total, nil
}
