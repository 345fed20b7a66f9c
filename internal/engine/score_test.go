package engine

import (
	"errors"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cab", 7},
		{"quiz", 22},
		{"a", 1},
		{"jinx", 18},
		{"", 0},
	}

	for _, tc := range tests {
		got, err := Score(tc.word)
		if err != nil {
			t.Errorf("Score(%q) error: %v", tc.word, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Score(%q) = %d, want %d", tc.word, got, tc.want)
		}
	}
}

func TestScoreIdempotent(t *testing.T) {
	first, _ := Score("zebra")
	second, _ := Score("zebra")
	if first != second {
		t.Errorf("Score(zebra) = %d then %d", first, second)
	}
}

func TestScoreInvalidCharacter(t *testing.T) {
	for _, w := range []string{"can't", "a1", "Cab", "e-mail"} {
		if _, err := Score(w); !errors.Is(err, ErrInvalidCharacter) {
			t.Errorf("Score(%q) error = %v, want ErrInvalidCharacter", w, err)
		}
	}
}

func TestLetterValue(t *testing.T) {
	if v, ok := LetterValue('u'); !ok || v != 1 {
		t.Errorf("LetterValue('u') = %d, %v, want 1, true", v, ok)
	}
	if _, ok := LetterValue('?'); ok {
		t.Error("LetterValue('?') reported a scoring letter")
	}
}
