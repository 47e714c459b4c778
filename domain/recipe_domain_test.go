package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDifficulty(t *testing.T) {
	cases := map[string]string{
		"fácil":            DifficultyEasy,
		"Muy fácil":        DifficultyEasy,
		"FACIL":            DifficultyEasy,
		"easy":             DifficultyEasy,
		"media":            DifficultyMedium,
		"Dificultad media": DifficultyMedium,
		"Intermedio":       DifficultyMedium,
		"Difícil":          DifficultyHard,
		"muy dificil":      DifficultyHard,
		"hard":             DifficultyHard,
		"":                 DifficultyOther,
		"chef":             DifficultyOther,
	}
	for in, want := range cases {
		assert.Equal(t, want, ClassifyDifficulty(in), in)
	}
}
