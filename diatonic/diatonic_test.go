package diatonic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotes(t *testing.T) {
	cases := map[string][]string{
		"C":   {"C", "D", "E", "F", "G", "A", "B"},
		"F":   {"F", "G", "A", "Bb", "C", "D", "E"},
		"C#":  {"C#", "D#", "E#", "F#", "G#", "A#", "B#"},
		"Cb":  {"Cb", "Db", "Eb", "Fb", "Gb", "Ab", "Bb"},
		"Am":  {"A", "B", "C", "D", "E", "F", "G"},
		"Fm":  {"F", "G", "Ab", "Bb", "C", "Db", "Eb"},
		"G#m": {"G#", "A#", "B", "C#", "D#", "E", "F#"},
	}

	for key, want := range cases {
		t.Run(key, func(t *testing.T) {
			got, err := Notes(key)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestEveryKeyHasSevenDistinctLetters(t *testing.T) {
	keys := append(append([]string{}, MajorKeys...), MinorKeys...)
	for _, key := range keys {
		notes, err := Notes(key)
		require.NoError(t, err, key)
		require.Len(t, notes, 7, key)

		seen := make(map[byte]bool)
		for _, n := range notes {
			seen[n[0]] = true
		}
		assert.Len(t, seen, 7, key)
	}
}

func TestNotesRejectsInvalidKey(t *testing.T) {
	for _, key := range []string{"", "c", "H", "Cbm", "C major"} {
		_, err := Notes(key)
		assert.ErrorIs(t, err, ErrInvalidKey, key)
	}
}
