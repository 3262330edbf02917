package note

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert := assert.New(t)
	for _, n := range []string{"C", "F#", "Bb", "Bbb", "E##"} {
		assert.True(IsValid(n), n)
	}
	for _, n := range []string{"", "H", "c", "C#b#x", "Cm"} {
		assert.False(IsValid(n), n)
	}
}

func TestToInt(t *testing.T) {
	cases := map[string]int{
		"C":   0,
		"C#":  1,
		"Db":  1,
		"E":   4,
		"Fb":  4,
		"B#":  0,
		"Cb":  11,
		"Bbb": 9,
	}

	for n, want := range cases {
		t.Run(fmt.Sprintf("ToInt(%v)", n), func(t *testing.T) {
			got, err := ToInt(n)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestToIntRejectsUnknownNote(t *testing.T) {
	_, err := ToInt("X")
	assert.ErrorIs(t, err, ErrUnknownNote)
}

func TestAugmentAndDiminish(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C#", Augment("C"))
	assert.Equal("B", Augment("Bb"))
	assert.Equal("Bbb", Diminish("Bb"))
	assert.Equal("F", Diminish("F#"))
}

func TestAbove(t *testing.T) {
	cases := []struct {
		root      string
		steps     int
		semitones int
		want      string
	}{
		{"C", 2, 3, "Eb"},
		{"C", 2, 4, "E"},
		{"C", 6, 10, "Bb"},
		{"F", 3, 5, "Bb"},
		{"G#", 2, 4, "B#"},
		{"Cb", 1, 2, "Db"},
		{"B", 4, 7, "F#"},
		{"E", 1, 1, "F"},
	}

	for _, c := range cases {
		name := fmt.Sprintf("%v + %v steps / %v semitones", c.root, c.steps, c.semitones)
		t.Run(name, func(t *testing.T) {
			got, err := Above(c.root, c.steps, c.semitones)
			assert.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}
