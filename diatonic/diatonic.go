package diatonic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/harmonics/note"
)

var ErrInvalidKey = errors.New("invalid key")

var MajorKeys = []string{"Cb", "Gb", "Db", "Ab", "Eb", "Bb", "F", "C", "G", "D", "A", "E", "B", "F#", "C#"}
var MinorKeys = []string{"Abm", "Ebm", "Bbm", "Fm", "Cm", "Gm", "Dm", "Am", "Em", "Bm", "F#m", "C#m", "G#m", "D#m", "A#m"}

// semitones above the tonic for degrees 2 through 7
var majorSteps = [6]int{2, 4, 5, 7, 9, 11}
var minorSteps = [6]int{2, 3, 5, 7, 8, 10}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

func IsValidKey(key string) bool {
	return contains(MajorKeys, key) || contains(MinorKeys, key)
}

// Notes returns the seven notes of key, starting on the tonic.
func Notes(key string) ([]string, error) {
	if !IsValidKey(key) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	steps := majorSteps
	tonic := key
	if strings.HasSuffix(key, "m") {
		steps = minorSteps
		tonic = strings.TrimSuffix(key, "m")
	}

	res := make([]string, 0, 7)
	res = append(res, tonic)
	for i, semitones := range steps {
		n, err := note.Above(tonic, i+1, semitones)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}
