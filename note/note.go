package note

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownNote = errors.New("unknown note")

const letters = "CDEFGAB"

var pitchClasses = map[byte]int{
	'C': 0,
	'D': 2,
	'E': 4,
	'F': 5,
	'G': 7,
	'A': 9,
	'B': 11,
}

func unknown(n string) error {
	return fmt.Errorf("%w: %q", ErrUnknownNote, n)
}

// IsValid reports whether n is a letter A-G followed only by sharps or flats.
func IsValid(n string) bool {
	if len(n) == 0 {
		return false
	}
	if _, ok := pitchClasses[n[0]]; !ok {
		return false
	}
	for i := 1; i < len(n); i++ {
		if n[i] != '#' && n[i] != 'b' {
			return false
		}
	}
	return true
}

// ToInt returns the pitch class of n, C being 0 and B being 11.
func ToInt(n string) (int, error) {
	if !IsValid(n) {
		return 0, unknown(n)
	}
	res := pitchClasses[n[0]]
	for i := 1; i < len(n); i++ {
		if n[i] == '#' {
			res++
		} else {
			res--
		}
	}
	return mod12(res), nil
}

// Augment raises n by one chromatic step, cancelling a flat if there is one.
func Augment(n string) string {
	if strings.HasSuffix(n, "b") {
		return n[:len(n)-1]
	}
	return n + "#"
}

// Diminish lowers n by one chromatic step, cancelling a sharp if there is one.
func Diminish(n string) string {
	if strings.HasSuffix(n, "#") {
		return n[:len(n)-1]
	}
	return n + "b"
}

// Above spells the note that is steps letters and semitones half steps above
// root. The letter is fixed by steps; accidentals are added to it until the
// distance matches, so Above("C", 2, 3) is "Eb" and not "D#".
func Above(root string, steps, semitones int) (string, error) {
	from, err := ToInt(root)
	if err != nil {
		return "", err
	}
	idx := strings.IndexByte(letters, root[0])
	res := string(letters[(idx+steps)%len(letters)])

	diff := mod12(semitones - mod12(pitchClasses[res[0]]-from))
	if diff > 6 {
		diff -= 12
	}
	for ; diff > 0; diff-- {
		res = Augment(res)
	}
	for ; diff < 0; diff++ {
		res = Diminish(res)
	}
	return res, nil
}

func mod12(n int) int {
	return ((n % 12) + 12) % 12
}
