// Package interval finds the note a named interval above a root, either by a
// fixed number of semitones or by scale degree within a key.
package interval

import (
	"github.com/jsphweid/harmonics/diatonic"
	"github.com/jsphweid/harmonics/note"
)

// Measure returns the ascending distance in semitones from a to b, 0 to 11.
func Measure(a, b string) (int, error) {
	x, err := note.ToInt(a)
	if err != nil {
		return 0, err
	}
	y, err := note.ToInt(b)
	if err != nil {
		return 0, err
	}
	return ((y-x)%12 + 12) % 12, nil
}

func MinorSecond(n string) (string, error)   { return note.Above(n, 1, 1) }
func MajorSecond(n string) (string, error)   { return note.Above(n, 1, 2) }
func MinorThird(n string) (string, error)    { return note.Above(n, 2, 3) }
func MajorThird(n string) (string, error)    { return note.Above(n, 2, 4) }
func PerfectFourth(n string) (string, error) { return note.Above(n, 3, 5) }
func MinorFifth(n string) (string, error)    { return note.Above(n, 4, 6) }
func PerfectFifth(n string) (string, error)  { return note.Above(n, 4, 7) }
func MinorSixth(n string) (string, error)    { return note.Above(n, 5, 8) }
func MajorSixth(n string) (string, error)    { return note.Above(n, 5, 9) }
func MinorSeventh(n string) (string, error)  { return note.Above(n, 6, 10) }
func MajorSeventh(n string) (string, error)  { return note.Above(n, 6, 11) }

// MajorFifth is the perfect fifth. Augment it for the augmented fifth.
func MajorFifth(n string) (string, error) { return PerfectFifth(n) }

// Interval returns the note degrees steps above start in the scale of key.
// Only the letter of start is used to locate it in the scale.
func Interval(key, start string, degrees int) (string, error) {
	if _, err := note.ToInt(start); err != nil {
		return "", err
	}
	scale, err := diatonic.Notes(key)
	if err != nil {
		return "", err
	}

	var idx int
	for i, n := range scale {
		if n[0] == start[0] {
			idx = i
			break
		}
	}
	return scale[(idx+degrees)%len(scale)], nil
}

func Second(n, key string) (string, error)  { return Interval(key, n, 1) }
func Third(n, key string) (string, error)   { return Interval(key, n, 2) }
func Fourth(n, key string) (string, error)  { return Interval(key, n, 3) }
func Fifth(n, key string) (string, error)   { return Interval(key, n, 4) }
func Sixth(n, key string) (string, error)   { return Interval(key, n, 5) }
func Seventh(n, key string) (string, error) { return Interval(key, n, 6) }
