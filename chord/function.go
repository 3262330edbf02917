package chord

import (
	"errors"
	"fmt"

	"github.com/jsphweid/harmonics/util"
)

var ErrUnknownNumeral = errors.New("unknown roman numeral")

// Chords by harmonic function. Each indexes the cached triads or sevenths of
// key, tonic being the first degree. The returned chord is shared; do not
// modify it.

func Tonic(key string) (Chord, error)        { return std.triadAt(key, 0) }
func Tonic7(key string) (Chord, error)       { return std.seventhAt(key, 0) }
func Supertonic(key string) (Chord, error)   { return std.triadAt(key, 1) }
func Supertonic7(key string) (Chord, error)  { return std.seventhAt(key, 1) }
func Mediant(key string) (Chord, error)      { return std.triadAt(key, 2) }
func Mediant7(key string) (Chord, error)     { return std.seventhAt(key, 2) }
func Subdominant(key string) (Chord, error)  { return std.triadAt(key, 3) }
func Subdominant7(key string) (Chord, error) { return std.seventhAt(key, 3) }
func Dominant(key string) (Chord, error)     { return std.triadAt(key, 4) }
func Dominant7(key string) (Chord, error)    { return std.seventhAt(key, 4) }
func Submediant(key string) (Chord, error)   { return std.triadAt(key, 5) }
func Submediant7(key string) (Chord, error)  { return std.seventhAt(key, 5) }
func Subtonic(key string) (Chord, error)     { return std.triadAt(key, 6) }
func Subtonic7(key string) (Chord, error)    { return std.seventhAt(key, 6) }

// Roman numeral aliases. Case does not select major or minor: "ii" and "II"
// are both the supertonic. The lower case forms are only reachable through
// Numeral.

func I(key string) (Chord, error)    { return Tonic(key) }
func I7(key string) (Chord, error)   { return Tonic7(key) }
func II(key string) (Chord, error)   { return Supertonic(key) }
func II7(key string) (Chord, error)  { return Supertonic7(key) }
func III(key string) (Chord, error)  { return Mediant(key) }
func III7(key string) (Chord, error) { return Mediant7(key) }
func IV(key string) (Chord, error)   { return Subdominant(key) }
func IV7(key string) (Chord, error)  { return Subdominant7(key) }
func V(key string) (Chord, error)    { return Dominant(key) }
func V7(key string) (Chord, error)   { return Dominant7(key) }
func VI(key string) (Chord, error)   { return Submediant(key) }
func VI7(key string) (Chord, error)  { return Submediant7(key) }
func VII(key string) (Chord, error)  { return Subtonic(key) }
func VII7(key string) (Chord, error) { return Subtonic7(key) }

type numeral struct {
	degree  int
	seventh bool
}

var numerals = map[string]numeral{
	"I":    {0, false},
	"I7":   {0, true},
	"ii":   {1, false},
	"II":   {1, false},
	"ii7":  {1, true},
	"II7":  {1, true},
	"iii":  {2, false},
	"III":  {2, false},
	"iii7": {2, true},
	"III7": {2, true},
	"IV":   {3, false},
	"IV7":  {3, true},
	"V":    {4, false},
	"V7":   {4, true},
	"vi":   {5, false},
	"VI":   {5, false},
	"vi7":  {5, true},
	"VI7":  {5, true},
	"vii":  {6, false},
	"VII":  {6, false},
	// the triad, unlike every other 7 numeral
	"vii7": {6, false},
	"VII7": {6, true},
}

// Numerals returns every numeral accepted by Numeral, sorted.
func Numerals() []string {
	return util.SortedKeys(numerals)
}

// Numeral returns the chord named by a roman numeral such as "V7" or "ii" in
// key.
func (b *Builder) Numeral(name, key string) (Chord, error) {
	num, ok := numerals[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNumeral, name)
	}
	if name == "vii7" && b.fixSeventhNumeral {
		num.seventh = true
	}
	if num.seventh {
		return b.seventhAt(key, num.degree)
	}
	return b.triadAt(key, num.degree)
}

func Numeral(name, key string) (Chord, error) {
	return std.Numeral(name, key)
}
