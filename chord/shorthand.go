package chord

import (
	"errors"
	"fmt"

	"github.com/jsphweid/harmonics/util"
)

var ErrUnknownShorthand = errors.New("unknown chord shorthand")

// abbreviation -> description. Several abbreviations share a description.
var shorthands = map[string]string{
	// Triads
	"m":   "minor triad",
	"M":   "major triad",
	"":    "major triad",
	"dim": "diminished triad",

	// Augmented chords
	"aug":  "augmented triad",
	"+":    "augmented triad",
	"7#5":  "augmented minor seventh",
	"M7+5": "augmented minor seventh",
	"M7+":  "augmented major seventh",
	"m7+":  "augmented minor seventh",
	"7+":   "augmented major seventh",

	// Suspended chords
	"sus47":  "suspended seventh",
	"sus4":   "suspended fourth triad",
	"sus2":   "suspended second triad",
	"sus":    "suspended fourth triad",
	"11":     "eleventh",
	"sus4b9": "suspended fourth ninth",
	"susb9":  "suspended fourth ninth",

	// Sevenths
	"m7":   "minor seventh",
	"M7":   "major seventh",
	"dom7": "dominant seventh",
	"7":    "dominant seventh",
	"m7b5": "half diminished seventh",
	"dim7": "diminished seventh",
	"m/M7": "minor/major seventh",
	"mM7":  "minor/major seventh",

	// Sixths
	"m6":  "minor sixth",
	"M6":  "major sixth",
	"6":   "major sixth",
	"6/7": "dominant sixth",
	"67":  "dominant sixth",
	"6/9": "sixth ninth",
	"69":  "sixth ninth",

	// Ninths
	"9":   "dominant ninth",
	"7b9": "dominant flat ninth",
	"7#9": "dominant sharp ninth",
	"M9":  "major ninth",
	"m9":  "minor ninth",

	// Elevenths
	"7#11": "lydian dominant seventh",
	"m11":  "minor eleventh",

	// Thirteenths
	"M13": "major thirteenth",
	"m13": "minor thirteenth",
	"13":  "dominant thirteenth",

	// Altered
	"7b5": "dominant flat five",

	// Special
	"hendrix": "hendrix chord",
	"7b12":    "hendrix chord",
	"5":       "perfect fifth",
}

var builders = map[string]builderFunc{
	"minor triad":             MinorTriad,
	"major triad":             MajorTriad,
	"diminished triad":        DiminishedTriad,
	"augmented triad":         AugmentedTriad,
	"augmented minor seventh": AugmentedMinorSeventh,
	"augmented major seventh": AugmentedMajorSeventh,
	"suspended seventh":       SuspendedSeventh,
	"suspended fourth triad":  SuspendedFourthTriad,
	"suspended second triad":  SuspendedSecondTriad,
	"eleventh":                Eleventh,
	"suspended fourth ninth":  SuspendedFourthNinth,
	"minor seventh":           MinorSeventh,
	"major seventh":           MajorSeventh,
	"dominant seventh":        DominantSeventh,
	"half diminished seventh": HalfDiminishedSeventh,
	"diminished seventh":      DiminishedSeventh,
	"minor/major seventh":     MinorMajorSeventh,
	"minor sixth":             MinorSixth,
	"major sixth":             MajorSixth,
	"dominant sixth":          DominantSixth,
	"sixth ninth":             SixthNinth,
	"dominant ninth":          DominantNinth,
	"dominant flat ninth":     DominantFlatNinth,
	"dominant sharp ninth":    DominantSharpNinth,
	"major ninth":             MajorNinth,
	"minor ninth":             MinorNinth,
	"lydian dominant seventh": LydianDominantSeventh,
	"minor eleventh":          MinorEleventh,
	"major thirteenth":        MajorThirteenth,
	"minor thirteenth":        MinorThirteenth,
	"dominant thirteenth":     DominantThirteenth,
	"dominant flat five":      DominantFlatFive,
	"hendrix chord":           HendrixChord,
	"perfect fifth":           PowerChord,
}

// Meaning returns the description of a chord abbreviation such as "m7b5".
func Meaning(shorthand string) (string, bool) {
	res, ok := shorthands[shorthand]
	return res, ok
}

// Shorthands returns every known abbreviation, sorted.
func Shorthands() []string {
	return util.SortedKeys(shorthands)
}

// Build builds the chord named by shorthand on root, so Build("C", "m7") is
// the C minor seventh.
func Build(root, shorthand string) (Chord, error) {
	desc, ok := shorthands[shorthand]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShorthand, shorthand)
	}
	return builders[desc](root)
}

// SplitSymbol splits a chord symbol like "Bbm7" into its root and shorthand.
// The root is the leading letter and any sharps or flats after it.
func SplitSymbol(symbol string) (root, shorthand string) {
	if symbol == "" {
		return "", ""
	}
	i := 1
	for i < len(symbol) && (symbol[i] == '#' || symbol[i] == 'b') {
		i++
	}
	return symbol[:i], symbol[i:]
}

// FromSymbol builds the chord written as symbol, for example "F#7" or "Cm/M7".
func FromSymbol(symbol string) (Chord, error) {
	root, shorthand := SplitSymbol(symbol)
	return Build(root, shorthand)
}
