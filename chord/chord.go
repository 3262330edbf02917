package chord

import (
	"github.com/jsphweid/harmonics/interval"
	"github.com/jsphweid/harmonics/note"
)

// Chord is a root followed by its chord tones in construction order. The
// order is functional, so altered tones are not guaranteed to ascend in pitch.
type Chord []string

type builderFunc func(root string) (Chord, error)

type intervalFunc func(root string) (string, error)

func build(root string, tones ...intervalFunc) (Chord, error) {
	res := make(Chord, 0, len(tones)+1)
	res = append(res, root)
	for _, tone := range tones {
		n, err := tone(root)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}

// extend appends tones computed from the root to the chord built by base.
func extend(base builderFunc, tones ...intervalFunc) builderFunc {
	return func(root string) (Chord, error) {
		res, err := base(root)
		if err != nil {
			return nil, err
		}
		for _, tone := range tones {
			n, err := tone(root)
			if err != nil {
				return nil, err
			}
			res = append(res, n)
		}
		return res, nil
	}
}

// replace swaps the tone at index of the chord built by base.
func replace(base builderFunc, index int, tone intervalFunc) builderFunc {
	return func(root string) (Chord, error) {
		res, err := base(root)
		if err != nil {
			return nil, err
		}
		n, err := tone(root)
		if err != nil {
			return nil, err
		}
		res[index] = n
		return res, nil
	}
}

func augmented(tone intervalFunc) intervalFunc {
	return func(root string) (string, error) {
		n, err := tone(root)
		if err != nil {
			return "", err
		}
		return note.Augment(n), nil
	}
}

func diminished(tone intervalFunc) intervalFunc {
	return func(root string) (string, error) {
		n, err := tone(root)
		if err != nil {
			return "", err
		}
		return note.Diminish(n), nil
	}
}

/* Triads */

func MajorTriad(root string) (Chord, error) {
	return build(root, interval.MajorThird, interval.PerfectFifth)
}

func MinorTriad(root string) (Chord, error) {
	return build(root, interval.MinorThird, interval.PerfectFifth)
}

func DiminishedTriad(root string) (Chord, error) {
	return build(root, interval.MinorThird, interval.MinorFifth)
}

func AugmentedTriad(root string) (Chord, error) {
	return build(root, interval.MajorThird, augmented(interval.MajorFifth))
}

// PowerChord is the root and perfect fifth, written "5".
func PowerChord(root string) (Chord, error) {
	return build(root, interval.PerfectFifth)
}

/* Sevenths */

func MajorSeventh(root string) (Chord, error) {
	return extend(MajorTriad, interval.MajorSeventh)(root)
}

func MinorSeventh(root string) (Chord, error) {
	return extend(MinorTriad, interval.MinorSeventh)(root)
}

func DominantSeventh(root string) (Chord, error) {
	return extend(MajorTriad, interval.MinorSeventh)(root)
}

func HalfDiminishedSeventh(root string) (Chord, error) {
	return extend(DiminishedTriad, interval.MinorSeventh)(root)
}

// MinorSeventhFlatFive is another name for HalfDiminishedSeventh.
func MinorSeventhFlatFive(root string) (Chord, error) {
	return HalfDiminishedSeventh(root)
}

// DiminishedSeventh uses the doubly flattened seventh, so C gives Bbb.
func DiminishedSeventh(root string) (Chord, error) {
	return extend(DiminishedTriad, diminished(interval.MinorSeventh))(root)
}

func MinorMajorSeventh(root string) (Chord, error) {
	return extend(MinorTriad, interval.MajorSeventh)(root)
}

/* Sixths */

func MinorSixth(root string) (Chord, error) {
	return extend(MinorTriad, interval.MajorSixth)(root)
}

func MajorSixth(root string) (Chord, error) {
	return extend(MajorTriad, interval.MajorSixth)(root)
}

// DominantSixth is the 6/7 chord: a major sixth with the minor seventh on top.
func DominantSixth(root string) (Chord, error) {
	return extend(MajorSixth, interval.MinorSeventh)(root)
}

// SixthNinth is a major sixth with the ninth, written as a second, on top.
func SixthNinth(root string) (Chord, error) {
	return extend(MajorSixth, interval.MajorSecond)(root)
}

/* Ninths */

func MinorNinth(root string) (Chord, error) {
	return extend(MinorSeventh, interval.MajorSecond)(root)
}

func MajorNinth(root string) (Chord, error) {
	return extend(MajorSeventh, interval.MajorSecond)(root)
}

func DominantNinth(root string) (Chord, error) {
	return extend(DominantSeventh, interval.MajorSecond)(root)
}

func DominantFlatNinth(root string) (Chord, error) {
	return replace(DominantNinth, 4, interval.MinorSecond)(root)
}

func DominantSharpNinth(root string) (Chord, error) {
	return replace(DominantNinth, 4, augmented(interval.MajorSecond))(root)
}

/* Elevenths */

// Eleventh leaves out the third and the ninth: root, fifth, minor seventh
// and fourth.
func Eleventh(root string) (Chord, error) {
	return build(root, interval.PerfectFifth, interval.MinorSeventh, interval.PerfectFourth)
}

func MinorEleventh(root string) (Chord, error) {
	return extend(MinorSeventh, interval.PerfectFourth)(root)
}

/* Thirteenths */

func MinorThirteenth(root string) (Chord, error) {
	return extend(MinorNinth, interval.MajorSixth)(root)
}

func MajorThirteenth(root string) (Chord, error) {
	return extend(MajorNinth, interval.MajorSixth)(root)
}

func DominantThirteenth(root string) (Chord, error) {
	return extend(DominantNinth, interval.MajorSixth)(root)
}

/* Suspended */

// SuspendedTriad is another name for SuspendedFourthTriad.
func SuspendedTriad(root string) (Chord, error) {
	return SuspendedFourthTriad(root)
}

func SuspendedSecondTriad(root string) (Chord, error) {
	return build(root, interval.MajorSecond, interval.PerfectFifth)
}

func SuspendedFourthTriad(root string) (Chord, error) {
	return build(root, interval.PerfectFourth, interval.PerfectFifth)
}

func SuspendedSeventh(root string) (Chord, error) {
	return extend(SuspendedFourthTriad, interval.MinorSeventh)(root)
}

// SuspendedFourthNinth adds the flat ninth (a minor second) to a sus4 triad.
func SuspendedFourthNinth(root string) (Chord, error) {
	return extend(SuspendedFourthTriad, interval.MinorSecond)(root)
}

/* Augmented */

func AugmentedMajorSeventh(root string) (Chord, error) {
	return extend(AugmentedTriad, interval.MajorSeventh)(root)
}

func AugmentedMinorSeventh(root string) (Chord, error) {
	return extend(AugmentedTriad, interval.MinorSeventh)(root)
}

/* Altered and special */

func DominantFlatFive(root string) (Chord, error) {
	return replace(DominantSeventh, 2, diminished(interval.PerfectFifth))(root)
}

// LydianDominantSeventh is the 7#11 chord.
func LydianDominantSeventh(root string) (Chord, error) {
	return extend(DominantSeventh, augmented(interval.PerfectFourth))(root)
}

// HendrixChord is the 7b12 chord, a dominant seventh with the minor third on
// top.
func HendrixChord(root string) (Chord, error) {
	return extend(DominantSeventh, interval.MinorThird)(root)
}
