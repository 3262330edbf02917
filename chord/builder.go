package chord

import (
	"github.com/jsphweid/harmonics/diatonic"
	"github.com/jsphweid/harmonics/interval"
)

// Builder builds the diatonic chords of a key and caches them per key name.
// Key names are used as given, so "C" and "B#" are cached separately.
// A Builder is safe for concurrent use.
type Builder struct {
	triads   *Cache
	sevenths *Cache

	fixSeventhNumeral bool
}

type Option func(*Builder)

// WithSeventhNumeralFix makes the "vii7" numeral return the subtonic seventh
// chord instead of the subtonic triad.
func WithSeventhNumeralFix() Option {
	return func(b *Builder) {
		b.fixSeventhNumeral = true
	}
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	b.triads = NewCache(func(key string) ([]Chord, error) {
		return b.each(key, b.Triad)
	})
	b.sevenths = NewCache(func(key string) ([]Chord, error) {
		return b.each(key, b.Seventh)
	})
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) each(key string, fn func(n, key string) (Chord, error)) ([]Chord, error) {
	scale, err := diatonic.Notes(key)
	if err != nil {
		return nil, err
	}
	res := make([]Chord, 0, len(scale))
	for _, n := range scale {
		c, err := fn(n, key)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, nil
}

// Triad returns the triad on n in key. Its quality follows from the position
// of n in the scale: Triad("E", "C") is E G B while Triad("E", "B") is E G# B.
func (b *Builder) Triad(n, key string) (Chord, error) {
	third, err := interval.Third(n, key)
	if err != nil {
		return nil, err
	}
	fifth, err := interval.Fifth(n, key)
	if err != nil {
		return nil, err
	}
	return Chord{n, third, fifth}, nil
}

// Triads returns the triads on each degree of key, in scale order. The
// returned slice is shared with later callers; do not modify it.
func (b *Builder) Triads(key string) ([]Chord, error) {
	return b.triads.Get(key)
}

func (b *Builder) Seventh(n, key string) (Chord, error) {
	res, err := b.Triad(n, key)
	if err != nil {
		return nil, err
	}
	seventh, err := interval.Seventh(n, key)
	if err != nil {
		return nil, err
	}
	return append(res, seventh), nil
}

// Sevenths returns the seventh chords on each degree of key, in scale order.
func (b *Builder) Sevenths(key string) ([]Chord, error) {
	return b.sevenths.Get(key)
}

func (b *Builder) triadAt(key string, degree int) (Chord, error) {
	res, err := b.Triads(key)
	if err != nil {
		return nil, err
	}
	return res[degree], nil
}

func (b *Builder) seventhAt(key string, degree int) (Chord, error) {
	res, err := b.Sevenths(key)
	if err != nil {
		return nil, err
	}
	return res[degree], nil
}

var std = NewBuilder()

func Triad(n, key string) (Chord, error)   { return std.Triad(n, key) }
func Triads(key string) ([]Chord, error)   { return std.Triads(key) }
func Seventh(n, key string) (Chord, error) { return std.Seventh(n, key) }
func Sevenths(key string) ([]Chord, error) { return std.Sevenths(key) }
