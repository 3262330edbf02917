package midi

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/harmonics/note"
	gomidi "gitlab.com/gomidi/midi/v2"
)

var ErrOutOfRange = errors.New("midi key out of range")

// octaves that hold at least one MIDI key
const (
	MinOctave = -1
	MaxOctave = 9
)

// Keys turns a chord into MIDI key numbers, root in the given octave (middle
// C is octave 4, key 60) and every following tone on the first key above the
// one before it.
func Keys(notes []string, octave int) ([]uint8, error) {
	if octave < MinOctave || octave > MaxOctave {
		return nil, fmt.Errorf("%w: octave %v", ErrOutOfRange, octave)
	}
	res := make([]uint8, 0, len(notes))
	prev := -1
	for i, n := range notes {
		pc, err := note.ToInt(n)
		if err != nil {
			return nil, err
		}
		key := (octave+1)*12 + pc
		if i > 0 {
			for key <= prev {
				key += 12
			}
		}
		if key < 0 || key > 127 {
			return nil, fmt.Errorf("%w: %v in octave %v", ErrOutOfRange, n, octave)
		}
		res = append(res, uint8(key))
		prev = key
	}
	return res, nil
}

// ChordKey joins sorted keys with dashes, "60-64-67" for a C major triad.
// keys is not modified.
func ChordKey(keys []uint8) string {
	sorted := append([]uint8(nil), keys...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	parts := make([]string, len(sorted))
	for i, k := range sorted {
		parts[i] = fmt.Sprintf("%v", k)
	}
	return strings.Join(parts, "-")
}

// NoteOns returns a note on message for each key.
func NoteOns(keys []uint8, channel, velocity uint8) []gomidi.Message {
	res := make([]gomidi.Message, 0, len(keys))
	for _, k := range keys {
		res = append(res, gomidi.NoteOn(channel, k, velocity))
	}
	return res
}

// NoteOffs returns a note off message for each key.
func NoteOffs(keys []uint8, channel uint8) []gomidi.Message {
	res := make([]gomidi.Message, 0, len(keys))
	for _, k := range keys {
		res = append(res, gomidi.NoteOff(channel, k))
	}
	return res
}

// Hex formats each message as upper case hex bytes, "90 3C 64" for a note on
// of middle C.
func Hex(msgs []gomidi.Message) []string {
	res := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		res = append(res, fmt.Sprintf("% X", msg.Bytes()))
	}
	return res
}
