package chord

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsphweid/harmonics/diatonic"
	"github.com/jsphweid/harmonics/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestTriad(t *testing.T) {
	assert := assert.New(t)

	c, err := Triad("E", "C")
	require.NoError(t, err)
	assert.Equal(Chord{"E", "G", "B"}, c)

	c, err = Triad("E", "B")
	require.NoError(t, err)
	assert.Equal(Chord{"E", "G#", "B"}, c)
}

func TestSeventh(t *testing.T) {
	c, err := Seventh("C", "C")
	require.NoError(t, err)
	assert.Equal(t, Chord{"C", "E", "G", "B"}, c)
}

func TestTriadsInC(t *testing.T) {
	triads, err := NewBuilder().Triads("C")
	require.NoError(t, err)
	assert.Equal(t, []Chord{
		{"C", "E", "G"},
		{"D", "F", "A"},
		{"E", "G", "B"},
		{"F", "A", "C"},
		{"G", "B", "D"},
		{"A", "C", "E"},
		{"B", "D", "F"},
	}, triads)
}

func TestSeventhsInC(t *testing.T) {
	sevenths, err := NewBuilder().Sevenths("C")
	require.NoError(t, err)
	assert.Equal(t, []Chord{
		{"C", "E", "G", "B"},
		{"D", "F", "A", "C"},
		{"E", "G", "B", "D"},
		{"F", "A", "C", "E"},
		{"G", "B", "D", "F"},
		{"A", "C", "E", "G"},
		{"B", "D", "F", "A"},
	}, sevenths)
}

func TestTriadsInMinorKey(t *testing.T) {
	triads, err := NewBuilder().Triads("Am")
	require.NoError(t, err)
	assert.Equal(t, Chord{"A", "C", "E"}, triads[0])
	assert.Equal(t, Chord{"B", "D", "F"}, triads[1])
	assert.Equal(t, Chord{"E", "G", "B"}, triads[4])
}

func TestTriadsAreCachedPerKey(t *testing.T) {
	b := NewBuilder()
	assert := assert.New(t)

	first, err := b.Triads("C")
	require.NoError(t, err)
	_, err = b.Triads("D")
	require.NoError(t, err)
	again, err := b.Triads("C")
	require.NoError(t, err)

	assert.Equal(first, again)
	assert.Same(&first[0], &again[0])
	assert.Equal(2, b.triads.Len())
	assert.Equal(0, b.sevenths.Len())
}

func TestCacheDoesNotNormalizeKeys(t *testing.T) {
	b := NewBuilder()
	_, err := b.Triads("C")
	require.NoError(t, err)

	_, err = b.Triads("c")
	assert.ErrorIs(t, err, diatonic.ErrInvalidKey)
	assert.Equal(t, 1, b.triads.Len())
}

func TestCacheComputesOnceUnderConcurrency(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	cache := NewCache(func(key string) ([]Chord, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return NewBuilder().each(key, NewBuilder().Triad)
	})

	results := make([][]Chord, 32)
	var started sync.WaitGroup
	started.Add(len(results))
	var g errgroup.Group
	for i := range results {
		i := i
		g.Go(func() error {
			started.Done()
			res, err := cache.Get("Eb")
			results[i] = res
			return err
		})
	}

	// hold the first computation until every caller is waiting on it
	started.Wait()
	time.Sleep(50 * time.Millisecond)
	close(release)
	require.NoError(t, g.Wait())

	for _, res := range results {
		assert.Equal(t, results[0], res)
		assert.Len(t, res, 7)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, 1, cache.Len())

	// once stored, no further computation
	before := atomic.LoadInt32(&calls)
	_, err := cache.Get("Eb")
	require.NoError(t, err)
	assert.Equal(t, before, atomic.LoadInt32(&calls))
}

func TestCacheDoesNotStoreErrors(t *testing.T) {
	b := NewBuilder()
	_, err := b.Sevenths("X")
	assert.ErrorIs(t, err, diatonic.ErrInvalidKey)
	assert.Equal(t, 0, b.sevenths.Len())
}

func TestTriadPropagatesNoteError(t *testing.T) {
	_, err := Triad("Z", "C")
	assert.ErrorIs(t, err, note.ErrUnknownNote)
}
