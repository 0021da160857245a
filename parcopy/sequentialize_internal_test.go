package parcopy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A lost holder entry is a defect in the sequencer and must not be
// turned into a silently wrong sequence.
func TestSequencer_MissingHolderPanics(t *testing.T) {
	s, err := newSequencer([]RegisterCopy{{Source: 1, Destination: 2}}, 9, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, s.available, 1)

	delete(s.holder, 1)
	assert.PanicsWithError(t, "parcopy: no holder for source register r1 (copy r1->r2)", func() {
		s.run()
	})
}

func TestSequencer_EvictionOrderSkipsResolved(t *testing.T) {
	// Destinations 1 and 3 resolve without the spare; 5<->6 must be broken
	// at 5 even though 1 and 3 sort first.
	copies := []RegisterCopy{{2, 1}, {4, 3}, {6, 5}, {5, 6}}
	s, err := newSequencer(copies, 9, DefaultOptions())
	require.NoError(t, err)

	s.drain()
	dst, ok := s.nextEviction()
	require.True(t, ok)
	assert.Equal(t, Register(5), dst)
	assert.Equal(t, 0, s.evictions)
}
