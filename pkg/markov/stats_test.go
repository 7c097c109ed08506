package markov

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	m, err := New([]string{"a b c", "a b d"}, Fields, WithOrder(2))
	require.NoError(t, err)

	s := m.Stats()
	assert.Equal(t, 4, s.VocabSize)
	// 2 entries x 4 emissions (incl. end sentinel) x 2 history lengths.
	assert.Equal(t, 16, s.Observations)
	// Length-1 keys: ^ a b c d; length-2: "^ ^" "^ a" "a b" "b c" "b d".
	assert.Equal(t, 10, s.HistoryKeys)
	// Each key above has one successor except b and "a b" (two each).
	assert.Equal(t, 12, s.Transitions)
	// Only "a" opens an entry.
	assert.Equal(t, 1, s.StartingTokens)
}

func TestStatsEmptyModel(t *testing.T) {
	m, err := New([]string{}, Fields, WithOrder(3))
	require.NoError(t, err)
	assert.Equal(t, Stats{}, m.Stats())
}
