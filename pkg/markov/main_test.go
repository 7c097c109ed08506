package markov

import (
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fishCorpus is the shared training corpus used across tests. Both entries
// are deterministic chains after the opening word, so an order-2 model over
// them can never wander off trained history.
var fishCorpus = []string{
	"one fish two fish",
	"red fish blue fish",
}

// setupTestModel trains an order-2 word model over the shared corpus.
func setupTestModel(t *testing.T) *Model[string] {
	t.Helper()
	m, err := New(fishCorpus, Fields, WithOrder(2))
	require.NoError(t, err)
	return m
}

var (
	benchCorpus     []string
	benchCorpusOnce sync.Once
)

// benchmarkCorpus builds a reproducible synthetic corpus for benchmarks.
func benchmarkCorpus() []string {
	benchCorpusOnce.Do(func() {
		words := strings.Fields("alpha beta gamma delta epsilon zeta eta theta iota kappa")
		rng := rand.New(rand.NewPCG(1, 1))
		for i := 0; i < 2000; i++ {
			entry := make([]string, 5+rng.IntN(10))
			for j := range entry {
				entry[j] = words[rng.IntN(len(words))]
			}
			benchCorpus = append(benchCorpus, strings.Join(entry, " "))
		}
	})
	return benchCorpus
}
