package markov

// Stats is a snapshot of the shape of a trained model.
type Stats struct {
	VocabSize      int // distinct corpus tokens seen in training
	HistoryKeys    int // distinct history keys across all lengths 1..order
	Transitions    int // unique (history, next token) pairs
	Observations   int // total increments recorded during training
	StartingTokens int // distinct tokens that can begin a sequence
}

// Stats reports aggregate statistics about the trained transition table.
func (m *Model[T]) Stats() Stats {
	s := Stats{
		VocabSize:    len(m.vocab),
		HistoryKeys:  len(m.transitions),
		Observations: m.observations,
	}
	for _, next := range m.transitions {
		s.Transitions += len(next)
	}

	// Starters hang off the full-order all-start-sentinel key.
	startKey := make([]int, m.order)
	if dist, ok := m.transitions[string(appendKey(nil, startKey))]; ok {
		for id := range dist {
			if id != endID {
				s.StartingTokens++
			}
		}
	}
	return s
}
