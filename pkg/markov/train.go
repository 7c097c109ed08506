package markov

import "log/slog"

// train builds the transition table: a single counting pass over the corpus,
// then normalization of the counts into probability distributions.
func train[E any, T comparable](m *Model[T], corpus []E, tokenize func(E) []T) {
	counts := make(map[string]map[int]int)

	var keyBuf []byte
	for _, entry := range corpus {
		toks := tokenize(entry)

		// The history starts as all start sentinels; padding counts as
		// valid context, so even the first token has keys of every
		// length recorded for it.
		win := newWindow(m.order, startID)
		for i := 0; i <= len(toks); i++ {
			emission := endID
			if i < len(toks) {
				emission = m.intern(toks[i])
			}

			// Record the emission against every trailing suffix of
			// the current history, keeping keys of all lengths
			// 1..order queryable.
			for n := 1; n <= m.order; n++ {
				keyBuf = appendKey(keyBuf[:0], win.last(n))
				next := counts[string(keyBuf)]
				if next == nil {
					next = make(map[int]int)
					counts[string(keyBuf)] = next
				}
				next[emission]++
				m.observations++
			}

			win.push(emission)
		}
	}

	m.transitions = normalize(counts)

	m.logger.Info("training completed",
		slog.Int("order", m.order),
		slog.Int("corpus_entries", len(corpus)),
		slog.Int("vocabulary", len(m.vocab)),
		slog.Int("history_keys", len(m.transitions)),
		slog.Int("observations", m.observations),
	)
}

// normalize converts per-key counts into probability distributions. Every
// stored key holds at least one count, so each resulting distribution sums
// to 1 within floating-point tolerance.
func normalize(counts map[string]map[int]int) map[string]map[int]float64 {
	transitions := make(map[string]map[int]float64, len(counts))
	for key, next := range counts {
		var total int
		for _, c := range next {
			total += c
		}
		if total == 0 {
			continue
		}
		dist := make(map[int]float64, len(next))
		for id, c := range next {
			dist[id] = float64(c) / float64(total)
		}
		transitions[key] = dist
	}
	return transitions
}
