package markov

import (
	"context"
	"log/slog"
)

// GenerateStream walks the chain like Generate but delivers tokens on a
// channel as they are produced, for long sequences or incremental consumers.
// The channel is closed when the chain reaches its end state, the length cap
// is hit, or ctx is cancelled. Sampling failures are logged and close the
// stream early.
//
// Generate's trailing-element drop is preserved: each token is held back
// until its successor is produced, and the held token is discarded when the
// length cap stops the walk.
func (m *Model[T]) GenerateStream(ctx context.Context, opts ...GenerateOption) <-chan T {
	cfg := genConfig{maxLength: -1}
	for _, opt := range opts {
		opt(&cfg)
	}

	ch := make(chan T)
	go func() {
		defer close(ch)

		hist := newWindow(m.order, startID)

		var pending T
		havePending := false
		generated := 0
		var keyBuf []byte

		for {
			select {
			case <-ctx.Done():
				m.logger.Debug("generation stream cancelled")
				return
			default:
			}

			keyBuf = appendKey(keyBuf[:0], hist.last(m.order))
			dist, ok := m.transitions[string(keyBuf)]
			if !ok {
				m.logger.Error("generation stream hit unknown history key",
					slog.String("key", string(keyBuf)),
				)
				return
			}

			nextID, err := weightedChoice(cfg.rng, dist)
			if err != nil {
				m.logger.Error("generation stream sampling failed",
					slog.Any("error", err),
				)
				return
			}

			if nextID == endID {
				// The sentinel is the dropped trailing element;
				// flush what precedes it and finish.
				if havePending {
					select {
					case <-ctx.Done():
					case ch <- pending:
					}
				}
				return
			}

			if havePending {
				select {
				case <-ctx.Done():
					return
				case ch <- pending:
				}
			}
			pending = m.tokens[nextID]
			havePending = true
			hist.push(nextID)
			generated++

			// A capped walk drops its last generated token too.
			if cfg.maxLength >= 0 && generated >= cfg.maxLength+1 {
				m.logger.Debug("generation stream stopped at length cap",
					slog.Int("max_length", cfg.maxLength),
					slog.Int("generated", generated),
				)
				return
			}
		}
	}()
	return ch
}
