package markov

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
)

// EmitFunc transforms a sampled raw token into the value actually emitted,
// given the raw-token history and the recent emissions. It decouples the
// observable output from the hidden chain state. Buffer positions not yet
// filled at the start of a sequence hold the zero value of T.
type EmitFunc[T comparable] func(next T, history []T, emissions []T) T

// GenerateOption configures a single generation call.
type GenerateOption func(*genConfig)

type genConfig struct {
	maxLength int // < 0 when unset
	rng       *rand.Rand
}

// WithMaxLength caps the number of emissions collected in one call. With no
// cap, generation runs until the end sentinel is drawn. Negative values
// leave the cap unset.
func WithMaxLength(n int) GenerateOption {
	return func(c *genConfig) { c.maxLength = n }
}

// WithRand sets the random source used for sampling, making the output
// reproducible. Defaults to the shared math/rand/v2 source, which is safe
// for concurrent callers; a *rand.Rand passed here is not.
func WithRand(rng *rand.Rand) GenerateOption {
	return func(c *genConfig) { c.rng = rng }
}

// Generate walks the chain from the start state, sampling each next token
// from the transition distribution of the current full-order history, until
// the end sentinel is drawn or the length cap is hit.
//
// The final collected element is always dropped: normally that is the end
// sentinel, but when the cap stops generation first it is the last generated
// token.
func (m *Model[T]) Generate(opts ...GenerateOption) ([]T, error) {
	return m.GenerateWith(nil, opts...)
}

// GenerateWith is Generate with an emission transform applied at each step.
// A nil emit passes raw tokens through unchanged. The transform is never
// invoked for the end sentinel, whose collected slot is always the dropped
// trailing element.
func (m *Model[T]) GenerateWith(emit EmitFunc[T], opts ...GenerateOption) ([]T, error) {
	cfg := genConfig{maxLength: -1}
	for _, opt := range opts {
		opt(&cfg)
	}

	var zero T
	hist := newWindow(m.order, startID)  // interned ids, for key lookups
	histToks := newWindow(m.order, zero) // the same history as token values
	emissions := newWindow(m.emissionOrder, zero)

	var out []T
	var keyBuf []byte

	for hist.tail() != endID {
		keyBuf = appendKey(keyBuf[:0], hist.last(m.order))
		dist, ok := m.transitions[string(keyBuf)]
		if !ok {
			return nil, fmt.Errorf("history %q: %w", keyBuf, ErrUnknownHistoryKey)
		}

		nextID, err := weightedChoice(cfg.rng, dist)
		if err != nil {
			return nil, fmt.Errorf("sampling after history %q: %w", keyBuf, err)
		}

		if nextID == endID {
			// Placeholder slot; removed by the trailing drop below.
			out = append(out, zero)
			hist.push(endID)
		} else {
			raw := m.tokens[nextID]
			emission := raw
			if emit != nil {
				emission = emit(raw, histToks.last(m.order), emissions.last(m.emissionOrder))
			}
			emissions.push(emission)
			out = append(out, emission)
			hist.push(nextID)
			histToks.push(raw)
		}

		// +1 accounts for the implicit start-state step.
		if cfg.maxLength >= 0 && len(out) >= cfg.maxLength+1 {
			m.logger.Debug("generation stopped at length cap",
				slog.Int("max_length", cfg.maxLength),
				slog.Int("generated", len(out)),
			)
			break
		}
	}

	if hist.tail() == endID {
		m.logger.Debug("generation reached end of chain",
			slog.Int("generated", len(out)-1),
		)
	}

	return out[:len(out)-1], nil
}
