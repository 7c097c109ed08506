package markov

import (
	"fmt"
	"io"
	"log/slog"
)

const (
	// startID is the reserved interned id for the start-of-sequence sentinel.
	startID = 0
	// endID is the reserved interned id for the end-of-sequence sentinel.
	endID = 1
	// reservedIDs is the number of interned ids set aside for sentinels.
	// Corpus tokens always intern at ids >= reservedIDs, which keeps the
	// sentinels distinct from anything a tokenizer can produce.
	reservedIDs = 2

	// MaxOrder is the highest supported chain order.
	MaxOrder = 20
)

// Option configures model construction.
type Option func(*config)

type config struct {
	order         int
	emissionOrder int
	logger        *slog.Logger
}

// WithOrder sets the maximum number of preceding tokens used as context when
// predicting the next token. Defaults to 1. Valid orders are 1 to MaxOrder.
func WithOrder(n int) Option {
	return func(c *config) { c.order = n }
}

// WithEmissionOrder sets the length of the emissions buffer handed to emit
// transforms, for model variants that distinguish raw-token history from
// emission history. Defaults to the chain order.
func WithEmissionOrder(n int) Option {
	return func(c *config) { c.emissionOrder = n }
}

// WithLogger sets the logger used for training and generation records.
// By default all logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Model is a trained Markov chain of order up to MaxOrder over tokens of
// type T. The transition table indexes every history length from 1 up to the
// configured order, so the maximal available context is always used while
// shorter histories stay queryable.
//
// A Model is immutable once built and safe for concurrent generation.
type Model[T comparable] struct {
	order         int
	emissionOrder int

	vocab  map[T]int // token -> interned id
	tokens []T       // interned id -> token; ids 0 and 1 are the sentinels

	transitions  map[string]map[int]float64
	observations int // total (history, next) increments recorded in training

	logger *slog.Logger
}

// New trains a model on corpus, with tokenize splitting each corpus entry
// into its token sequence. The transition table is built in full here; the
// returned model is read-only.
//
// A nil corpus or tokenizer, or an order outside [1, MaxOrder], fails with
// ErrInvalidConfiguration. An empty corpus is valid and yields an empty
// table (generation against it fails with ErrUnknownHistoryKey).
func New[E any, T comparable](corpus []E, tokenize func(E) []T, opts ...Option) (*Model[T], error) {
	cfg := config{
		order:  1,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.order < 1 || cfg.order > MaxOrder {
		return nil, fmt.Errorf("order %d outside [1, %d]: %w", cfg.order, MaxOrder, ErrInvalidConfiguration)
	}
	if cfg.emissionOrder == 0 {
		cfg.emissionOrder = cfg.order
	}
	if cfg.emissionOrder < 1 || cfg.emissionOrder > MaxOrder {
		return nil, fmt.Errorf("emission order %d outside [1, %d]: %w", cfg.emissionOrder, MaxOrder, ErrInvalidConfiguration)
	}
	if corpus == nil {
		return nil, fmt.Errorf("nil corpus: %w", ErrInvalidConfiguration)
	}
	if tokenize == nil {
		return nil, fmt.Errorf("nil tokenizer: %w", ErrInvalidConfiguration)
	}

	m := &Model[T]{
		order:         cfg.order,
		emissionOrder: cfg.emissionOrder,
		vocab:         make(map[T]int),
		tokens:        make([]T, reservedIDs),
		logger:        cfg.logger,
	}
	train(m, corpus, tokenize)
	return m, nil
}

// Order returns the maximum history length used to predict the next token.
func (m *Model[T]) Order() int { return m.order }

// EmissionOrder returns the length of the emissions buffer handed to emit
// transforms.
func (m *Model[T]) EmissionOrder() int { return m.emissionOrder }

// intern returns the id for tok, assigning the next free one on first sight.
func (m *Model[T]) intern(tok T) int {
	if id, ok := m.vocab[tok]; ok {
		return id
	}
	id := len(m.tokens)
	m.vocab[tok] = id
	m.tokens = append(m.tokens, tok)
	return id
}

// Distribution returns the learned next-token probabilities for history,
// along with the probability that the sequence ends immediately after it.
// Any history length from 1 up to the order can be queried; longer histories
// are truncated to their trailing order tokens, matching the lookup shape
// the generator uses. Histories never observed in training fail with
// ErrUnknownHistoryKey.
func (m *Model[T]) Distribution(history []T) (map[T]float64, float64, error) {
	if len(history) == 0 {
		return nil, 0, fmt.Errorf("empty history: %w", ErrUnknownHistoryKey)
	}
	if len(history) > m.order {
		history = history[len(history)-m.order:]
	}

	ids := make([]int, len(history))
	for i, tok := range history {
		id, ok := m.vocab[tok]
		if !ok {
			return nil, 0, fmt.Errorf("history token %v never seen in training: %w", tok, ErrUnknownHistoryKey)
		}
		ids[i] = id
	}

	dist, ok := m.transitions[string(appendKey(nil, ids))]
	if !ok {
		return nil, 0, fmt.Errorf("history %v: %w", history, ErrUnknownHistoryKey)
	}

	next := make(map[T]float64, len(dist))
	var endP float64
	for id, p := range dist {
		if id == endID {
			endP = p
			continue
		}
		next[m.tokens[id]] = p
	}
	return next, endP, nil
}
