package markov

import "errors"

var (
	// ErrInvalidConfiguration indicates a construction-time precondition
	// violation: an order outside [1, MaxOrder], a nil corpus, or a nil
	// tokenizer.
	ErrInvalidConfiguration = errors.New("markov: invalid configuration")

	// ErrUnknownHistoryKey indicates that generation or a query reached a
	// history that was never observed during training. For generation this
	// usually means the model was trained on an empty corpus.
	ErrUnknownHistoryKey = errors.New("markov: unknown history key")

	// ErrEmptyDistribution indicates a weighted draw over an empty or
	// zero-weight outcome set. A trained table never stores such an entry,
	// so hitting this during generation is an invariant violation.
	ErrEmptyDistribution = errors.New("markov: empty distribution")
)
