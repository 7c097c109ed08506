/*
Package markov builds variable-order Markov chains from token corpora and
samples new sequences from the learned transition distributions.

A model of order N indexes every history length from 1 to N simultaneously,
trains in a single pass at construction, and is immutable afterwards, so a
single model can serve any number of concurrent generation calls. Tokens are
generic: any comparable type works, with tokenization supplied by the caller.
*/
package markov
