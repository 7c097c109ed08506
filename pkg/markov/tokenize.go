package markov

import (
	"regexp"
	"strings"
)

// wordPattern matches runs of word characters or single punctuation marks.
var wordPattern = regexp.MustCompile(`[\w']+|[.,!?;]`)

// Words splits a corpus entry into word and punctuation tokens.
func Words(entry string) []string {
	return wordPattern.FindAllString(entry, -1)
}

// Fields splits a corpus entry on whitespace.
func Fields(entry string) []string {
	return strings.Fields(entry)
}

// Runes splits a corpus entry into individual characters, for
// character-level chains.
func Runes(entry string) []rune {
	return []rune(entry)
}

// Pretokenized is the identity tokenizer, for corpora whose entries are
// already token sequences.
func Pretokenized[T comparable](entry []T) []T {
	return entry
}

// Regexp builds a tokenizer from a custom splitting pattern.
func Regexp(re *regexp.Regexp) func(string) []string {
	return func(entry string) []string {
		return re.FindAllString(entry, -1)
	}
}
