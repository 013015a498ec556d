// Package textsim implements the bag-of-tokens similarity core:
// a lexical tokenizer, TF-IDF vectorization over a per-run vocabulary,
// and cosine similarity. It is deliberately language-agnostic — the
// tokenizer is a fixed lexical approximation, not a parser.
package textsim

import (
	"regexp"
	"strings"
)

// tokenPattern matches, in order: identifiers, the closed set of
// multi-character operators, and single structural punctuation
// characters. Anything else (whitespace, remaining punctuation) is
// dropped from the stream.
var tokenPattern = regexp.MustCompile(`[a-z0-9_]+|=>|==|!=|<=|>=|&&|\|\||[{}()\[\],.;]`)

// Tokenize splits text into a lowercase token stream.
// Empty or whitespace-only input yields nil.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}
