// Package subword trains byte-pair-encoding subword vocabularies from
// cleaned text corpora and tokenizes text with the result.
//
// Training reads a whitespace-delimited corpus, learns a fixed-size
// vocabulary by repeatedly merging the most frequent adjacent symbol pair,
// and produces an immutable model: the symbol table plus the ordered merge
// rule list. Models persist to a line-oriented artifact and reload to
// byte-identical tokenization.
package subword
