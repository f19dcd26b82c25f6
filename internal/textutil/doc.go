// Package textutil provides token fingerprints and cosine similarity for
// fuzzy text matching.
//
// The primary use cases are:
//   - Ranking stored recipes against a free-text search query
//   - Suggesting the closest recipe name when a lookup misses
//
// Fingerprints use term frequency vectors, optionally reweighted by inverse
// document frequency from a Corpus. Tokenization lowercases text, splits on
// anything that is not a letter or digit, and drops single-character tokens.
package textutil
