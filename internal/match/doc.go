// Package match ranks identifiers by similarity to produce "did you mean" hints
// for field names that do not resolve.
//
// Key functions:
//   - Normalize: folds an identifier for fuzzy comparison
//   - Distance: Levenshtein edit distance over runes
//   - Suggest: ranks known names against an unknown one
package match
