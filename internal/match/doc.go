// Package match ranks known names by their similarity to a misspelled one.
//
// Names are normalized (case-folded, separators stripped) and compared by
// normalized Levenshtein similarity. Suggest is what manifest checking uses to
// attach "did you mean" hints to unknown types, attributes and converters.
package match
