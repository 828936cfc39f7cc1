// Package diagnostic provides structured errors, warnings and infos
// collected while checking a binding manifest.
//
// Key capabilities:
//   - Duplicate and unknown declarations
//   - Layout problems: out-of-region and overlapping storage
//   - Lossy storage warnings for variables narrower than their Go type
package diagnostic
