// Package domain defines the core business entities for docstat.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Document: A validated reference to a plain-text file
//   - Report: The statistics computed for one document
//   - TieBreak: The most-common-letter tie-break policy
//   - Settings: Persisted user preferences
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
package domain
