// Package services implements the driving ports.
//
// Services hold the statistics logic itself: line counting, word
// tokenisation, length aggregation, and letter frequency analysis.
// They depend on domain types and driven ports only, never on
// adapters.
package services
