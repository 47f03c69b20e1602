// Package log provides the structured process logger used across the
// logger services: leveled entries with typed fields, pluggable formatters
// (text for terminals, JSON for collectors) and outputs.
//
// Construct a Logger explicitly and pass it down; there is no package-level
// default instance.
package log
