// Package logging provides a unified logging interface for the period calculator.
// It abstracts the underlying logging implementation, allowing consistent logging
// across components while keeping standard output free for the deviation table.
package logging
