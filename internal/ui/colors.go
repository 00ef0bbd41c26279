package ui

import "io"

// ColorReset returns the escape code that clears all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorGreen returns the success color.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorRed returns the error color.
func ColorRed() string { return GetCurrentTheme().Error }

// Paint wraps s in code and a reset when w is a terminal. The theme is
// initialized for stdout, so stderr output is checked on its own.
func Paint(w io.Writer, code, s string) string {
	if code == "" || !IsTerminal(w) {
		return s
	}
	return code + s + ColorReset()
}
