// Package ui provides theme and color support for the application's user interface.
// It defines color schemes, ANSI escape code helpers and lipgloss styles for
// consistent styling of the table header and the verbose summary.
//
// Colors are never applied to table rows: their column widths are part of
// the output contract.
package ui
