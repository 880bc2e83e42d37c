// Package cli implements the interactive menu: add, list, execute, and
// save-and-exit, reading one option per line.
package cli
