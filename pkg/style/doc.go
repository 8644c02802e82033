// Package style renders terminal output: status lines, the starport summary
// and markdown help, in color on a terminal and as plain text otherwise.
package style
