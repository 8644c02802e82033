// Package testutil provides helpers shared by gensec tests: scripted dice
// that replay exact roll sequences, and small filesystem helpers.
package testutil
