// Package types defines the world records produced by sector generation:
// the System record with its UWP, bases, trade codes and PBG, hex
// coordinates, the extended-hex digit alphabet, and the maturity and
// density tiers that tune a run.
package types
