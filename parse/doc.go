// Package parse holds the small text helpers shared by every daily solver.
//
// Puzzle inputs are line oriented: surrounding whitespace is trimmed and blank
// lines are dropped before any solver sees the data. The helpers return errors
// wrapping ErrMalformed; embedded inputs that are known to be well formed go
// through Must, which panics instead.
//
// Functions:
//
//   - Lines(s)              trimmed, non-empty lines
//   - Fields(s)             whitespace-split fields per line
//   - Blocks(s)             blank-line separated sections
//   - Records(s, fn)        map each line's fields to a value
//   - Number[T](s)          range-checked integer parse
//   - Numbers[T](s, sep)    separated list of integers
//   - Digits(s)             grid of single decimal digits
//   - Must(v, err)          panic on error
package parse
