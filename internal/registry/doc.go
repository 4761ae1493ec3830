// Package registry keeps the table of daily puzzles and runs them.
//
// Puzzles register themselves (usually from an init function) under their
// day number. Run solves a selection of puzzles on an errgroup bounded by
// RunOptions.Jobs and returns one Result per puzzle in the order given. A
// failing or panicking solver is recorded in its Result; with FailFast it
// also cancels the puzzles not yet started.
package registry
