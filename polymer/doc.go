// Package polymer grows polymers by pair insertion and counts their elements.
//
// A polymer is a template of elements A–Z plus rules "AB -> C": in every step,
// each adjacent pair AB with a rule gets C inserted between its two elements,
// all pairs at once. The polymer doubles in length each step, so it is never
// built. Instead Counts sums, for every adjacent pair of the template, the
// elements inserted between that pair after n steps:
//
//	inner(l, r, 0) = ∅
//	inner(l, r, n) = {m} + inner(l, m, n-1) + inner(m, r, n-1)   if lr -> m
//	inner(l, r, n) = ∅                                          otherwise
//
// Results are memoised per (pair, steps) on the Polymer and shared by later
// calls, so Counts(40) after Counts(10) reuses the shallow entries. Counts
// that no longer fit in a uint64 fail with ErrOverflow instead of wrapping.
package polymer
