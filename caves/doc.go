// Package caves counts routes through an undirected cave system.
//
// Caves whose name starts with a lowercase letter are small; all others are
// big. A route runs from a start cave to an end cave and stops as soon as it
// reaches the end. Big caves may be passed any number of times, while small
// caves are limited by a Policy:
//
//   - VisitSmallOnce: every small cave at most once.
//   - VisitOneSmallTwice: a single small cave may be visited twice, the
//     others at most once, and the start cave is never re-entered.
//
// The enumeration itself is dfs.Paths over a core.Graph with an admission
// policy derived from the Policy. Two big caves may not be connected, since
// that would allow routes of unbounded length.
package caves
