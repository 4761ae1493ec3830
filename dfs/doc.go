// Package dfs enumerates walks between two vertices of a core.Graph by
// depth-first search.
//
// What:
//
//   - Paths(g, start, end, opts...): explores every walk from start that is
//     allowed by an admission policy and stops a branch as soon as it reaches
//     end. The default policy admits a vertex only if the current walk has not
//     visited it yet (simple paths). Custom policies receive the per-vertex
//     visit counts of the walk in progress and may allow revisits, which is how
//     the cave puzzle lets big caves be entered any number of times.
//
// Key Types:
//
//   - Visits: read-only view of visit counts along the current walk
//   - AdmitFunc: admission policy
//   - Option / PathsOptions: functional options (context, policy, hooks)
//   - PathsResult: Count and, with WithCollect, the walks themselves
//
// Complexity:
//
//   - Time: proportional to the number of admitted walk prefixes; exponential
//     in the worst case, as any path enumeration is.
//   - Memory: O(L) for the walk stack (L = longest walk) plus collected paths.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrEndVertexNotFound    end vertex ID not in graph
//   - context.Canceled        traversal cancelled via context
//   - hook errors             propagated from OnPath
package dfs
