// Package aoc2021 is a collection of Advent of Code 2021 solvers.
//
// Every day lives in its own package and can be used as a library:
//
//	sonar/        day 1: depth increases, sliding windows
//	dive/         day 2: submarine piloting, with and without aim
//	diagnostic/   day 3: power consumption and life-support rating
//	bingo/        day 4: first and last winning boards
//	lanternfish/  day 6: population growth in nine buckets
//	segments/     day 8: scrambled seven-segment displays
//	octopus/      day 11: cascading flashes on an 8-connected grid
//	caves/        day 12: route counting with revisit policies
//	polymer/      day 14: memoised pair insertion
//
// Shared building blocks:
//
//	parse/        line, field, block and number parsing with ErrMalformed
//	core/         thread-safe string-keyed graph
//	bfs/, dfs/    breadth-first search and path enumeration over core.Graph
//	gridgraph/    rectangular integer grid with 4/8 connectivity
//
// cmd/aoc runs any selection of days against embedded or local inputs:
//
//	go run ./cmd/aoc list
//	go run ./cmd/aoc run 6 14 --jobs 2
package aoc2021
