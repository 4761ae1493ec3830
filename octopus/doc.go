// Package octopus simulates a cavern of flashing dumbo octopuses.
//
// Every octopus holds an energy level 0–9 on a rectangular grid. A step raises
// every level by one; any octopus above 9 flashes, which raises all eight
// neighbours by one and may set off further flashes. An octopus flashes at
// most once per step, and every octopus that flashed ends the step at 0.
//
// Cascades are resolved with a worklist over gridgraph neighbours, in the
// same push/visit shape as a breadth-first traversal.
package octopus
