// Package segments decodes scrambled seven-segment displays.
//
// Each display's signal wires a–g are connected to the segments in an unknown
// order. An Entry lists the ten unique patterns the display shows (one per
// digit, in any order) followed by the four output patterns to read.
//
// Solve recovers the wiring by constraint propagation. Every canonical segment
// starts with all seven wires as candidates. Digits sharing a segment count
// form a length class (e.g. 2, 3, 5 have five segments); once every member of
// a class has been observed, the wires common to all observed patterns must
// drive exactly the segments common to all digits of the class, and likewise
// for the union. After those cuts, a segment left with a single wire claims it
// and a wire left with a single segment is assigned there, until nothing
// changes.
//
//	 aaaa
//	b    c
//	b    c
//	 dddd
//	e    f
//	e    f
//	 gggg
package segments
