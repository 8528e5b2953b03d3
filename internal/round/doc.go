// Package round models a single 18 hole round.
//
// A Session collects HoleRecords one field edit at a time through
// ApplyFieldEdit. When the last hole is entered, Summarize reduces the holes
// into a Summary, which is the only thing that outlives the session:
//   - HoleRecords are discarded once the summary exists.
//   - Summary carries no reference back to its holes.
//   - Summary.Date is stamped by the caller, never by Summarize.
package round
