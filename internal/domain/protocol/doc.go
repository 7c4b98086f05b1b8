// Package protocol plans the placement and ceremonial handling of flags at an
// official event.
//
// GeneratePlan is a pure function of its EventContext: it performs no I/O,
// reads no clock, and keeps no state between calls, so callers may invoke it
// concurrently without synchronization. Internally it runs four stages in
// order, each exported for direct testing:
//
//	Resolve  -> the flag-bearing actors (host, delegations, supranational, institutional)
//	Rank     -> guests ordered by the selected criterion
//	Layout   -> physical positions 1..n with a justification per entry
//	Compose  -> summary, briefings and preparatory milestones
//
// All user-facing text is Spanish.
package protocol
