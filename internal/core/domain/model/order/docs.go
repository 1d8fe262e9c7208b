// Package order contains the order aggregate and its value objects.
// It implements the order lifecycle state machine following Domain-Driven
// Design principles, encapsulating all rules for submission, kitchen status
// advancement, and post-dispatch amendment.
//
// The aggregate is the single authority for the derived flags clients render:
// status, modified, and modifiedBy are computed here and only here. The rest
// of the system moves Snapshot values around; it never mutates order state
// directly.
package order
