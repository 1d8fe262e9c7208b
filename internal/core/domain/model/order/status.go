package order

import (
	"fmt"

	"github.com/biruk-abayneh/Restaurant-app/internal/pkg/errs"
)

// Status represents the lifecycle state of an order on its way through the
// kitchen. It implements a state machine with defined transitions to ensure
// orders follow the correct workflow.
//
// State transitions:
//
//	New ──> Preparing ──> Ready
//	 ^          │
//	 └──────────┘
//	(amendment after kitchen acknowledgement re-opens the order)
//
// Ready is terminal for this lifecycle; clearing a ready order is an
// administrative action, not a transition.
//
// Status is a value object that validates state transitions and provides the
// wire representation used by API clients and storage.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status when an order is submitted.
	// New orders are visible to the kitchen and waiting to be started.
	New

	// Preparing indicates the kitchen has started cooking the order.
	Preparing

	// Ready indicates the kitchen has finished the order and it is
	// waiting to be picked up. Terminal for this lifecycle.
	Ready
)

// Domain event names used in transition errors and logs.
const (
	EventKitchenStart = "kitchen.start"
	EventKitchenReady = "kitchen.ready"
	EventServerAmend  = "server.amend"
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		New:       "new",
		Preparing: "preparing",
		Ready:     "ready",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:       "new",
		Preparing: "preparing",
		Ready:     "ready",
	}
}

// ParseStatus converts the wire representation ("new", "preparing", "ready")
// into a Status. Returns a ValueIsInvalidError for anything else.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of New, Preparing, Ready.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe to call on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActive reports whether an order in this status is part of the active set
// (visible on the kitchen queue and amendable by its server).
func (s Status) IsActive() bool {
	return s == New || s == Preparing
}

// Start transitions the status to Preparing.
//
// Valid transitions:
//   - New -> Preparing (kitchen starts cooking)
//
// Any other source status (including Preparing itself, so a double start is
// rejected) returns an InvalidTransitionError.
func (s Status) Start() (Status, error) {
	if s != New {
		return 0, errs.NewInvalidTransitionError(s.String(), EventKitchenStart)
	}
	return Preparing, nil
}

// Finish transitions the status to Ready.
//
// Valid transitions:
//   - Preparing -> Ready (kitchen finished the order)
//
// Finishing an order that was never started, or is already ready, returns an
// InvalidTransitionError.
func (s Status) Finish() (Status, error) {
	if s != Preparing {
		return 0, errs.NewInvalidTransitionError(s.String(), EventKitchenReady)
	}
	return Ready, nil
}

// Reopen transitions the status back to New after a post-acknowledgement
// amendment, forcing the kitchen to re-acknowledge the changed order.
//
// Valid transitions:
//   - New -> New (no-op, order was not started yet)
//   - Preparing -> New (re-open for edit)
//
// Amending a ready order is not permitted.
func (s Status) Reopen() (Status, error) {
	if !s.IsActive() {
		return 0, errs.NewInvalidTransitionError(s.String(), EventServerAmend)
	}
	return New, nil
}
