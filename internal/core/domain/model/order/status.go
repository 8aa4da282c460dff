package order

import (
	"fmt"

	"eats/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders always
// follow the delivery workflow.
//
// State transitions:
//
//	Placed ──> Confirmed ──> Preparing ──> OutForDelivery ──> Delivered
//	   │            │            │
//	   └────────────┴────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal states with no outbound transitions.
// The transition table is the single source of truth: every status change
// in the system goes through TransitionTo.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status assigned when an order is created.
	Placed

	// Confirmed indicates the restaurant accepted the order.
	Confirmed

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// OutForDelivery indicates the order left the restaurant.
	OutForDelivery

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was aborted before delivery. Terminal.
	Cancelled
)

// getStatusStrings returns the wire/persistence names of all statuses.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Placed:         "placed",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getStatusTransitions returns the closed transition table.
// A status missing from a target list cannot be reached from that source.
func getStatusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Placed:         {Confirmed, Cancelled},
		Confirmed:      {Preparing, Cancelled},
		Preparing:      {OutForDelivery, Cancelled},
		OutForDelivery: {Delivered},
		Delivered:      {},
		Cancelled:      {},
	}
}

// StatusFromString parses the persistence/wire name of a status.
// Returns an error for unknown names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("order status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined workflow states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persistence/wire name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outbound transitions.
func (s Status) IsTerminal() bool {
	targets, ok := getStatusTransitions()[s]
	return ok && len(targets) == 0
}

// CanTransitionTo reports whether the transition table allows moving from s
// to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getStatusTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns the new status after a transition from s to next.
// Returns a BusinessRuleError naming the attempted source and target when
// the transition table does not allow the move.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewBusinessRuleError(
			fmt.Sprintf("cannot change order status from %s to %s", s, next),
		)
	}
	return next, nil
}
