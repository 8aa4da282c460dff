// Package order provides the order aggregate and its lifecycle rules.
//
// The package includes:
//   - Order: the aggregate root holding the parties, the immutable total,
//     the price-snapshotted lines, and the delivery estimate
//   - OrderItem: a line with the menu item reference, quantity, and the
//     price captured at order time
//   - Status: a closed state machine over the delivery workflow
//     (placed -> confirmed -> preparing -> out_for_delivery -> delivered,
//     with cancellation possible until preparation completes)
//
// Key business rules:
//   - An order's total equals the sum of its lines' snapshot price times
//     quantity and is never recomputed after creation
//   - Status transitions are checked centrally in Status.TransitionTo
//   - Delivered and Cancelled are terminal
//   - Only a delivered order may be reviewed, and only by its own customer
package order
