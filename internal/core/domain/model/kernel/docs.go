// Package kernel provides shared value objects used across all domain
// aggregates: UUID identifiers, fixed-point Money, and TimeOfDay for
// restaurant operating windows.
//
// All kernel types are immutable value objects constructed through factory
// functions that validate their inputs, so a kernel value that exists is a
// kernel value that is correct.
package kernel
