// Package restaurant provides the restaurant aggregate and its menu items.
//
// A Restaurant owns identity and contact attributes, an operating window
// that may wrap midnight, an active flag, and a rating derived from reviews.
// A MenuItem belongs to exactly one restaurant and carries the current
// selling price that orders snapshot at placement time.
package restaurant
