// Package kernel contains the shared value objects of the fulfillment domain:
// UUID identifiers and decimal Money amounts. These types are immutable,
// validated at construction, and safe for concurrent use. All aggregates build
// on them instead of raw primitives so that invariants hold at the type level.
package kernel
