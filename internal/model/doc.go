// Package model defines shared domain types for the Stockfighter client and
// the snapshot gatherer built on it.
//
// Conventions:
//   - Prices and quantities: uint64 minor currency units (cents)
//   - API timestamps: time.Time, parsed from RFC 3339
//   - Gatherer timestamps: int64 microseconds since Unix epoch
//   - Snapshot IDs: uuid.UUID
//
// Values are created per API response and never mutated afterward; nothing
// outlives the call that produced it unless the gatherer persists it.
package model
