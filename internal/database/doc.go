// Package database provides connection pool management for PostgreSQL.
//
// The gatherer keeps a single pool for the orderbook_snapshots table
// (append-only time-series data).
package database
