// Package writer implements the batch snapshot writer.
//
// Snapshots are accumulated in memory and flushed to the orderbook_snapshots
// table when the batch fills or the flush interval elapses. Writes are
// append-only (never update, only insert); duplicate snapshot IDs are
// discarded with ON CONFLICT DO NOTHING.
package writer
