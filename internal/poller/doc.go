// Package poller periodically fetches orderbook snapshots over REST for every
// listing the registry is watching and hands them to a SnapshotHandler.
//
// Fetches within a cycle run concurrently under a semaphore; a slow or
// failing listing never blocks the others.
package poller
