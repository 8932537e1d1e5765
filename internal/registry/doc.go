// Package registry discovers venues and their listed stocks via the REST API
// and keeps an in-memory watch list for the poller.
//
// Discovery runs once at startup (blocking) and then periodically in the
// background. Closed venues stay in the venue list but contribute no
// listings.
package registry
