// Package api provides the Stockfighter REST API client.
//
// Base URL:
//   - https://api.stockfighter.io/ob/api
//
// Endpoints:
//   - GET /heartbeat
//   - GET /venues
//   - GET /venues/{venue}/heartbeat
//   - GET /venues/{venue}/stocks
//   - GET /venues/{venue}/stocks/{stock}
//   - GET /venues/{venue}/stocks/{stock}/quote
//
// Every response carries a boolean success flag and, on failure, an "error"
// message. The flag field is named "ok" everywhere except GET /venues, where
// the live server reports it under "id". That inconsistency is upstream
// behavior and is preserved here deliberately rather than "fixed".
package api
