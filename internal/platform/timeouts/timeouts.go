// Package timeouts defines shared timeout constants used across the admin
// console. Centralizing these values prevents drift between the HTTP surface
// and the health plane and makes the durations discoverable.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing the health plane.
const GRPCDial = 2 * time.Second

// StoreCall caps the time allowed for a single storage call issued from a
// page handler.
const StoreCall = 2 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
