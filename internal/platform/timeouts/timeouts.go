// Package timeouts defines shared timeout constants used across the service.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// LiveRead caps how long a live websocket connection may sit without
// sending a frame before it is closed.
const LiveRead = 2 * time.Minute

// SessionIdle is how long an untouched viewer session is kept in memory.
const SessionIdle = 30 * time.Minute
