// Package timeouts defines shared timeout constants used by tracker servers.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// StoreOpen caps database open and migration work at startup.
const StoreOpen = 10 * time.Second
