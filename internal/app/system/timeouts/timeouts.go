// internal/app/system/timeouts/timeouts.go
package timeouts

import "time"

// Query timeout tiers. Handlers wrap r.Context() with one of these before
// touching the database so a slow Mongo never pins a request goroutine.

// Ping is for health checks.
func Ping() time.Duration { return 2 * time.Second }

// Short is for single-document lookups.
func Short() time.Duration { return 5 * time.Second }

// Medium is for list pages and multi-query handlers.
func Medium() time.Duration { return 10 * time.Second }

// Long is for aggregations and uploads.
func Long() time.Duration { return 30 * time.Second }
