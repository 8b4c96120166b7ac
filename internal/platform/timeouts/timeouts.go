// Package timeouts defines the durations shared by the command-line tools.
package timeouts

import "time"

// Shutdown caps how long a tool waits for telemetry to flush on exit.
const Shutdown = 5 * time.Second

// Export caps a full catalog export, including migrations.
const Export = 30 * time.Second
