// Package lifecycle holds process-wide lifecycle limits shared by the fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook (DB ping, HTTP shutdown).
const DefaultTimeout = 10 * time.Second
