// Package lifecycle holds shared constants for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a lifecycle hook may take before it is abandoned.
const DefaultTimeout = 10 * time.Second
