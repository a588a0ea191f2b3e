// internal/probe/types.go
package probe

import "time"

// Result is the snapshot produced by one probe cycle.
type Result struct {
	At time.Time

	// StatusCode is the observed HTTP status code.
	// 0 means no response was observed; Err says why.
	StatusCode int

	Elapsed time.Duration

	Err error // non-nil means the probe produced no usable response
}
