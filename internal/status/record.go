// internal/status/record.go
package status

import (
	"strconv"
	"time"
)

// Record is exactly one health-journal entry.
// It contains no logic and no memory of the past beyond current state.
type Record struct {
	At      time.Time
	State   string
	Message string
}

// OK reports whether the record is a healthy observation.
func (r Record) OK() bool {
	return r.State == StateOK
}

// For builds the record for one probe outcome.
//
// Decision rule: exactly 200 is OK; any other code is ERROR with the literal
// code; no response at all is ERROR with the placeholder code; a deadline
// hit is its own ERROR category.
func For(at time.Time, code int, timedOut bool) Record {
	if timedOut {
		return Record{At: at, State: StateError, Message: MsgTimedOut}
	}

	if code == 200 {
		return Record{At: at, State: StateOK, Message: MsgUp}
	}

	observed := CodeUnreachable
	if code != 0 {
		observed = strconv.Itoa(code)
	}

	return Record{At: at, State: StateError, Message: MsgReturnedPrefix + " " + observed}
}
