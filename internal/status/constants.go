// internal/status/constants.go
package status

// Health journal line layout constants.
// The format is shared with the deployed log readers and MUST NOT change.

// TimeLayout renders the record timestamp: UTC, second precision.
const TimeLayout = "2006-01-02T15:04:05Z"

// ---- STATE TOKENS ----

// StateUnknown is a boot state; it never appears in the journal.
const StateUnknown = "UNKNOWN"

// StateOK means the backend answered exactly HTTP 200.
const StateOK = "OK"

// StateError covers every other probe outcome.
const StateError = "ERROR"

// ---- MESSAGES ----

// MsgUp is the OK record message.
const MsgUp = "FastAPI is up"

// MsgReturnedPrefix starts the ERROR message for an observed status code.
const MsgReturnedPrefix = "FastAPI returned"

// MsgTimedOut is the ERROR message for a probe that hit its deadline.
const MsgTimedOut = "request timed out"

// CodeUnreachable is the placeholder code recorded when the probe observed
// no HTTP response at all (connection refused, DNS failure).
const CodeUnreachable = "000"
