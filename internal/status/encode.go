// internal/status/encode.go
package status

// Encode renders one Record as one journal line.
// Layout is protocol-locked: "<ISO8601Z> <state> - <message>".
// No IO. No side effects.
func Encode(r Record) string {
	return r.At.UTC().Format(TimeLayout) + " " + r.State + " - " + r.Message
}
