// internal/probe/builder.go
package probe

import (
	"net/http"
	"time"

	cfg "github.com/drafel/battmon/internal/config"
)

// Build constructs a Prober backed by a real HTTP client.
// The client enforces the probe deadline; the prober adds no retries and
// no semantics on top.
func Build(mc cfg.MonitorConfig) (*Prober, error) {
	client := &http.Client{
		Timeout: time.Duration(mc.TimeoutMs) * time.Millisecond,
	}

	return New(
		Config{
			URL:      mc.URL,
			Interval: time.Duration(mc.IntervalMs) * time.Millisecond,
		},
		client,
	)
}
