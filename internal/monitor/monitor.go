// internal/monitor/monitor.go
package monitor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/drafel/battmon/internal/probe"
	"github.com/drafel/battmon/internal/status"
)

// Journal is the exact journal contract the monitor uses.
// IMPORTANT: There must be NO other version of this interface anywhere.
type Journal interface {
	Ensure() error
	Append(line string) error
}

// Prober is the probe contract; *probe.Prober satisfies it.
type Prober interface {
	Once(ctx context.Context) probe.Result
}

// RunOnce performs the cron-mode cycle: ensure the journal exists, probe
// once, append exactly one well-formed record.
//
// The probe outcome never fails the run; the monitor reports, it does not
// judge. Only a journal failure is an error.
func RunOnce(ctx context.Context, p Prober, j Journal) error {
	if err := j.Ensure(); err != nil {
		return err
	}

	res := p.Once(ctx)
	return j.Append(status.Encode(recordFor(res)))
}

func recordFor(res probe.Result) status.Record {
	return status.For(res.At, res.StatusCode, errors.Is(res.Err, probe.ErrTimeout))
}

// ---- WATCH MODE ----

// Monitor consumes probe results and records them, tracking just enough
// state to report its own view. It observes; it never remediates.
type Monitor struct {
	target string
	sink   Journal
	logf   func(format string, v ...any)

	mu   sync.Mutex
	snap Snapshot
}

// Snapshot is the monitor's current view of the target.
type Snapshot struct {
	Target              string    `json:"target"`
	State               string    `json:"state"`
	LastRecord          string    `json:"last_record,omitempty"`
	LastProbeAt         time.Time `json:"last_probe_at"`
	LastStatusCode      int       `json:"last_status_code"`
	ConsecutiveFailures int       `json:"consecutive_failures"`
	TotalProbes         uint64    `json:"total_probes"`
	TotalFailures       uint64    `json:"total_failures"`
}

// New creates a watch-mode monitor. logf receives transition messages;
// pass log.Printf in production, a capture func in tests.
func New(target string, sink Journal, logf func(format string, v ...any)) *Monitor {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Monitor{
		target: target,
		sink:   sink,
		logf:   logf,
		snap: Snapshot{
			Target: target,
			State:  status.StateUnknown,
		},
	}
}

// Observe records one probe outcome: exactly one journal line per result.
// State transitions are logged once, on change only.
func (m *Monitor) Observe(res probe.Result) error {
	rec := recordFor(res)
	line := status.Encode(rec)

	err := m.sink.Append(line)

	m.mu.Lock()
	prev := m.snap.State

	m.snap.State = rec.State
	m.snap.LastRecord = line
	m.snap.LastProbeAt = res.At
	m.snap.LastStatusCode = res.StatusCode
	m.snap.TotalProbes++

	if rec.OK() {
		m.snap.ConsecutiveFailures = 0
	} else {
		m.snap.ConsecutiveFailures++
		m.snap.TotalFailures++
	}
	failures := m.snap.ConsecutiveFailures
	m.mu.Unlock()

	if prev != rec.State {
		if rec.OK() {
			m.logf("target %s recovered", m.target)
		} else {
			m.logf("target %s unhealthy: %s (consecutive failures: %d)", m.target, rec.Message, failures)
		}
	}

	return err
}

// Watch consumes results until ctx is done. Journal failures are logged
// and do not stop the loop; the next tick is the only retry mechanism.
func (m *Monitor) Watch(ctx context.Context, in <-chan probe.Result) {
	for {
		select {
		case <-ctx.Done():
			return
		case res := <-in:
			if err := m.Observe(res); err != nil {
				m.logf("journal write failed: %v", err)
			}
		}
	}
}

// Current returns a copy of the monitor's view.
func (m *Monitor) Current() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap
}
