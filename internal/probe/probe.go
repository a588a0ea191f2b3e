// internal/probe/probe.go
package probe

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"
)

// ErrTimeout marks a probe that hit its deadline before a response arrived.
// A timeout is its own failure category, distinct from unreachable.
var ErrTimeout = errors.New("probe: request timed out")

// Doer abstracts the HTTP transport the prober needs.
// *http.Client satisfies it; tests substitute fakes.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config is the minimal runtime config the prober needs.
type Config struct {
	URL      string
	Interval time.Duration
}

// Prober is a dumb, clock-driven checker.
type Prober struct {
	cfg    Config
	client Doer
}

// New creates a prober with immutable config.
func New(cfg Config, client Doer) (*Prober, error) {
	if cfg.URL == "" {
		return nil, errors.New("probe: url required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("probe: interval must be > 0")
	}
	if client == nil {
		return nil, errors.New("probe: client required")
	}
	return &Prober{cfg: cfg, client: client}, nil
}

// Once performs exactly one probe cycle: a single GET, status code only.
// The response body is irrelevant and discarded. No retries.
func (p *Prober) Once(ctx context.Context) Result {
	res := Result{At: time.Now().UTC()}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.URL, nil)
	if err != nil {
		res.Err = err
		return res
	}

	start := time.Now()
	resp, err := p.client.Do(req)
	res.Elapsed = time.Since(start)

	if err != nil {
		if isTimeout(err) {
			res.Err = ErrTimeout
		} else {
			res.Err = err
		}
		return res
	}

	// Drain a little so the connection can be reused, then close.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	_ = resp.Body.Close()

	res.StatusCode = resp.StatusCode
	return res
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
