// internal/probe/runner.go
package probe

import (
	"context"
	"time"
)

// Run starts the ticker loop and emits Result on the provided channel.
// One probe per tick. No overlap. No retries.
func (p *Prober) Run(ctx context.Context, out chan<- Result) {
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			out <- p.Once(ctx)
		}
	}
}
