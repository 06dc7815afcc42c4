package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-finance-tracker/models"
)

const defaultDashboardPollInterval = time.Minute

type clientDashboardPoller struct {
	finance ClientFinanceService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientDashboardPoller creates a poller that reloads the dashboard through
// finance on a ticker. It is idle until Start is called.
func NewClientDashboardPoller(finance ClientFinanceService) ClientDashboardPoller {
	return &clientDashboardPoller{finance: finance}
}

// Start implements ClientDashboardPoller. The goroutine exits when ctx is
// cancelled, when Stop is called, or when the session expires.
func (p *clientDashboardPoller) Start(ctx context.Context, interval time.Duration, onUpdate func(models.Dashboard, error)) {
	if interval <= 0 {
		interval = defaultDashboardPollInterval
	}

	p.Stop()

	p.mu.Lock()
	pollCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-pollCtx.Done():
				return
			case <-t.C:
				dashboard, err := p.finance.Dashboard(pollCtx)
				if pollCtx.Err() != nil {
					return
				}
				onUpdate(dashboard, err)
				if errors.Is(err, ErrSessionExpired) {
					return
				}
			}
		}
	}()
}

// Stop implements ClientDashboardPoller. Safe to call when the poller is not
// running.
func (p *clientDashboardPoller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}
