// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/kardash/internal/logger"
)

// DefaultPollInterval is used when the poller is given a non-positive
// interval.
const DefaultPollInterval = 30 * time.Second

// UnreadCounter reports the number of unread notifications.
type UnreadCounter interface {
	UnreadCount(ctx context.Context) (int, error)
}

// NotificationPoller keeps the unread badge fresh: it asks for the unread
// count right away and then on every tick, and calls onChange whenever the
// count differs from the last one seen. Failed polls are logged and skipped.
type NotificationPoller struct {
	counter  UnreadCounter
	interval time.Duration
	onChange func(count int)
	logger   *logger.Logger

	// mu serializes Run and Stop; done closes when the current loop exits.
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewNotificationPoller(counter UnreadCounter, interval time.Duration, onChange func(count int), logger *logger.Logger) *NotificationPoller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &NotificationPoller{counter: counter, interval: interval, onChange: onChange, logger: logger}
}

// Run stops any previous polling loop and starts a new one.
func (p *NotificationPoller) Run(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	pollCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.cancel, p.done = cancel, done

	go p.loop(pollCtx, done)
}

// Stop cancels the polling loop and waits for it to exit. onChange must not
// call Stop.
func (p *NotificationPoller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
}

func (p *NotificationPoller) stopLocked() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
	p.cancel, p.done = nil, nil
}

func (p *NotificationPoller) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	t := time.NewTicker(p.interval)
	defer t.Stop()

	last := -1
	for {
		last = p.poll(ctx, last)

		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}

func (p *NotificationPoller) poll(ctx context.Context, last int) int {
	count, err := p.counter.UnreadCount(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Warn().Err(err).Str("func", "NotificationPoller.poll").Msg("unread count poll failed")
		}
		return last
	}

	if count != last && p.onChange != nil {
		p.onChange(count)
	}
	return count
}
