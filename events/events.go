// Package events routes cloud notifications to named handlers.
//
// A notification of type "network.create.end" is handled by the handler
// registered as "create_network_sync"; ".start" notifications go to the
// "_alert" handler of the same action. Delivery runs on the
// github.com/docker/go-events sink primitives, so a dispatcher can be
// placed behind a queue and a retrying sink.
package events

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/docker/go-events"
	"github.com/sirupsen/logrus"

	"github.com/openstack/networking-infoblox/log"
)

const (
	suffixAlert = "alert"
	suffixSync  = "sync"
)

// HandlerName returns the handler name for a notification type. The last
// three dot-separated segments are resource, action and phase; "start"
// maps to "alert" and "end" to "sync". Other phases are kept as given.
// Types with fewer than three segments have no handler.
func HandlerName(eventType string) string {
	parts := strings.Split(eventType, ".")
	if len(parts) < 3 {
		return ""
	}
	n := len(parts)
	resource, action, phase := parts[n-3], parts[n-2], parts[n-1]
	if resource == "" || action == "" || phase == "" {
		return ""
	}
	switch phase {
	case "start":
		phase = suffixAlert
	case "end":
		phase = suffixSync
	}
	return action + "_" + resource + "_" + phase
}

// Notification is a single cloud notification.
type Notification struct {
	EventType string
	Payload   map[string]interface{}
}

// Handler handles notifications routed to it.
type Handler interface {
	Handle(ctx context.Context, n Notification) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, n Notification) error

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, n Notification) error {
	return f(ctx, n)
}

// Dispatcher is an events.Sink that calls the handler registered for the
// type of every notification written to it. Notifications nobody handles
// are dropped.
type Dispatcher struct {
	ctx context.Context

	mu       sync.RWMutex
	handlers map[string]Handler
	closed   bool
}

var _ events.Sink = &Dispatcher{}

// NewDispatcher returns a dispatcher whose handlers run with ctx.
func NewDispatcher(ctx context.Context) *Dispatcher {
	return &Dispatcher{
		ctx:      log.WithModule(ctx, "events"),
		handlers: make(map[string]Handler),
	}
}

// Register sets the handler for name, replacing any previous one.
func (d *Dispatcher) Register(name string, h Handler) {
	d.mu.Lock()
	d.handlers[name] = h
	d.mu.Unlock()
}

// Write dispatches a Notification. Other event types are dropped.
func (d *Dispatcher) Write(event events.Event) error {
	n, ok := event.(Notification)
	if !ok {
		log.G(d.ctx).Debugf("dropping event of type %T", event)
		return nil
	}

	d.mu.RLock()
	if d.closed {
		d.mu.RUnlock()
		return events.ErrSinkClosed
	}
	name := HandlerName(n.EventType)
	h, ok := d.handlers[name]
	d.mu.RUnlock()

	ctx := log.WithFields(d.ctx, logrus.Fields{
		"event.type": n.EventType,
		"handler":    name,
	})
	if !ok {
		log.G(ctx).Debug("no handler for notification")
		return nil
	}
	if err := h.Handle(ctx, n); err != nil {
		log.G(ctx).WithError(err).Warn("notification handler failed")
		return err
	}
	return nil
}

// Close stops the dispatcher. Later writes fail with events.ErrSinkClosed.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	return nil
}

// RetryConfig controls redelivery of notifications whose handler failed.
type RetryConfig struct {
	Base   time.Duration
	Factor time.Duration
	Max    time.Duration
}

// DefaultRetryConfig is used by NewPipeline when no config is given.
var DefaultRetryConfig = RetryConfig{
	Base:   time.Second,
	Factor: time.Second,
	Max:    30 * time.Second,
}

// NewPipeline places dst behind an asynchronous queue and a sink that
// retries failed writes with exponential backoff. Closing the returned
// sink flushes queued notifications before closing dst.
func NewPipeline(dst events.Sink, cfg *RetryConfig) events.Sink {
	if cfg == nil {
		cfg = &DefaultRetryConfig
	}
	backoff := events.NewExponentialBackoff(events.ExponentialBackoffConfig{
		Base:   cfg.Base,
		Factor: cfg.Factor,
		Max:    cfg.Max,
	})
	return events.NewQueue(events.NewRetryingSink(dst, backoff))
}
