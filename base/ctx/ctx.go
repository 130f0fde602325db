package ctx

import (
	"context"
	"time"

	log "github.com/farbarter/goapi/base/log"
)

// Ctx is the context every usecase, repository and service call takes.
// The embedded logger carries the request scoped fields.
type Ctx struct {
	context.Context
	log.Logger
}

func Background() Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  log.Log(),
	}
}

// From wraps a plain context, e.g. the one of an incoming http request.
func From(c context.Context) Ctx {
	return Ctx{
		Context: c,
		Logger:  log.Log(),
	}
}

// Detach keeps the logger and values lookup of parent but drops its
// cancellation and deadline.
func Detach(parent Ctx) Ctx {
	return Ctx{
		Context: detached{parent.Context},
		Logger:  parent.Logger,
	}
}

func WithValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent, key, val),
		Logger:  parent.Logger.WithField(key, val),
	}
}

func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	c := parent
	for k, v := range kvs {
		c = WithValue(c, k, v)
	}
	return c
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}

// WithTimeout derives a deadline context. A non-positive timeout keeps the
// parent's deadline (if any) and only attaches a cancel func.
func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	if timeout <= 0 {
		return WithCancel(parent)
	}
	ctx, cancel := context.WithTimeout(parent, timeout)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}

type detached struct {
	parent context.Context
}

func (detached) Deadline() (time.Time, bool) { return time.Time{}, false }
func (detached) Done() <-chan struct{}       { return nil }
func (detached) Err() error                  { return nil }

func (d detached) Value(key interface{}) interface{} {
	return d.parent.Value(key)
}
