package usecase

import (
	"sync/atomic"

	bCtx "github.com/farbarter/goapi/base/ctx"
	"github.com/farbarter/goapi/base/goroutine"
	"github.com/farbarter/goapi/base/log"
	"github.com/farbarter/goapi/domain"
)

// Action runs at most one purchase at a time. Invocations made while one is
// outstanding are rejected, not queued.
type Action struct {
	busy int32
}

// Invoke starts fn in the background. done is closed once fn returned or
// panicked, it is nil when nothing was started. A nil fn is a no-op.
// Failures are logged and never returned to the caller.
func (a *Action) Invoke(c bCtx.Ctx, fn func(bCtx.Ctx) error) (done <-chan struct{}, err error) {
	if fn == nil {
		return nil, nil
	}
	if !atomic.CompareAndSwapInt32(&a.busy, 0, 1) {
		return nil, domain.ErrPurchaseInProgress
	}

	ended := make(chan struct{})
	goroutine.RecoverableGo(func() {
		if err := fn(c); err != nil {
			c.WithField("err", domain.NewResolutionError(domain.PurchaseActionFailure, err)).Error("purchase failed")
		}
	},
		goroutine.WithLogger(c.Logger),
		goroutine.WithAfterRecovered(func(p interface{}, _ []byte) {
			c.WithField("panic", p).Error("purchase failed")
		}),
		goroutine.WithAfterEnded(func() {
			atomic.StoreInt32(&a.busy, 0)
			close(ended)
		}),
	)
	return ended, nil
}

func (a *Action) Processing() bool {
	return atomic.LoadInt32(&a.busy) == 1
}

// LogOnlyPurchase stands in for a real purchase flow: there is no wallet
// and nothing gets signed.
func LogOnlyPurchase(c bCtx.Ctx, listing *domain.ListingDetails) error {
	c.WithFields(log.Fields{
		"seller": listing.Seller,
		"price":  listing.Price,
		"name":   listing.Metadata.Name,
	}).Info("purchase requested")
	return nil
}
