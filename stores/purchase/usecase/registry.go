package usecase

import (
	"sync"

	"github.com/farbarter/goapi/base/codec"
	bCtx "github.com/farbarter/goapi/base/ctx"
	"github.com/farbarter/goapi/base/log"
	"github.com/farbarter/goapi/domain"
)

type purchaseUseCase struct {
	purchase domain.PurchaseFunc

	mu      sync.Mutex
	actions map[string]*Action
}

// NewPurchaseUseCase keeps one Action per listing. A nil purchase turns every
// Purchase into a no-op.
func NewPurchaseUseCase(purchase domain.PurchaseFunc) domain.PurchaseUseCase {
	return &purchaseUseCase{
		purchase: purchase,
		actions:  make(map[string]*Action),
	}
}

func (u *purchaseUseCase) Purchase(c bCtx.Ctx, listingId string, listing *domain.ListingDetails) (bool, error) {
	if u.purchase == nil {
		return false, nil
	}
	id, err := codec.ValidateIdentifier(listingId)
	if err != nil {
		return false, err
	}
	if listing == nil || !listing.Purchasable() {
		return false, domain.ErrPurchaseNotAllowed
	}

	key := id.String()
	// the purchase outlives the request that triggered it
	pc := bCtx.WithValue(bCtx.Detach(c), "listingId", key)
	done, err := u.action(key).Invoke(pc, func(c bCtx.Ctx) error {
		return u.purchase(c, listing)
	})
	if err != nil {
		c.WithFields(log.Fields{
			"listingId": key,
			"err":       err,
		}).Info("purchase rejected")
		return false, err
	}
	return done != nil, nil
}

func (u *purchaseUseCase) Processing(listingId string) bool {
	id, err := codec.ValidateIdentifier(listingId)
	if err != nil {
		return false
	}
	u.mu.Lock()
	a, ok := u.actions[id.String()]
	u.mu.Unlock()
	return ok && a.Processing()
}

func (u *purchaseUseCase) action(key string) *Action {
	u.mu.Lock()
	defer u.mu.Unlock()
	a, ok := u.actions[key]
	if !ok {
		a = &Action{}
		u.actions[key] = a
	}
	return a
}
