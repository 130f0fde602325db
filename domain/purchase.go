package domain

import (
	"github.com/farbarter/goapi/base/ctx"
)

// PurchaseFunc performs a purchase of one item of a listing.
type PurchaseFunc func(c ctx.Ctx, listing *ListingDetails) error

type PurchaseUseCase interface {
	// Purchase starts fn for the listing in the background. It returns
	// ErrPurchaseNotAllowed when the listing is gated and
	// ErrPurchaseInProgress while a previous purchase of it is running.
	// A nil fn makes the call a no-op: started is false and err is nil.
	Purchase(c ctx.Ctx, listingId string, listing *ListingDetails) (started bool, err error)
	Processing(listingId string) bool
}
