package domain

import (
	"math/big"

	"github.com/farbarter/goapi/base/ctx"
)

const (
	// PaymentTokenDecimals is the precision of the token listing prices are quoted in
	PaymentTokenDecimals int32 = 6
	PaymentTokenSymbol         = "USDC"
)

// RawListing is the decoded getListingDetails tuple, in contract order.
type RawListing struct {
	Seller          Address
	Fid             uint64
	PriceMinorUnits *big.Int
	RemainingSupply uint64
	MetadataPointer string
	IsActive        bool
	TotalSales      uint64
	PreferredToken  string
	PreferredChain  uint64
}

// ListingMetadata is the off-chain document a listing points to.
type ListingMetadata struct {
	ImageUrl    string `json:"imageUrl,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Supply      uint64 `json:"supply"`
	Location    string `json:"location"`
	IsOnline    bool   `json:"isOnline"`
}

// ListingDetails is a fully resolved listing. It is built once per
// resolution and never modified afterwards.
type ListingDetails struct {
	Seller          Address         `json:"seller"`
	Fid             uint64          `json:"fid"`
	Price           string          `json:"price"`
	RemainingSupply uint64          `json:"remainingSupply"`
	Metadata        ListingMetadata `json:"metadata"`
	IsActive        bool            `json:"isActive"`
	TotalSales      uint64          `json:"totalSales"`
	PreferredToken  string          `json:"preferredToken"`
	PreferredChain  uint64          `json:"preferredChain"`
}

// SupplyMismatch reports the chain claiming more remaining items than the
// metadata says exist. It is surfaced, never enforced.
func (d *ListingDetails) SupplyMismatch() bool {
	return d.RemainingSupply > d.Metadata.Supply
}

// Purchasable mirrors the purchase control: active and not sold out.
func (d *ListingDetails) Purchasable() bool {
	return d.IsActive && d.RemainingSupply > 0
}

type ListingUseCase interface {
	GetListingDetails(c ctx.Ctx, listingId string) (*ListingDetails, error)
}
