package usecase

import (
	"github.com/farbarter/goapi/base/codec"
	bCtx "github.com/farbarter/goapi/base/ctx"
	"github.com/farbarter/goapi/base/log"
	"github.com/farbarter/goapi/base/metrics"
	"github.com/farbarter/goapi/domain"
	"github.com/farbarter/goapi/service/chain/contract"
)

type ListingUseCaseCfg struct {
	Farbarter contract.FarbarterContract
	Metadata  domain.MetadataUseCase
}

type listingUseCase struct {
	farbarter contract.FarbarterContract
	metadata  domain.MetadataUseCase
	metrics   metrics.Service
}

func NewListingUseCase(cfg *ListingUseCaseCfg) domain.ListingUseCase {
	return &listingUseCase{
		farbarter: cfg.Farbarter,
		metadata:  cfg.Metadata,
		metrics:   metrics.New("listing"),
	}
}

func (u *listingUseCase) GetListingDetails(c bCtx.Ctx, listingId string) (*domain.ListingDetails, error) {
	defer u.metrics.BumpTime("get_listing_details.time").End()

	details, err := u.getListingDetails(c, listingId)
	if err != nil {
		kind := "unknown"
		if re, ok := domain.AsResolutionError(err); ok {
			kind = string(re.Kind)
		}
		u.metrics.BumpSum("resolution.err", 1, "kind", kind)
		return nil, err
	}
	return details, nil
}

// getListingDetails is strictly sequential: the metadata read only starts
// once the contract read succeeded.
func (u *listingUseCase) getListingDetails(c bCtx.Ctx, listingId string) (*domain.ListingDetails, error) {
	id, err := codec.ValidateIdentifier(listingId)
	if err != nil {
		c.WithFields(log.Fields{
			"listingId": listingId,
			"err":       err,
		}).Warn("codec.ValidateIdentifier failed")
		return nil, err
	}

	raw, err := u.farbarter.GetListingDetails(c, id)
	if err != nil {
		c.WithFields(log.Fields{
			"listingId": id.String(),
			"err":       err,
		}).Error("farbarter.GetListingDetails failed")
		return nil, asKind(domain.ContractReadFailure, err)
	}

	metadata, err := u.metadata.ResolveMetadata(c, raw.MetadataPointer)
	if err != nil {
		c.WithFields(log.Fields{
			"listingId": id.String(),
			"pointer":   raw.MetadataPointer,
			"err":       err,
		}).Error("metadata.ResolveMetadata failed")
		return nil, asKind(domain.MetadataFetchFailure, err)
	}

	details := &domain.ListingDetails{
		Seller:          raw.Seller,
		Fid:             raw.Fid,
		Price:           codec.DecodePrice(raw.PriceMinorUnits, domain.PaymentTokenDecimals),
		RemainingSupply: raw.RemainingSupply,
		Metadata:        *metadata,
		IsActive:        raw.IsActive,
		TotalSales:      raw.TotalSales,
		PreferredToken:  raw.PreferredToken,
		PreferredChain:  raw.PreferredChain,
	}
	if details.SupplyMismatch() {
		c.WithFields(log.Fields{
			"listingId":       id.String(),
			"remainingSupply": details.RemainingSupply,
			"supply":          details.Metadata.Supply,
		}).Warn("remaining supply exceeds metadata supply")
	}
	return details, nil
}

// asKind keeps a collaborator's tagged error and tags anything else with kind.
func asKind(kind domain.ResolutionErrorKind, err error) error {
	if _, ok := domain.AsResolutionError(err); ok {
		return err
	}
	return domain.NewResolutionError(kind, err)
}
