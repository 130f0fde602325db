package presenter

import (
	"strconv"

	bCtx "github.com/farbarter/goapi/base/ctx"
	"github.com/farbarter/goapi/base/log"
	"github.com/farbarter/goapi/domain"
)

const (
	siteName = "Farbarter"

	FallbackTitle       = "Listing | " + siteName
	FallbackDescription = "View listing details on " + siteName
	DefaultErrorMessage = "Failed to load listing"

	LabelPurchase   = "PURCHASE NOW"
	LabelProcessing = "PROCESSING..."
	LabelSoldOut    = "SOLD OUT"
	LabelInactive   = "LISTING NO LONGER ACTIVE"

	PaymentNote = "Seller prefers USDC on Base, but accepts any token on any chain through cross-chain swaps"
)

type OpenGraph struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// PageMetadata is what goes into the page head.
type PageMetadata struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Images      []string   `json:"images,omitempty"`
	OpenGraph   *OpenGraph `json:"openGraph,omitempty"`
}

// ToPageMetadata never fails: any error yields the fallback pair.
func ToPageMetadata(c bCtx.Ctx, details *domain.ListingDetails, err error) PageMetadata {
	if err != nil || details == nil {
		fields := log.Fields{"err": err}
		if re, ok := domain.AsResolutionError(err); ok {
			fields["kind"] = re.Kind
		}
		c.WithFields(fields).Warn("using fallback page metadata")
		return PageMetadata{
			Title:       FallbackTitle,
			Description: FallbackDescription,
		}
	}
	images := []string{}
	if details.Metadata.ImageUrl != "" {
		images = append(images, details.Metadata.ImageUrl)
	}
	return PageMetadata{
		Title:       details.Metadata.Name + " | " + siteName,
		Description: details.Metadata.Description,
		Images:      images,
		OpenGraph: &OpenGraph{
			Title:       details.Metadata.Name,
			Description: details.Metadata.Description,
			Images:      images,
		},
	}
}

type ViewStatus string

const (
	ViewLoading ViewStatus = "loading"
	ViewLoaded  ViewStatus = "loaded"
	ViewError   ViewStatus = "error"
)

// ViewState is exactly one of loading, loaded with a listing, or error with
// a message.
type ViewState struct {
	Status  ViewStatus             `json:"status"`
	Listing *domain.ListingDetails `json:"listing,omitempty"`
	Message string                 `json:"message,omitempty"`
}

func Loading() ViewState {
	return ViewState{Status: ViewLoading}
}

func ToViewState(details *domain.ListingDetails, err error) ViewState {
	if err != nil {
		return ViewState{Status: ViewError, Message: errorMessage(err)}
	}
	if details == nil {
		return Loading()
	}
	return ViewState{Status: ViewLoaded, Listing: details}
}

func errorMessage(err error) string {
	var msg string
	if re, ok := domain.AsResolutionError(err); ok {
		msg = re.CauseText()
	} else {
		msg = err.Error()
	}
	if msg == "" {
		return DefaultErrorMessage
	}
	return msg
}

// ActionState is the purchase control.
type ActionState struct {
	Enabled bool   `json:"enabled"`
	Label   string `json:"label"`
}

// PurchaseGate enables the control iff the listing is active and not sold
// out. Inactive wins over sold out.
func PurchaseGate(isActive bool, remainingSupply uint64, processing bool) ActionState {
	switch {
	case !isActive:
		return ActionState{Label: LabelInactive}
	case remainingSupply == 0:
		return ActionState{Label: LabelSoldOut}
	case processing:
		return ActionState{Label: LabelProcessing}
	}
	return ActionState{Enabled: true, Label: LabelPurchase}
}

type Stats struct {
	Price       string `json:"price"`
	Available   string `json:"available"`
	Location    string `json:"location"`
	SellerFid   string `json:"sellerFid"`
	PaymentNote string `json:"paymentNote"`
}

func ToStats(details *domain.ListingDetails) Stats {
	location := details.Metadata.Location
	if details.Metadata.IsOnline {
		location += " (Online)"
	}
	return Stats{
		Price:       details.Price + " " + domain.PaymentTokenSymbol,
		Available:   strconv.FormatUint(details.RemainingSupply, 10) + " / " + strconv.FormatUint(details.Metadata.Supply, 10),
		Location:    location,
		SellerFid:   strconv.FormatUint(details.Fid, 10),
		PaymentNote: PaymentNote,
	}
}
