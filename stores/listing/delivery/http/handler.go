package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farbarter/goapi/base/ctx"
	"github.com/farbarter/goapi/base/delivery"
	"github.com/farbarter/goapi/base/log"
	"github.com/farbarter/goapi/domain"
	"github.com/farbarter/goapi/middleware"
	"github.com/farbarter/goapi/stores/listing/presenter"
)

type handler struct {
	listing  domain.ListingUseCase
	purchase domain.PurchaseUseCase
}

func New(e *echo.Echo, listing domain.ListingUseCase, purchase domain.PurchaseUseCase) {
	h := &handler{
		listing:  listing,
		purchase: purchase,
	}

	e.GET("/listings", h.getPage)
	e.GET("/listings/:listingId", h.getPage)

	g := e.Group("/api/listings")
	g.GET("/:listingId", h.getListing)
	g.GET("/:listingId/meta", h.getPageMetadata)
	g.POST("/:listingId/purchase", h.purchaseListing, middleware.IsValidListingId("listingId"))
}

func listingId(c echo.Context) string {
	if id := c.Param("listingId"); id != "" {
		return id
	}
	return c.QueryParam("listingId")
}

func (h *handler) getPage(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	id := listingId(c)

	view := presenter.NewView()
	ticket := view.Begin()
	details, err := h.listing.GetListingDetails(ctx, id)
	if c.Request().Context().Err() != nil {
		// client went away while resolving
		view.Close()
	}
	if !view.Commit(ctx, ticket, details, err) {
		return nil
	}

	p := &page{
		ListingId: id,
		Meta:      presenter.ToPageMetadata(ctx, details, err),
		State:     view.State(),
	}
	if p.State.Status == presenter.ViewLoaded {
		l := p.State.Listing
		p.Stats = presenter.ToStats(l)
		p.Action = presenter.PurchaseGate(l.IsActive, l.RemainingSupply, h.purchase.Processing(id))
	}

	body, err := renderPage(p)
	if err != nil {
		ctx.WithFields(log.Fields{
			"listingId": id,
			"err":       err,
		}).Error("renderPage failed")
		return c.String(http.StatusInternalServerError, presenter.DefaultErrorMessage)
	}
	return c.HTMLBlob(http.StatusOK, body)
}

type listingResp struct {
	*domain.ListingDetails
	Stats  presenter.Stats       `json:"stats"`
	Action presenter.ActionState `json:"action"`
}

func (h *handler) getListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	id := c.Param("listingId")

	details, err := h.listing.GetListingDetails(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, listingResp{
		ListingDetails: details,
		Stats:          presenter.ToStats(details),
		Action:         presenter.PurchaseGate(details.IsActive, details.RemainingSupply, h.purchase.Processing(id)),
	})
}

func (h *handler) getPageMetadata(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	details, err := h.listing.GetListingDetails(ctx, c.Param("listingId"))
	return c.JSON(http.StatusOK, presenter.ToPageMetadata(ctx, details, err))
}

func (h *handler) purchaseListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	id := c.Param("listingId")

	details, err := h.listing.GetListingDetails(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	started, err := h.purchase.Purchase(ctx, id, details)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	}
	if !started {
		return c.NoContent(http.StatusNoContent)
	}
	return delivery.MakeJsonResp(c, http.StatusAccepted, presenter.PurchaseGate(details.IsActive, details.RemainingSupply, true))
}
