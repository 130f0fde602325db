package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farbarter/goapi/base/ctx"
	"github.com/farbarter/goapi/base/delivery"
	"github.com/farbarter/goapi/domain"
)

type handler struct {
	sale domain.SaleUseCase
}

func New(e *echo.Echo, sale domain.SaleUseCase) {
	h := &handler{
		sale: sale,
	}

	g := e.Group("/api/sales")
	g.POST("", h.createSale)
	g.GET("/buy-hint", h.buyHint)
}

type createSaleReq struct {
	Amount string `json:"amount" validate:"omitempty,token_amount"`
}

type createSaleResp struct {
	Amount      string `json:"amount"`
	PaymentLink string `json:"paymentLink"`
	QrCodeUrl   string `json:"qrCodeUrl"`
}

func (h *handler) createSale(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	req := createSaleReq{}
	if err := c.Bind(&req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	sale, err := h.sale.CreateSale(ctx, req.Amount, c.Cookies())
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, createSaleResp{
		Amount:      sale.Amount,
		PaymentLink: sale.PaymentLink,
		QrCodeUrl:   sale.QrCodeUrl,
	})
}

func (h *handler) buyHint(c echo.Context) error {
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]string{
		"hint": h.sale.BuyHint(c.Request().UserAgent()),
	})
}
