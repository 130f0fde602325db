package domain

import (
	"net/http"

	"github.com/farbarter/goapi/base/ctx"
)

const DefaultSaleAmount = "8"

// Sale is a payment link minted for a peer-to-peer sale.
type Sale struct {
	Amount         string `json:"amount"`
	IdempotencyKey string `json:"idempotencyKey"`
	PaymentLink    string `json:"paymentLink"`
	QrCodeUrl      string `json:"qrCodeUrl"`
}

type SaleUseCase interface {
	// CreateSale asks the payment service for a link, cookies are the
	// caller's credentials and are forwarded as is.
	CreateSale(c ctx.Ctx, amount string, cookies []*http.Cookie) (*Sale, error)
	BuyHint(userAgent string) string
}
