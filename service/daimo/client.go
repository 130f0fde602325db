package daimo

import (
	"net/http"
	"time"

	bCtx "github.com/farbarter/goapi/base/ctx"
)

const DefaultBaseUrl = "https://farcaster.anky.bot"

// Client talks to the payment service minting daimo payment links.
type Client interface {
	// CreateSale posts one create-sale request. cookies are sent along as the
	// caller's credentials.
	CreateSale(ctx bCtx.Ctx, req *CreateSaleRequest, cookies []*http.Cookie) (*CreateSaleResponse, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	BaseUrl    string
}

type CreateSaleRequest struct {
	Amount         string `json:"amount"`
	IdempotencyKey string `json:"idempotencyKey"`
}

type CreateSaleResponse struct {
	PaymentLink string `json:"paymentLink"`
}
