package usecase

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/xerrors"

	bCtx "github.com/farbarter/goapi/base/ctx"
	"github.com/farbarter/goapi/base/log"
	bValidator "github.com/farbarter/goapi/base/validator"
	"github.com/farbarter/goapi/domain"
	"github.com/farbarter/goapi/service/daimo"
)

const (
	qrCodeEndpoint = "https://api.qrserver.com/v1/create-qr-code/?size=256x256&data="

	MobileBuyHint  = "When someone clicks the sell button, they get a QR code. To pay that item, you need to scan that code with your phone's camera"
	DesktopBuyHint = "You can only scan QR codes on a mobile device"
)

var mobileUserAgent = regexp.MustCompile(`(?i)iPhone|iPad|iPod|Android`)

type SaleUseCaseCfg struct {
	Daimo daimo.Client
	// NewKey overrides the idempotency key generator
	NewKey func() string
}

type saleUseCase struct {
	daimo  daimo.Client
	newKey func() string
}

func NewSaleUseCase(cfg *SaleUseCaseCfg) domain.SaleUseCase {
	newKey := cfg.NewKey
	if newKey == nil {
		newKey = func() string { return uuid.New().String() }
	}
	return &saleUseCase{
		daimo:  cfg.Daimo,
		newKey: newKey,
	}
}

func (u *saleUseCase) CreateSale(c bCtx.Ctx, amount string, cookies []*http.Cookie) (*domain.Sale, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		amount = domain.DefaultSaleAmount
	}
	if !bValidator.IsValidTokenAmount(amount) {
		return nil, xerrors.Errorf("%w: %q", domain.ErrInvalidAmount, amount)
	}

	// a fresh key per attempt, retries are new sales
	key := u.newKey()
	resp, err := u.daimo.CreateSale(c, &daimo.CreateSaleRequest{
		Amount:         amount,
		IdempotencyKey: key,
	}, cookies)
	if err != nil {
		c.WithFields(log.Fields{
			"amount":         amount,
			"idempotencyKey": key,
			"err":            err,
		}).Error("daimo.CreateSale failed")
		return nil, xerrors.Errorf("%w: %v", domain.ErrNoPaymentLink, err)
	}
	if resp.PaymentLink == "" {
		c.WithField("idempotencyKey", key).Warn("no payment link in response")
		return nil, domain.ErrNoPaymentLink
	}

	return &domain.Sale{
		Amount:         amount,
		IdempotencyKey: key,
		PaymentLink:    resp.PaymentLink,
		QrCodeUrl:      qrCodeEndpoint + url.QueryEscape(resp.PaymentLink),
	}, nil
}

func (u *saleUseCase) BuyHint(userAgent string) string {
	if mobileUserAgent.MatchString(userAgent) {
		return MobileBuyHint
	}
	return DesktopBuyHint
}
