package validator

import (
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/farbarter/goapi/base/codec"
	"github.com/farbarter/goapi/domain"
)

const (
	// TagEthAddress accepts hex addresses in any case
	TagEthAddress = "eth_address"
	// TagTokenAmount accepts a positive decimal with at most PaymentTokenDecimals fractional digits
	TagTokenAmount = "token_amount"
)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	if !common.IsHexAddress(address) {
		return false
	}
	checksum := common.HexToAddress(address).Hex()
	return strings.EqualFold(checksum, address)
}

// IsValidTokenAmount reports whether amount is a positive payment token amount.
func IsValidTokenAmount(amount string) bool {
	v, err := codec.EncodePrice(strings.TrimSpace(amount), domain.PaymentTokenDecimals)
	return err == nil && v.Sign() > 0
}

// New returns a validate instance knowing the custom tags of this service.
func New() *validator.Validate {
	v := validator.New()
	// report json names in field errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// registering static tags with a non-nil func never fails
	_ = v.RegisterValidation(TagEthAddress, func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	_ = v.RegisterValidation(TagTokenAmount, func(fl validator.FieldLevel) bool {
		return IsValidTokenAmount(fl.Field().String())
	})
	return v
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
