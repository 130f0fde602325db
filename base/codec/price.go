package codec

import (
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/farbarter/goapi/domain"
)

// DecodePrice shifts an integer amount of minor units into its human readable
// decimal form, 8000000 at 6 decimals is "8" and 1234567 is "1.234567".
func DecodePrice(minorUnits *big.Int, decimals int32) string {
	if minorUnits == nil {
		return "0"
	}
	return decimal.NewFromBigInt(minorUnits, -decimals).String()
}

// EncodePrice is the inverse of DecodePrice. It fails on negative amounts and
// on amounts finer than the token precision.
func EncodePrice(price string, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(price)
	if err != nil {
		return nil, xerrors.Errorf("%q: %w", price, domain.ErrInvalidNumberFormat)
	}
	if d.IsNegative() {
		return nil, xerrors.Errorf("%q is negative: %w", price, domain.ErrInvalidNumberFormat)
	}
	shifted := d.Shift(decimals)
	if !shifted.Equal(shifted.Truncate(0)) {
		return nil, xerrors.Errorf("%q has more than %d decimals: %w", price, decimals, domain.ErrInvalidNumberFormat)
	}
	return shifted.BigInt(), nil
}

// DecodeCount narrows a uint256 used as a counter or id to uint64.
func DecodeCount(v *big.Int) (uint64, error) {
	if v == nil {
		return 0, xerrors.Errorf("nil value: %w", domain.ErrInvalidNumberFormat)
	}
	if v.Sign() < 0 || !v.IsUint64() {
		return 0, xerrors.Errorf("%s does not fit uint64: %w", v.String(), domain.ErrInvalidNumberFormat)
	}
	return v.Uint64(), nil
}
