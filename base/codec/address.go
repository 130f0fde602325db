package codec

import (
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	"github.com/farbarter/goapi/domain"
)

// NormalizeAddress checks a hex address and returns it in checksum form.
func NormalizeAddress(raw string) (domain.Address, error) {
	if !common.IsHexAddress(raw) {
		return "", xerrors.Errorf("%q: %w", raw, domain.ErrInvalidAddress)
	}
	return domain.Address(common.HexToAddress(raw).Hex()), nil
}

func ToCommonAddress(addr domain.Address) common.Address {
	return common.HexToAddress(string(addr))
}
