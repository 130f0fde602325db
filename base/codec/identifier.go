package codec

import (
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"golang.org/x/xerrors"

	"github.com/farbarter/goapi/domain"
)

// ValidateIdentifier parses a listing id as given by a route or a user. It
// does not tell whether the listing exists, only the contract knows.
func ValidateIdentifier(raw string) (*big.Int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, domain.NewResolutionError(domain.InvalidIdentifier, xerrors.New("listing id is empty"))
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, domain.NewResolutionError(domain.InvalidIdentifier, xerrors.Errorf("%q is not a non-negative base-10 integer", raw))
		}
	}
	id, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, domain.NewResolutionError(domain.InvalidIdentifier, xerrors.Errorf("%q is not a non-negative base-10 integer", raw))
	}
	if _, overflow := uint256.FromBig(id); overflow {
		return nil, domain.NewResolutionError(domain.InvalidIdentifier, xerrors.Errorf("%q does not fit uint256", raw))
	}
	return id, nil
}
