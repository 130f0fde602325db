package contract

import (
	"errors"
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
	"golang.org/x/xerrors"

	baseabi "github.com/farbarter/goapi/base/abi"
	"github.com/farbarter/goapi/base/codec"
	bCtx "github.com/farbarter/goapi/base/ctx"
	"github.com/farbarter/goapi/domain"
	"github.com/farbarter/goapi/service/chain"
)

const listingTupleArity = 9

type FarbarterContract interface {
	// GetListingDetails performs exactly one eth_call. Every failure is a
	// ContractReadFailure.
	GetListingDetails(ctx bCtx.Ctx, listingId *big.Int) (*domain.RawListing, error)
	ListingCount(ctx bCtx.Ctx) (uint64, error)
}

type Farbarter struct {
	chainService chain.Client
	abi          ethabi.ABI
	chainId      int32
	address      common.Address
}

func NewFarbarter(chainService chain.Client, chainId int32, address domain.Address) FarbarterContract {
	return &Farbarter{
		chainService: chainService,
		abi:          baseabi.FarbarterABI,
		chainId:      chainId,
		address:      codec.ToCommonAddress(address),
	}
}

func (f *Farbarter) GetListingDetails(ctx bCtx.Ctx, listingId *big.Int) (*domain.RawListing, error) {
	method := "getListingDetails"
	unpacked, err := f.chainService.Call(ctx, f.chainId, f.address, nil, f.abi, method, listingId)
	if err != nil {
		return nil, contractReadError(err)
	}
	raw, err := decodeListingTuple(unpacked)
	if err != nil {
		return nil, domain.NewPermanentResolutionError(domain.ContractReadFailure, err)
	}
	return raw, nil
}

func (f *Farbarter) ListingCount(ctx bCtx.Ctx) (uint64, error) {
	method := "listingCount"
	unpacked, err := f.chainService.Call(ctx, f.chainId, f.address, nil, f.abi, method)
	if err != nil {
		return 0, contractReadError(err)
	}
	if len(unpacked) != 1 {
		return 0, domain.NewPermanentResolutionError(domain.ContractReadFailure, xerrors.Errorf("listingCount returned %d values", len(unpacked)))
	}
	v, ok := unpacked[0].(*big.Int)
	if !ok {
		return 0, domain.NewPermanentResolutionError(domain.ContractReadFailure, xerrors.Errorf("listingCount returned %T", unpacked[0]))
	}
	count, err := codec.DecodeCount(v)
	if err != nil {
		return 0, domain.NewPermanentResolutionError(domain.ContractReadFailure, err)
	}
	return count, nil
}

// contractReadError tags a failed call. Reverts and abi mismatches will fail
// the same way next time, transport errors might not.
func contractReadError(err error) error {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) || errors.Is(err, chain.ErrAbiMismatch) || errors.Is(err, chain.ErrUnsupportedChain) {
		return domain.NewPermanentResolutionError(domain.ContractReadFailure, err)
	}
	return domain.NewResolutionError(domain.ContractReadFailure, err)
}

// decodeListingTuple maps the positional getListingDetails outputs onto a
// RawListing, checking arity and the type of every position.
func decodeListingTuple(out []interface{}) (*domain.RawListing, error) {
	if len(out) != listingTupleArity {
		return nil, xerrors.Errorf("getListingDetails returned %d values, want %d", len(out), listingTupleArity)
	}
	seller, ok := out[0].(common.Address)
	if !ok {
		return nil, positionError(0, "seller", "address", out[0])
	}
	fid, err := countAt(out, 1, "fid")
	if err != nil {
		return nil, err
	}
	price, ok := out[2].(*big.Int)
	if !ok || price == nil || price.Sign() < 0 {
		return nil, positionError(2, "price", "uint256", out[2])
	}
	remainingSupply, err := countAt(out, 3, "remainingSupply")
	if err != nil {
		return nil, err
	}
	metadataPointer, ok := out[4].(string)
	if !ok {
		return nil, positionError(4, "metadata", "string", out[4])
	}
	isActive, ok := out[5].(bool)
	if !ok {
		return nil, positionError(5, "isActive", "bool", out[5])
	}
	totalSales, err := countAt(out, 6, "totalSales")
	if err != nil {
		return nil, err
	}
	preferredToken, ok := out[7].(string)
	if !ok {
		return nil, positionError(7, "preferredToken", "string", out[7])
	}
	preferredChain, err := countAt(out, 8, "preferredChain")
	if err != nil {
		return nil, err
	}
	return &domain.RawListing{
		Seller:          domain.Address(seller.Hex()),
		Fid:             fid,
		PriceMinorUnits: price,
		RemainingSupply: remainingSupply,
		MetadataPointer: metadataPointer,
		IsActive:        isActive,
		TotalSales:      totalSales,
		PreferredToken:  preferredToken,
		PreferredChain:  preferredChain,
	}, nil
}

func countAt(out []interface{}, pos int, name string) (uint64, error) {
	v, ok := out[pos].(*big.Int)
	if !ok {
		return 0, positionError(pos, name, "uint256", out[pos])
	}
	count, err := codec.DecodeCount(v)
	if err != nil {
		return 0, xerrors.Errorf("position %d (%s): %w", pos, name, err)
	}
	return count, nil
}

func positionError(pos int, name, want string, got interface{}) error {
	return xerrors.Errorf("position %d (%s): want %s, got %T", pos, name, want, got)
}
