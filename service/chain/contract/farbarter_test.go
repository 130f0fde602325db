package contract

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/farbarter/goapi/base/ctx"
	"github.com/farbarter/goapi/domain"
	"github.com/farbarter/goapi/service/chain"
	chainMocks "github.com/farbarter/goapi/service/chain/mocks"
)

const (
	testChainId  = int32(666666666)
	testContract = domain.Address("0x8d59e8ef33fb819979ad09fb444a26792970fb6f")
)

type revertError struct{}

func (revertError) Error() string          { return "execution reverted" }
func (revertError) ErrorData() interface{} { return "0x" }

type FarbarterTestSuite struct {
	suite.Suite
	ctx       bCtx.Ctx
	chain     *chainMocks.Client
	farbarter FarbarterContract
	seller    common.Address
}

func (s *FarbarterTestSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.chain = &chainMocks.Client{}
	s.farbarter = NewFarbarter(s.chain, testChainId, testContract)
	s.seller = common.HexToAddress("0x939ae6A4C8dfDBB1f7085189574F0A938013952A")
}

func (s *FarbarterTestSuite) TearDownTest() {
	s.chain.AssertExpectations(s.T())
}

func (s *FarbarterTestSuite) onGetListingDetails(out []interface{}, err error) {
	s.chain.On("Call", mock.Anything, testChainId, common.HexToAddress(string(testContract)), (*big.Int)(nil), mock.Anything, "getListingDetails", big.NewInt(5)).
		Return(out, err).Once()
}

func (s *FarbarterTestSuite) tuple() []interface{} {
	return []interface{}{
		s.seller, big.NewInt(16098), big.NewInt(8000000), big.NewInt(3), "QmHash", true, big.NewInt(7), "USDC", big.NewInt(8453),
	}
}

func (s *FarbarterTestSuite) TestGetListingDetails() {
	s.onGetListingDetails(s.tuple(), nil)

	raw, err := s.farbarter.GetListingDetails(s.ctx, big.NewInt(5))
	s.Require().NoError(err)
	s.Equal(&domain.RawListing{
		Seller:          domain.Address(s.seller.Hex()),
		Fid:             16098,
		PriceMinorUnits: big.NewInt(8000000),
		RemainingSupply: 3,
		MetadataPointer: "QmHash",
		IsActive:        true,
		TotalSales:      7,
		PreferredToken:  "USDC",
		PreferredChain:  8453,
	}, raw)
}

func (s *FarbarterTestSuite) TestGetListingDetailsTransportError() {
	s.onGetListingDetails(nil, errors.New("dial tcp: connection refused"))

	raw, err := s.farbarter.GetListingDetails(s.ctx, big.NewInt(5))
	s.Nil(raw)
	s.ErrorIs(err, domain.ErrContractReadFailure)
	re, ok := domain.AsResolutionError(err)
	s.Require().True(ok)
	s.True(re.Retryable())
}

func (s *FarbarterTestSuite) TestGetListingDetailsRevert() {
	s.onGetListingDetails(nil, revertError{})

	_, err := s.farbarter.GetListingDetails(s.ctx, big.NewInt(5))
	s.ErrorIs(err, domain.ErrContractReadFailure)
	re, ok := domain.AsResolutionError(err)
	s.Require().True(ok)
	s.False(re.Retryable())
}

func (s *FarbarterTestSuite) TestGetListingDetailsAbiMismatch() {
	s.onGetListingDetails(nil, chain.ErrAbiMismatch)

	_, err := s.farbarter.GetListingDetails(s.ctx, big.NewInt(5))
	s.ErrorIs(err, domain.ErrContractReadFailure)
	s.ErrorIs(err, chain.ErrAbiMismatch)
}

func (s *FarbarterTestSuite) TestGetListingDetailsMalformedTuple() {
	tooShort := s.tuple()[:8]
	wrongType := s.tuple()
	wrongType[5] = "true"
	overflow := s.tuple()
	overflow[3] = new(big.Int).Lsh(big.NewInt(1), 70)

	tests := []struct {
		desc string
		out  []interface{}
		msg  string
	}{
		{desc: "arity", out: tooShort, msg: "returned 8 values"},
		{desc: "type", out: wrongType, msg: "position 5 (isActive)"},
		{desc: "overflow", out: overflow, msg: "position 3 (remainingSupply)"},
	}
	for _, t := range tests {
		s.onGetListingDetails(t.out, nil)
		raw, err := s.farbarter.GetListingDetails(s.ctx, big.NewInt(5))
		s.Nil(raw, t.desc)
		s.ErrorIs(err, domain.ErrContractReadFailure, t.desc)
		s.Contains(err.Error(), t.msg, t.desc)
	}
}

func (s *FarbarterTestSuite) TestListingCount() {
	s.chain.On("Call", mock.Anything, testChainId, common.HexToAddress(string(testContract)), (*big.Int)(nil), mock.Anything, "listingCount").
		Return([]interface{}{big.NewInt(12)}, nil).Once()

	count, err := s.farbarter.ListingCount(s.ctx)
	s.NoError(err)
	s.Equal(uint64(12), count)
}

func TestFarbarterTestSuite(t *testing.T) {
	suite.Run(t, new(FarbarterTestSuite))
}
