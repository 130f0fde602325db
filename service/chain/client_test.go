package chain

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	baseabi "github.com/farbarter/goapi/base/abi"
	bCtx "github.com/farbarter/goapi/base/ctx"
)

type fakeBackend struct {
	lastMsg ethereum.CallMsg
	res     []byte
	err     error
	closed  bool
}

func (b *fakeBackend) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error) {
	b.lastMsg = msg
	return b.res, b.err
}

func (b *fakeBackend) BlockNumber(ctx context.Context) (uint64, error) {
	return 1234, b.err
}

func (b *fakeBackend) Close() {
	b.closed = true
}

type ClientTestSuite struct {
	suite.Suite
	ctx     bCtx.Ctx
	backend *fakeBackend
	client  Client
	addr    common.Address
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.backend = &fakeBackend{}
	s.client = NewClientWithBackend(666666666, s.backend)
	s.addr = common.HexToAddress("0x8d59e8ef33fb819979ad09fb444a26792970fb6f")
}

func (s *ClientTestSuite) TestCall() {
	seller := common.HexToAddress("0x939ae6A4C8dfDBB1f7085189574F0A938013952A")
	res, err := baseabi.FarbarterABI.Methods["getListingDetails"].Outputs.Pack(
		seller, big.NewInt(16098), big.NewInt(8000000), big.NewInt(3), "QmHash", true, big.NewInt(7), "USDC", big.NewInt(8453),
	)
	s.Require().NoError(err)
	s.backend.res = res

	out, err := s.client.Call(s.ctx, 666666666, s.addr, nil, baseabi.FarbarterABI, "getListingDetails", big.NewInt(5))
	s.Require().NoError(err)
	s.Len(out, 9)
	s.Equal(seller, out[0])
	s.Equal("QmHash", out[4])
	s.Equal(true, out[5])

	s.Equal(s.addr, *s.backend.lastMsg.To)
	s.Equal(baseabi.FarbarterABI.Methods["getListingDetails"].ID, s.backend.lastMsg.Data[:4])
	s.Equal(0, big.NewInt(5).Cmp(new(big.Int).SetBytes(s.backend.lastMsg.Data[4:])))
}

func (s *ClientTestSuite) TestCallUnsupportedChain() {
	_, err := s.client.Call(s.ctx, 1, s.addr, nil, baseabi.FarbarterABI, "getListingDetails", big.NewInt(5))
	s.ErrorIs(err, ErrUnsupportedChain)
	s.Nil(s.backend.lastMsg.To)
}

func (s *ClientTestSuite) TestCallBackendError() {
	s.backend.err = errors.New("connection refused")
	_, err := s.client.Call(s.ctx, 666666666, s.addr, nil, baseabi.FarbarterABI, "getListingDetails", big.NewInt(5))
	s.EqualError(err, "connection refused")
}

func (s *ClientTestSuite) TestCallUnpackError() {
	s.backend.res = []byte{0x01}
	_, err := s.client.Call(s.ctx, 666666666, s.addr, nil, baseabi.FarbarterABI, "getListingDetails", big.NewInt(5))
	s.ErrorIs(err, ErrAbiMismatch)
}

func (s *ClientTestSuite) TestBlockNumberAndClose() {
	blk, err := s.client.BlockNumber(s.ctx)
	s.NoError(err)
	s.Equal(uint64(1234), blk)
	s.Equal(int32(666666666), s.client.ChainId())

	s.client.Close()
	s.True(s.backend.closed)
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
