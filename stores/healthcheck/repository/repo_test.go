package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/farbarter/goapi/base/ctx"
	"github.com/farbarter/goapi/service/chain/mocks"
)

func TestPingChain(t *testing.T) {
	req := require.New(t)
	client := mocks.NewClient(t)
	client.On("BlockNumber", mock.Anything).Return(uint64(1234), nil).Once()

	blk, err := New(client).PingChain(ctx.Background())
	req.NoError(err)
	req.Equal(uint64(1234), blk)
}

func TestPingChainFailed(t *testing.T) {
	req := require.New(t)
	client := mocks.NewClient(t)
	client.On("BlockNumber", mock.Anything).Return(uint64(0), errors.New("connection refused")).Once()
	client.On("ChainId").Return(int32(666666666)).Once()

	_, err := New(client).PingChain(ctx.Background())
	req.EqualError(err, "connection refused")
}
