package chain

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	bCtx "github.com/farbarter/goapi/base/ctx"
	bEthereum "github.com/farbarter/goapi/base/ethereum"
	"github.com/farbarter/goapi/base/log"
)

var (
	ErrUnsupportedChain = errors.New("unsupported chain")
	// ErrAbiMismatch means the node answered but not in the shape the abi describes
	ErrAbiMismatch = errors.New("abi mismatch")
)

type ClientCfg struct {
	ChainId int32
	RpcUrl  string
	// MaxConcurrentCalls bounds in-flight rpc requests, 0 means unbounded
	MaxConcurrentCalls int
}

type Client interface {
	Call(bCtx.Ctx, int32, common.Address, *big.Int, abi.ABI, string, ...interface{}) ([]interface{}, error)
	BlockNumber(bCtx.Ctx) (uint64, error)
	ChainId() int32
	Close()
}

type clientImpl struct {
	chainId int32
	backend bEthereum.Backend
}

// NewClient dials the configured rpc endpoint. Dialing an http endpoint does
// not touch the network, failures show up on the first call.
func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	client, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"chainId": cfg.ChainId,
			"url":     cfg.RpcUrl,
		}).Error("failed to dial rpc")
		return nil, err
	}
	var backend bEthereum.Backend = client
	if cfg.MaxConcurrentCalls > 0 {
		backend = bEthereum.NewThrottledBackend(client, cfg.MaxConcurrentCalls)
	}
	return NewClientWithBackend(cfg.ChainId, backend), nil
}

func NewClientWithBackend(chainId int32, backend bEthereum.Backend) Client {
	return &clientImpl{
		chainId: chainId,
		backend: backend,
	}
}

func (c *clientImpl) ChainId() int32 {
	return c.chainId
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId int32, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	if chainId != c.chainId {
		return nil, ErrUnsupportedChain
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := c.backend.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("abi.Unpack failed")
		return nil, xerrors.Errorf("%w: %v", ErrAbiMismatch, err)
	}
	return unpacked, nil
}

func (c *clientImpl) BlockNumber(ctx bCtx.Ctx) (uint64, error) {
	blk, err := c.backend.BlockNumber(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.BlockNumber failed")
		return 0, err
	}
	return blk, nil
}

func (c *clientImpl) Close() {
	c.backend.Close()
}
