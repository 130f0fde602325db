package repository

import (
	"time"

	"github.com/farbarter/goapi/base/ctx"
	"github.com/farbarter/goapi/base/log"
	hcdomain "github.com/farbarter/goapi/domain/healthcheck"
	"github.com/farbarter/goapi/service/chain"
)

const pingTimeout = 2 * time.Second

type impl struct {
	chain chain.Client
}

// New creates new HealthCheckRepo backed by the chain rpc
func New(chain chain.Client) hcdomain.HealthCheckRepo {
	return &impl{
		chain: chain,
	}
}

func (im *impl) PingChain(context ctx.Ctx) (uint64, error) {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	blk, err := im.chain.BlockNumber(ctx)
	if err != nil {
		context.WithFields(log.Fields{
			"chainId": im.chain.ChainId(),
			"err":     err,
		}).Error("ping chain error")
		return 0, err
	}
	return blk, nil
}
