package usecase

import (
	"github.com/farbarter/goapi/base/ctx"
	hcdomain "github.com/farbarter/goapi/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(context ctx.Ctx) error {
	blk, err := im.repo.PingChain(context)
	if err != nil {
		return err
	}
	context.WithField("blockNumber", blk).Debug("chain reachable")
	return nil
}
