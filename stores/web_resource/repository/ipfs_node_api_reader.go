package repository

import (
	"io/ioutil"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"

	"github.com/farbarter/goapi/base/ctx"
	"github.com/farbarter/goapi/base/log"
	"github.com/farbarter/goapi/domain"
)

type ipfsNodeApiReaderRepo struct {
	shell      *ipfsapi.Shell
	ctxTimeout time.Duration
}

// NewIpfsNodeApiReaderRepo reads content ids through the `cat` command of an
// ipfs node's rpc api instead of a public gateway.
func NewIpfsNodeApiReaderRepo(s *ipfsapi.Shell, timeout time.Duration) domain.WebResourceReaderRepository {
	return &ipfsNodeApiReaderRepo{shell: s, ctxTimeout: timeout}
}

func (r *ipfsNodeApiReaderRepo) Get(c ctx.Ctx, cid string) ([]byte, error) {
	ctx, cancel := ctx.WithTimeout(c, r.ctxTimeout)
	defer cancel()
	resp, err := r.shell.Request("cat", cid).Send(ctx)
	if err != nil {
		c.WithFields(log.Fields{
			"cid": cid,
			"err": err,
		}).Error("shell.Request failed")
		return nil, err
	}
	if resp.Error != nil {
		c.WithFields(log.Fields{
			"cid":        cid,
			"resp.Error": resp.Error,
		}).Error("shell.Request failed")
		return nil, resp.Error
	}
	defer resp.Close()
	return ioutil.ReadAll(resp.Output)
}
