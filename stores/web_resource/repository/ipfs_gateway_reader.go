package repository

import (
	"net/http"
	"strings"
	"time"

	bCtx "github.com/farbarter/goapi/base/ctx"
	"github.com/farbarter/goapi/domain"
)

const DefaultIpfsGateway = "https://anky.mypinata.cloud/ipfs"

type ipfsGatewayReaderRepo struct {
	client     http.Client
	gateway    string
	ctxTimeout time.Duration
}

// NewIpfsGatewayReaderRepo reads content ids, optionally followed by a path,
// from <gateway>/<cid>.
func NewIpfsGatewayReaderRepo(c http.Client, gateway string, timeout time.Duration) domain.WebResourceReaderRepository {
	gateway = strings.TrimRight(gateway, "/")
	if gateway == "" {
		gateway = DefaultIpfsGateway
	}
	return &ipfsGatewayReaderRepo{client: c, gateway: gateway, ctxTimeout: timeout}
}

func (r *ipfsGatewayReaderRepo) Get(c bCtx.Ctx, cid string) ([]byte, error) {
	url := r.gateway + "/" + strings.TrimLeft(cid, "/")
	return httpGet(c, r.client, r.ctxTimeout, url, nil)
}
