package repository

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/farbarter/goapi/base/ctx"
	"github.com/farbarter/goapi/domain"
)

const (
	arUriSchema           = "ar://"
	DefaultArweaveGateway = "https://arweave.net"
)

type arReaderRepo struct {
	client     http.Client
	gateway    string
	ctxTimeout time.Duration
	headers    map[string]string
}

// NewArReaderRepo resolves ar://<tx> uris through an arweave gateway.
func NewArReaderRepo(client http.Client, gateway string, timeout time.Duration, headers map[string]string) domain.WebResourceReaderRepository {
	gateway = strings.TrimRight(gateway, "/")
	if gateway == "" {
		gateway = DefaultArweaveGateway
	}
	return &arReaderRepo{client: client, gateway: gateway, ctxTimeout: timeout, headers: headers}
}

func (r *arReaderRepo) Get(c bCtx.Ctx, uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, arUriSchema) {
		return nil, xerrors.Errorf("invalid ar uri %q: %w", uri, domain.ErrUnsupportedSchema)
	}
	url := r.gateway + "/" + strings.TrimPrefix(uri, arUriSchema)
	return httpGet(c, r.client, r.ctxTimeout, url, r.headers)
}
