package repository

import (
	"net/http"
	"time"

	bCtx "github.com/farbarter/goapi/base/ctx"
	"github.com/farbarter/goapi/domain"
)

type httpReaderRepo struct {
	client     http.Client
	ctxTimeout time.Duration
	headers    map[string]string
}

// NewHttpReaderRepo fetches http(s) urls as they are.
func NewHttpReaderRepo(client http.Client, timeout time.Duration, headers map[string]string) domain.WebResourceReaderRepository {
	return &httpReaderRepo{client: client, ctxTimeout: timeout, headers: headers}
}

func (r *httpReaderRepo) Get(c bCtx.Ctx, url string) ([]byte, error) {
	return httpGet(c, r.client, r.ctxTimeout, url, r.headers)
}
