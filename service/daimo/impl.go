package daimo

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	bCtx "github.com/farbarter/goapi/base/ctx"
	"github.com/farbarter/goapi/base/log"
	"github.com/farbarter/goapi/domain"
)

const createSalePath = "/daimo/create-sale"

func NewClient(cfg *ClientCfg) Client {
	baseUrl := strings.TrimRight(cfg.BaseUrl, "/")
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	return &client{
		client:  cfg.HttpClient,
		timeout: cfg.Timeout,
		baseUrl: baseUrl,
	}
}

type client struct {
	client  http.Client
	timeout time.Duration
	baseUrl string
}

func (c *client) CreateSale(ctx bCtx.Ctx, req *CreateSaleRequest, cookies []*http.Cookie) (*CreateSaleResponse, error) {
	url := c.baseUrl + createSalePath
	data, err := c.post(ctx, url, req, cookies)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.post failed")
		return nil, err
	}
	resp := &CreateSaleResponse{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return resp, nil
}

func (c *client) post(ctx bCtx.Ctx, url string, payload interface{}, cookies []*http.Cookie) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	body, err := json.Marshal(payload)
	if err != nil {
		ctx.WithField("err", err).Error("json.Marshal failed")
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, domain.ErrStatusCodeNotOk
	}
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return data, nil
}
