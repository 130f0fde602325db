package usecase

import (
	"encoding/json"
	"net/url"
	"strings"

	"golang.org/x/xerrors"

	bCtx "github.com/farbarter/goapi/base/ctx"
	"github.com/farbarter/goapi/base/log"
	"github.com/farbarter/goapi/domain"
)

type WebResourceUseCaseCfg struct {
	HttpReader    domain.WebResourceReaderRepository
	IpfsReader    domain.WebResourceReaderRepository
	DataUriReader domain.WebResourceReaderRepository
	ArUriReader   domain.WebResourceReaderRepository
}

type webResourceUseCase struct {
	httpReader    domain.WebResourceReaderRepository
	ipfsReader    domain.WebResourceReaderRepository
	dataUriReader domain.WebResourceReaderRepository
	arUriReader   domain.WebResourceReaderRepository
}

func NewWebResourceUseCase(cfg *WebResourceUseCaseCfg) domain.WebResourceUseCase {
	return &webResourceUseCase{
		httpReader:    cfg.HttpReader,
		ipfsReader:    cfg.IpfsReader,
		dataUriReader: cfg.DataUriReader,
		arUriReader:   cfg.ArUriReader,
	}
}

func (u *webResourceUseCase) Get(c bCtx.Ctx, pointer string) ([]byte, error) {
	return u.get(c, pointer)
}

func (u *webResourceUseCase) GetJson(c bCtx.Ctx, pointer string) ([]byte, error) {
	data, err := u.get(c, pointer)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		c.WithFields(log.Fields{
			"pointer": pointer,
		}).Error("invalid json")
		return nil, domain.ErrInvalidJsonFormat
	}

	return data, nil
}

// get makes at most one read, there is no fallback to another source.
func (u *webResourceUseCase) get(c bCtx.Ctx, pointer string) ([]byte, error) {
	pointer = strings.TrimSpace(pointer)
	if pointer == "" {
		return nil, xerrors.Errorf("empty pointer: %w", domain.ErrBadParamInput)
	}

	reader, target, err := u.route(pointer)
	if err != nil {
		c.WithFields(log.Fields{
			"pointer": pointer,
			"err":     err,
		}).Error("failed to route pointer")
		return nil, err
	}

	data, err := reader.Get(c, target)
	if err != nil {
		c.WithFields(log.Fields{
			"pointer": pointer,
			"target":  target,
			"err":     err,
		}).Error("failed to fetch")
		return nil, err
	}
	return data, nil
}

// route picks the reader for a pointer and what to hand it. Pointers without
// a scheme are content ids.
func (u *webResourceUseCase) route(pointer string) (domain.WebResourceReaderRepository, string, error) {
	if strings.HasPrefix(pointer, "data:") {
		return u.dataUriReader, pointer, nil
	}

	pUrl, err := url.Parse(pointer)
	if err != nil {
		return nil, "", xerrors.Errorf("failed to parse %q: %w", pointer, err)
	}

	switch pUrl.Scheme {
	case "https", "http":
		return u.httpReader, pointer, nil
	case "ipfs":
		cid := strings.TrimPrefix(pointer, "ipfs://")
		cid = strings.TrimPrefix(cid, "ipfs/") // early foundation's metadata bug
		return u.ipfsReader, cid, nil
	case "ar":
		return u.arUriReader, pointer, nil
	case "":
		cid := strings.TrimPrefix(pointer, "/")
		cid = strings.TrimPrefix(cid, "ipfs/")
		return u.ipfsReader, cid, nil
	}
	return nil, "", xerrors.Errorf("scheme %q: %w", pUrl.Scheme, domain.ErrUnsupportedSchema)
}
