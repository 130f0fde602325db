package repository

import (
	"encoding/base64"
	"net/url"
	"strings"

	"golang.org/x/xerrors"

	"github.com/farbarter/goapi/base/ctx"
	"github.com/farbarter/goapi/domain"
)

const dataUriSchema = "data:"

type dataUriReaderRepo struct {
}

// NewDataUriReaderRepo decodes data: uris in place, it never touches the network.
func NewDataUriReaderRepo() domain.WebResourceReaderRepository {
	return &dataUriReaderRepo{}
}

func (r *dataUriReaderRepo) Get(_ ctx.Ctx, uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, dataUriSchema) {
		return nil, xerrors.Errorf("invalid data uri: %w", domain.ErrUnsupportedSchema)
	}
	// data:[<mediatype>][;base64],<data>
	uriParts := strings.SplitN(strings.TrimPrefix(uri, dataUriSchema), ",", 2)
	if len(uriParts) < 2 || len(uriParts[1]) == 0 {
		return nil, xerrors.New("no data part provided")
	}

	if strings.HasSuffix(uriParts[0], ";base64") {
		data, err := base64.StdEncoding.DecodeString(uriParts[1])
		if err != nil {
			return nil, xerrors.Errorf("invalid base64 data: %w", err)
		}
		return data, nil
	}
	// plain text, percent-encoding is optional
	if unescaped, err := url.PathUnescape(uriParts[1]); err == nil {
		return []byte(unescaped), nil
	}
	return []byte(uriParts[1]), nil
}
