package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	bCtx "github.com/farbarter/goapi/base/ctx"
	"github.com/farbarter/goapi/domain"
	"github.com/farbarter/goapi/domain/mocks"
)

type WebResourceTestSuite struct {
	suite.Suite
	ctx     bCtx.Ctx
	http    *mocks.WebResourceReaderRepository
	ipfs    *mocks.WebResourceReaderRepository
	dataUri *mocks.WebResourceReaderRepository
	ar      *mocks.WebResourceReaderRepository
	u       domain.WebResourceUseCase
}

func (s *WebResourceTestSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.http = &mocks.WebResourceReaderRepository{}
	s.ipfs = &mocks.WebResourceReaderRepository{}
	s.dataUri = &mocks.WebResourceReaderRepository{}
	s.ar = &mocks.WebResourceReaderRepository{}
	s.u = NewWebResourceUseCase(&WebResourceUseCaseCfg{
		HttpReader:    s.http,
		IpfsReader:    s.ipfs,
		DataUriReader: s.dataUri,
		ArUriReader:   s.ar,
	})
}

func (s *WebResourceTestSuite) TearDownTest() {
	s.http.AssertExpectations(s.T())
	s.ipfs.AssertExpectations(s.T())
	s.dataUri.AssertExpectations(s.T())
	s.ar.AssertExpectations(s.T())
}

func (s *WebResourceTestSuite) TestRouting() {
	tests := []struct {
		desc    string
		pointer string
		reader  func() *mocks.WebResourceReaderRepository
		target  string
	}{
		{desc: "bare cid", pointer: "QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq", reader: func() *mocks.WebResourceReaderRepository { return s.ipfs }, target: "QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq"},
		{desc: "bare cid with path", pointer: "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi/meta.json", reader: func() *mocks.WebResourceReaderRepository { return s.ipfs }, target: "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi/meta.json"},
		{desc: "ipfs uri", pointer: "ipfs://QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq/0", reader: func() *mocks.WebResourceReaderRepository { return s.ipfs }, target: "QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq/0"},
		{desc: "ipfs uri with ipfs path", pointer: "ipfs://ipfs/QmHash", reader: func() *mocks.WebResourceReaderRepository { return s.ipfs }, target: "QmHash"},
		{desc: "https", pointer: "https://example.com/m.json", reader: func() *mocks.WebResourceReaderRepository { return s.http }, target: "https://example.com/m.json"},
		{desc: "http", pointer: "http://example.com/m.json", reader: func() *mocks.WebResourceReaderRepository { return s.http }, target: "http://example.com/m.json"},
		{desc: "ar", pointer: "ar://tx/1.json", reader: func() *mocks.WebResourceReaderRepository { return s.ar }, target: "ar://tx/1.json"},
		{desc: "data", pointer: "data:application/json,{}", reader: func() *mocks.WebResourceReaderRepository { return s.dataUri }, target: "data:application/json,{}"},
	}
	for _, t := range tests {
		t.reader().On("Get", mock.Anything, t.target).Return([]byte(`{}`), nil).Once()
		data, err := s.u.Get(s.ctx, t.pointer)
		s.NoError(err, t.desc)
		s.Equal([]byte(`{}`), data, t.desc)
	}
}

func (s *WebResourceTestSuite) TestUnsupportedScheme() {
	_, err := s.u.Get(s.ctx, "ftp://example.com/m.json")
	s.ErrorIs(err, domain.ErrUnsupportedSchema)
}

func (s *WebResourceTestSuite) TestEmptyPointer() {
	_, err := s.u.Get(s.ctx, "  ")
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *WebResourceTestSuite) TestNoFallback() {
	s.http.On("Get", mock.Anything, "https://anky.mypinata.cloud/ipfs/QmHash").
		Return(nil, xerrors.Errorf("%w", domain.ErrStatusCodeNotOk)).Once()
	_, err := s.u.Get(s.ctx, "https://anky.mypinata.cloud/ipfs/QmHash")
	s.ErrorIs(err, domain.ErrStatusCodeNotOk)
}

func (s *WebResourceTestSuite) TestGetJson() {
	s.ipfs.On("Get", mock.Anything, "QmGood").Return([]byte(`{"name":"mug"}`), nil).Once()
	s.ipfs.On("Get", mock.Anything, "QmBad").Return([]byte(`<html>`), nil).Once()

	data, err := s.u.GetJson(s.ctx, "QmGood")
	s.NoError(err)
	s.JSONEq(`{"name":"mug"}`, string(data))

	_, err = s.u.GetJson(s.ctx, "QmBad")
	s.ErrorIs(err, domain.ErrInvalidJsonFormat)
}

func TestWebResourceTestSuite(t *testing.T) {
	suite.Run(t, new(WebResourceTestSuite))
}
