package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mmiddleware "github.com/farbarter/goapi/middleware"
	"github.com/farbarter/goapi/service/chain/mocks"
	hc_repo "github.com/farbarter/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/farbarter/goapi/stores/healthcheck/usecase"
)

func newServer(t *testing.T, blockErr error) *echo.Echo {
	client := mocks.NewClient(t)
	client.On("BlockNumber", mock.Anything).Return(uint64(42), blockErr).Once()
	if blockErr != nil {
		client.On("ChainId").Return(int32(666666666)).Maybe()
	}
	e := echo.New()
	e.Use(mmiddleware.InitMiddleware().AddContext())
	New(e, hc_usecase.New(hc_repo.New(client)))
	return e
}

func TestHealthy(t *testing.T) {
	req := require.New(t)
	e := newServer(t, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	req.Equal(http.StatusOK, rec.Code)
	req.JSONEq(`{"healthy":"ok"}`, rec.Body.String())
}

func TestUnhealthy(t *testing.T) {
	req := require.New(t)
	e := newServer(t, errors.New("connection refused"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	req.Equal(http.StatusServiceUnavailable, rec.Code)
	req.JSONEq(`{"message":"connection refused"}`, rec.Body.String())
}
