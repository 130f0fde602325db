package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farbarter/goapi/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// ErrorStatus picks the http status for err, fallback is used for errors
// this package knows nothing about.
func ErrorStatus(err error, fallback int) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidIdentifier),
		errors.Is(err, domain.ErrBadParamInput),
		errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrContractReadFailure),
		errors.Is(err, domain.ErrMetadataFetchFailure),
		errors.Is(err, domain.ErrMetadataParseFailure),
		errors.Is(err, domain.ErrNoPaymentLink):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrPurchaseInProgress),
		errors.Is(err, domain.ErrPurchaseNotAllowed):
		return http.StatusConflict
	}
	return fallback
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = ErrorStatus(err, status)
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
