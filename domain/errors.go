package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrUnsupportedSchema   = errors.New("Unsupported schema")
	ErrInvalidJsonFormat   = errors.New("invalid JSON format")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidAddress      = errors.New("Invalid address")
	ErrStatusCodeNotOk     = errors.New("http.status != 200")

	// resolution error kinds, match them with errors.Is
	ErrInvalidIdentifier     = errors.New("invalid listing id")
	ErrContractReadFailure   = errors.New("failed to read listing from contract")
	ErrMetadataFetchFailure  = errors.New("failed to fetch listing metadata")
	ErrMetadataParseFailure  = errors.New("failed to parse listing metadata")
	ErrPurchaseActionFailure = errors.New("purchase failed")

	ErrPurchaseInProgress = errors.New("purchase already in progress")
	ErrPurchaseNotAllowed = errors.New("listing can not be purchased")
	ErrNoPaymentLink      = errors.New("Error generating payment link. Please try again.")
	ErrInvalidAmount      = errors.New("invalid amount")
)
