package domain

import (
	"errors"
)

type ResolutionErrorKind string

const (
	InvalidIdentifier     ResolutionErrorKind = "invalid_identifier"
	ContractReadFailure   ResolutionErrorKind = "contract_read_failure"
	MetadataFetchFailure  ResolutionErrorKind = "metadata_fetch_failure"
	MetadataParseFailure  ResolutionErrorKind = "metadata_parse_failure"
	PurchaseActionFailure ResolutionErrorKind = "purchase_action_failure"
)

var kindSentinels = map[ResolutionErrorKind]error{
	InvalidIdentifier:     ErrInvalidIdentifier,
	ContractReadFailure:   ErrContractReadFailure,
	MetadataFetchFailure:  ErrMetadataFetchFailure,
	MetadataParseFailure:  ErrMetadataParseFailure,
	PurchaseActionFailure: ErrPurchaseActionFailure,
}

// ResolutionError is the single tagged failure a listing resolution ends with.
// errors.Is matches it against the kind's sentinel (ErrContractReadFailure, ...)
// and against anything in its cause chain.
type ResolutionError struct {
	Kind  ResolutionErrorKind
	Cause error

	permanent bool
}

func NewResolutionError(kind ResolutionErrorKind, cause error) *ResolutionError {
	return &ResolutionError{Kind: kind, Cause: cause}
}

// NewPermanentResolutionError tags a failure that will not go away on a
// second attempt, e.g. a reverted call or an ABI mismatch.
func NewPermanentResolutionError(kind ResolutionErrorKind, cause error) *ResolutionError {
	return &ResolutionError{Kind: kind, Cause: cause, permanent: true}
}

func (e *ResolutionError) Error() string {
	msg := string(e.Kind)
	if s, ok := kindSentinels[e.Kind]; ok {
		msg = s.Error()
	}
	if e.Cause == nil {
		return msg
	}
	return msg + ": " + e.Cause.Error()
}

func (e *ResolutionError) Unwrap() error {
	return e.Cause
}

func (e *ResolutionError) Is(target error) bool {
	s, ok := kindSentinels[e.Kind]
	return ok && s == target
}

// CauseText is the message shown to users, empty when there is no cause.
func (e *ResolutionError) CauseText() string {
	if e.Cause == nil {
		return ""
	}
	return e.Cause.Error()
}

// Retryable reports transport level failures. Nothing in this service
// retries, callers decide.
func (e *ResolutionError) Retryable() bool {
	if e.permanent {
		return false
	}
	return e.Kind == ContractReadFailure || e.Kind == MetadataFetchFailure
}

// AsResolutionError unwraps err into a *ResolutionError
func AsResolutionError(err error) (*ResolutionError, bool) {
	var re *ResolutionError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
