package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func TestResolutionError(t *testing.T) {
	tests := []struct {
		name      string
		err       *ResolutionError
		sentinel  error
		retryable bool
		msg       string
	}{
		{
			name:      "invalid identifier",
			err:       NewResolutionError(InvalidIdentifier, xerrors.New(`"abc" is not a base-10 integer`)),
			sentinel:  ErrInvalidIdentifier,
			retryable: false,
			msg:       `invalid listing id: "abc" is not a base-10 integer`,
		},
		{
			name:      "contract transport failure",
			err:       NewResolutionError(ContractReadFailure, xerrors.New("connection refused")),
			sentinel:  ErrContractReadFailure,
			retryable: true,
			msg:       "failed to read listing from contract: connection refused",
		},
		{
			name:      "contract revert",
			err:       NewPermanentResolutionError(ContractReadFailure, xerrors.New("execution reverted")),
			sentinel:  ErrContractReadFailure,
			retryable: false,
			msg:       "failed to read listing from contract: execution reverted",
		},
		{
			name:      "metadata fetch failure",
			err:       NewResolutionError(MetadataFetchFailure, ErrStatusCodeNotOk),
			sentinel:  ErrMetadataFetchFailure,
			retryable: true,
			msg:       "failed to fetch listing metadata: http.status != 200",
		},
		{
			name:      "metadata parse failure",
			err:       NewResolutionError(MetadataParseFailure, nil),
			sentinel:  ErrMetadataParseFailure,
			retryable: false,
			msg:       "failed to parse listing metadata",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			var err error = xerrors.Errorf("resolve: %w", tt.err)

			req.True(errors.Is(err, tt.sentinel))
			for _, other := range kindSentinels {
				if other != tt.sentinel {
					req.False(errors.Is(err, other))
				}
			}
			re, ok := AsResolutionError(err)
			req.True(ok)
			req.Equal(tt.err.Kind, re.Kind)
			req.Equal(tt.retryable, re.Retryable())
			req.Equal(tt.msg, re.Error())
		})
	}
}

func TestResolutionErrorKeepsCauseChain(t *testing.T) {
	req := require.New(t)
	err := NewResolutionError(MetadataFetchFailure, xerrors.Errorf("gateway: %w", ErrStatusCodeNotOk))
	req.True(errors.Is(err, ErrStatusCodeNotOk))
	req.Equal("gateway: http.status != 200", err.CauseText())
	req.Equal("", NewResolutionError(MetadataParseFailure, nil).CauseText())

	_, ok := AsResolutionError(errors.New("plain"))
	req.False(ok)
}
