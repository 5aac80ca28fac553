package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormatsMessage(t *testing.T) {
	err := NewChainDataError("utxo query for %s failed with status %d", "tb1qexample", 502)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "utxo query for tb1qexample failed with status 502")
	assert.Contains(t, err.Error(), "ERR_CHAIN_DATA")
}

func TestNewWrapsTrailingError(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewKeyDerivationError("could not fetch public key", cause)

	var tErr *Error
	require.True(t, As(err, &tErr))
	require.Equal(t, ERR_KEY_DERIVATION, tErr.Code())
	require.Equal(t, cause, tErr.WrappedErr())
	assert.Contains(t, err.Error(), "connection refused")
}

func TestIsMatchesOnCode(t *testing.T) {
	err := NewAmountOverflowError("utxo sum exceeds uint64")

	require.True(t, Is(err, ErrAmountOverflow))
	require.False(t, Is(err, ErrCountOverflow))
}

func TestIsMatchesThroughWrapping(t *testing.T) {
	inner := NewChainDataError("fee percentile query failed")
	outer := NewServiceError("connectivity probe failed", inner)

	require.True(t, Is(outer, ErrServiceError))
	require.True(t, Is(outer, ErrChainData))
	require.False(t, Is(outer, ErrInvalidKey))
}

func TestUnwrap(t *testing.T) {
	inner := NewInvalidKeyError("malformed point")
	outer := NewProcessingError("derive failed", inner)

	require.Equal(t, inner, Unwrap(outer))
}

func TestNilError(t *testing.T) {
	var err *Error

	assert.Equal(t, "<nil>", err.Error())
	assert.Equal(t, ERR_UNKNOWN, err.Code())
	assert.Nil(t, err.Unwrap())
}

func TestUnknownCodeFallsBack(t *testing.T) {
	err := New(ERR(9999), "bogus code")

	require.Equal(t, ERR_UNKNOWN, err.Code())
}
