package balance

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletwatch/walletwatch/errors"
	"github.com/walletwatch/walletwatch/model"
	"github.com/walletwatch/walletwatch/services/chaindata"
	"github.com/walletwatch/walletwatch/services/keyderivation"
	"github.com/walletwatch/walletwatch/settings"
	"github.com/walletwatch/walletwatch/ulogger"
)

func newTestBalance(t *testing.T, keyMock *keyderivation.Mock, chainMock *chaindata.Mock) *Balance {
	t.Helper()

	return NewBalance(ulogger.NewVerboseTestLogger(t), settings.NewSettings(), keyMock, chainMock)
}

func TestAggregate(t *testing.T) {
	utxos := []*model.Utxo{
		{TxID: "aa11", Vout: 0, Value: 5000},
		{TxID: "bb22", Vout: 1, Value: 12345},
		{TxID: "cc33", Vout: 0, Value: 300},
	}

	balanceSats, utxoCount, err := aggregate(utxos)
	require.NoError(t, err)
	assert.Equal(t, uint64(17645), balanceSats)
	assert.Equal(t, uint32(3), utxoCount)
}

func TestAggregateEmpty(t *testing.T) {
	balanceSats, utxoCount, err := aggregate(nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), balanceSats)
	assert.Equal(t, uint32(0), utxoCount)
}

func TestAggregateAmountOverflow(t *testing.T) {
	utxos := []*model.Utxo{
		{TxID: "aa11", Vout: 0, Value: math.MaxUint64},
		{TxID: "bb22", Vout: 0, Value: 1},
	}

	_, _, err := aggregate(utxos)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAmountOverflow))
}

func TestGetAddressDeterministic(t *testing.T) {
	keyMock := &keyderivation.Mock{PublicKey: mustDecodeHex(t, compressedKeyHex)}
	b := newTestBalance(t, keyMock, &chaindata.Mock{})

	first, err := b.GetAddress(context.Background(), "alice")
	require.NoError(t, err)

	second, err := b.GetAddress(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, keyMock.DeriveCalls)
	assert.Equal(t, [][]byte{[]byte("alice")}, keyMock.LastPath)
}

func TestGetAddressRequiresIdentity(t *testing.T) {
	b := newTestBalance(t, &keyderivation.Mock{}, &chaindata.Mock{})

	_, err := b.GetAddress(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidArgument))
}

func TestGetAddressDerivationFailure(t *testing.T) {
	keyMock := &keyderivation.Mock{Err: errors.NewKeyDerivationError("key not provisioned")}
	b := newTestBalance(t, keyMock, &chaindata.Mock{})

	_, err := b.GetAddress(context.Background(), "alice")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrKeyDerivation))
}

func TestGetAddressInvalidKeyFromBackend(t *testing.T) {
	keyMock := &keyderivation.Mock{PublicKey: []byte{0xde, 0xad, 0xbe, 0xef}}
	b := newTestBalance(t, keyMock, &chaindata.Mock{})

	_, err := b.GetAddress(context.Background(), "alice")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidKey))
}

func TestGetBalanceOwnAddress(t *testing.T) {
	keyMock := &keyderivation.Mock{PublicKey: mustDecodeHex(t, compressedKeyHex)}
	chainMock := &chaindata.Mock{
		Utxos: []*model.Utxo{
			{TxID: "aa11", Vout: 0, Value: 5000, Height: 100},
			{TxID: "bb22", Vout: 1, Value: 12345, Height: 101},
			{TxID: "cc33", Vout: 0, Value: 300},
		},
	}

	b := newTestBalance(t, keyMock, chainMock)

	info, err := b.GetBalance(context.Background(), "alice", "")
	require.NoError(t, err)

	expectedAddress, err := b.GetAddress(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, expectedAddress, info.Address)
	assert.Equal(t, expectedAddress, chainMock.LastAddress)
	assert.Equal(t, uint64(17645), info.BalanceSats)
	assert.Equal(t, uint32(3), info.UtxoCount)
	assert.Equal(t, chainMock.Utxos, info.Utxos)
}

func TestGetBalanceAddressOverride(t *testing.T) {
	keyMock := &keyderivation.Mock{PublicKey: mustDecodeHex(t, compressedKeyHex)}
	chainMock := &chaindata.Mock{}

	b := newTestBalance(t, keyMock, chainMock)

	info, err := b.GetBalance(context.Background(), "alice", "tb1qexample")
	require.NoError(t, err)

	assert.Equal(t, "tb1qexample", info.Address)
	assert.Equal(t, "tb1qexample", chainMock.LastAddress)
	assert.Equal(t, uint64(0), info.BalanceSats)
	assert.Equal(t, uint32(0), info.UtxoCount)

	// an explicit target address must never touch the key management service
	assert.Equal(t, 0, keyMock.DeriveCalls)
}

func TestGetBalanceTrimsTargetAddress(t *testing.T) {
	chainMock := &chaindata.Mock{}
	b := newTestBalance(t, &keyderivation.Mock{}, chainMock)

	info, err := b.GetBalance(context.Background(), "", "  tb1qexample  ")
	require.NoError(t, err)

	assert.Equal(t, "tb1qexample", info.Address)
	assert.Equal(t, "tb1qexample", chainMock.LastAddress)
}

func TestGetBalanceChainDataFailure(t *testing.T) {
	chainMock := &chaindata.Mock{UtxoErr: errors.NewChainDataError("provider unreachable")}
	b := newTestBalance(t, &keyderivation.Mock{}, chainMock)

	_, err := b.GetBalance(context.Background(), "", "tb1qexample")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrChainData))
}

func TestGetUtxoCountMatchesGetBalance(t *testing.T) {
	chainMock := &chaindata.Mock{
		Utxos: []*model.Utxo{
			{TxID: "aa11", Vout: 0, Value: 5000},
			{TxID: "bb22", Vout: 1, Value: 12345},
		},
	}

	b := newTestBalance(t, &keyderivation.Mock{}, chainMock)

	info, err := b.GetBalance(context.Background(), "", "tb1qexample")
	require.NoError(t, err)

	count, err := b.GetUtxoCount(context.Background(), "", "tb1qexample")
	require.NoError(t, err)

	assert.Equal(t, info.UtxoCount, count)
}

func TestGetUtxoCountSkipsDerivationOnOverride(t *testing.T) {
	keyMock := &keyderivation.Mock{}
	b := newTestBalance(t, keyMock, &chaindata.Mock{})

	_, err := b.GetUtxoCount(context.Background(), "alice", " tb1qexample ")
	require.NoError(t, err)
	assert.Equal(t, 0, keyMock.DeriveCalls)
}

func TestCheckChainConnectivityOnline(t *testing.T) {
	chainMock := &chaindata.Mock{FeePercentiles: []uint64{1200, 10000, 25500}}
	b := newTestBalance(t, &keyderivation.Mock{}, chainMock)

	status := b.CheckChainConnectivity(context.Background())

	assert.Contains(t, status, "ONLINE")
	assert.Equal(t, 1, chainMock.FeeCalls)
}

func TestCheckChainConnectivityOffline(t *testing.T) {
	chainMock := &chaindata.Mock{FeeErr: errors.NewChainDataError("connection refused")}
	b := newTestBalance(t, &keyderivation.Mock{}, chainMock)

	status := b.CheckChainConnectivity(context.Background())

	assert.Contains(t, status, "OFFLINE")
	assert.Contains(t, status, "connection refused")
}
