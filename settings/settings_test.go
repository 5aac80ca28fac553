package settings

import (
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletwatch/walletwatch/errors"
)

func TestNewSettingsDefaults(t *testing.T) {
	s := NewSettings()

	assert.Equal(t, "walletwatch", s.ClientName)
	assert.Equal(t, "testnet", s.Network)
	assert.Equal(t, &chaincfg.TestNet3Params, s.ChainCfgParams)

	assert.Equal(t, ":8095", s.Balance.HTTPListenAddress)
	assert.Equal(t, "test_key_1", s.KeyDerivation.KeyName)
	assert.Equal(t, "secp256k1", s.KeyDerivation.Curve)
	assert.Equal(t, 10*time.Second, s.KeyDerivation.Timeout)
	assert.Equal(t, "https://blockstream.info/testnet/api", s.ChainData.HTTPAddress)
	assert.Equal(t, 30*time.Second, s.ChainData.Timeout)
}

func TestGetChainParams(t *testing.T) {
	params, err := GetChainParams("mainnet")
	require.NoError(t, err)
	assert.Equal(t, &chaincfg.MainNetParams, params)

	params, err = GetChainParams("regtest")
	require.NoError(t, err)
	assert.Equal(t, &chaincfg.RegressionNetParams, params)

	_, err = GetChainParams("florinet")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfiguration))
}
