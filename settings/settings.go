package settings

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/walletwatch/walletwatch/errors"
)

func NewSettings() *Settings {
	network := getString("network", "testnet")

	params, err := GetChainParams(network)
	if err != nil {
		panic(err)
	}

	return &Settings{
		ClientName:        getString("clientName", "walletwatch"),
		Network:           network,
		ChainCfgParams:    params,
		LogLevel:          getString("logLevel", "INFO"),
		SecurityLevelHTTP: getInt("securityLevelHTTP", 0),
		ServerCertFile:    getString("server_certFile", ""),
		ServerKeyFile:     getString("server_keyFile", ""),
		Balance: BalanceSettings{
			EchoDebug:         getBool("balance_echoDebug", false),
			HTTPAddress:       getString("balance_httpAddress", "http://localhost:8095"),
			HTTPListenAddress: getString("balance_httpListenAddress", ":8095"),
		},
		KeyDerivation: KeyDerivationSettings{
			HTTPAddress: getString("keyderivation_httpAddress", "http://localhost:8096"),
			KeyName:     getString("keyderivation_keyName", "test_key_1"),
			Curve:       getString("keyderivation_curve", "secp256k1"),
			Timeout:     getDuration("keyderivation_timeout", 10*time.Second),
		},
		ChainData: ChainDataSettings{
			HTTPAddress: getString("chaindata_httpAddress", "https://blockstream.info/testnet/api"),
			Timeout:     getDuration("chaindata_timeout", 30*time.Second),
			UserAgent:   getString("chaindata_userAgent", "walletwatch/1.0"),
		},
	}
}

// GetChainParams maps a network name to its chain parameters. The network is a
// deployment constant, never a per-call parameter, so an address can never be
// derived for the wrong chain within one process.
func GetChainParams(network string) (*chaincfg.Params, error) {
	switch network {
	case "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "simnet":
		return &chaincfg.SimNetParams, nil
	default:
		return nil, errors.NewConfigurationError("unknown network %s", network)
	}
}
