package settings

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg"
)

type BalanceSettings struct {
	EchoDebug         bool
	HTTPAddress       string
	HTTPListenAddress string
}

type KeyDerivationSettings struct {
	HTTPAddress string
	KeyName     string
	Curve       string
	Timeout     time.Duration
}

type ChainDataSettings struct {
	HTTPAddress string
	Timeout     time.Duration
	UserAgent   string
}

type Settings struct {
	ClientName        string
	Network           string
	ChainCfgParams    *chaincfg.Params
	LogLevel          string
	SecurityLevelHTTP int
	ServerCertFile    string
	ServerKeyFile     string

	Balance       BalanceSettings
	KeyDerivation KeyDerivationSettings
	ChainData     ChainDataSettings
}
