// Package balance answers three questions: what is a caller's Bitcoin
// address, what does an address hold, and is the chain data backend
// reachable. Key material and chain indexing live behind the keyderivation
// and chaindata collaborator clients; nothing here holds state between
// requests.
package balance

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/walletwatch/walletwatch/errors"
	"github.com/walletwatch/walletwatch/model"
	"github.com/walletwatch/walletwatch/services/chaindata"
	"github.com/walletwatch/walletwatch/services/keyderivation"
	"github.com/walletwatch/walletwatch/settings"
	"github.com/walletwatch/walletwatch/ulogger"
)

type Balance struct {
	logger              ulogger.Logger
	settings            *settings.Settings
	keyDerivationClient keyderivation.ClientI
	chainDataClient     chaindata.ClientI
}

func NewBalance(logger ulogger.Logger, tSettings *settings.Settings, keyDerivationClient keyderivation.ClientI, chainDataClient chaindata.ClientI) *Balance {
	return &Balance{
		logger:              logger,
		settings:            tSettings,
		keyDerivationClient: keyDerivationClient,
		chainDataClient:     chainDataClient,
	}
}

// GetAddress resolves the caller's own P2WPKH address. The derivation path is
// keyed by the identity bytes, so the same identity always resolves to the
// same address under a given key name.
func (b *Balance) GetAddress(ctx context.Context, identity string) (string, error) {
	if identity == "" {
		return "", errors.NewInvalidArgumentError("caller identity is required")
	}

	publicKey, err := b.keyDerivationClient.DerivePublicKey(ctx, [][]byte{[]byte(identity)})
	if err != nil {
		return "", errors.NewKeyDerivationError("could not derive public key for caller", err)
	}

	return DeriveAddress(publicKey, b.settings.ChainCfgParams)
}

// GetBalance returns the full UTXO picture for an address. A non-empty
// targetAddress is used verbatim after trimming, without touching the key
// management service; otherwise the caller's own address is resolved first.
func (b *Balance) GetBalance(ctx context.Context, identity string, targetAddress string) (*model.AddressInfo, error) {
	address, err := b.resolveAddress(ctx, identity, targetAddress)
	if err != nil {
		return nil, err
	}

	utxos, err := b.chainDataClient.GetUtxos(ctx, address)
	if err != nil {
		return nil, err
	}

	balanceSats, utxoCount, err := aggregate(utxos)
	if err != nil {
		return nil, err
	}

	return &model.AddressInfo{
		Address:     address,
		BalanceSats: balanceSats,
		UtxoCount:   utxoCount,
		Utxos:       utxos,
	}, nil
}

// GetUtxoCount is the lightweight variant of GetBalance for callers that only
// need to know whether an address has received funds. The sum is skipped.
func (b *Balance) GetUtxoCount(ctx context.Context, identity string, targetAddress string) (uint32, error) {
	address, err := b.resolveAddress(ctx, identity, targetAddress)
	if err != nil {
		return 0, err
	}

	utxos, err := b.chainDataClient.GetUtxos(ctx, address)
	if err != nil {
		return 0, err
	}

	if uint64(len(utxos)) > math.MaxUint32 {
		return 0, errors.NewCountOverflowError("provider returned %d utxos", len(utxos))
	}

	return uint32(len(utxos)), nil
}

// CheckChainConnectivity probes the chain data backend with a fee percentile
// query and reports the outcome as a status string. The fee data itself is
// discarded. This is the one operation that absorbs a collaborator failure
// instead of propagating it.
func (b *Balance) CheckChainConnectivity(ctx context.Context) string {
	if _, err := b.chainDataClient.GetCurrentFeePercentiles(ctx); err != nil {
		return fmt.Sprintf("chain data connection: OFFLINE. error: %v", err)
	}

	return "chain data connection: ONLINE"
}

func (b *Balance) resolveAddress(ctx context.Context, identity string, targetAddress string) (string, error) {
	if address := strings.TrimSpace(targetAddress); address != "" {
		return address, nil
	}

	return b.GetAddress(ctx, identity)
}

// aggregate folds a UTXO set into its total satoshi value and entry count.
// Wrapping on either field would silently corrupt the response, so both are
// checked; a trip here means the upstream data is broken.
func aggregate(utxos []*model.Utxo) (uint64, uint32, error) {
	if uint64(len(utxos)) > math.MaxUint32 {
		return 0, 0, errors.NewCountOverflowError("provider returned %d utxos", len(utxos))
	}

	var balanceSats uint64

	for _, utxo := range utxos {
		if utxo.Value > math.MaxUint64-balanceSats {
			return 0, 0, errors.NewAmountOverflowError("utxo sum exceeds uint64 at output %s:%d", utxo.TxID, utxo.Vout)
		}

		balanceSats += utxo.Value
	}

	return balanceSats, uint32(len(utxos)), nil
}
