package chaindata

import (
	"context"

	"github.com/walletwatch/walletwatch/model"
)

// ClientI is the contract with the external Bitcoin data provider. The
// provider is treated as a stateless, idempotent query service.
type ClientI interface {
	// GetUtxos returns the current unspent outputs for an address, in the
	// order the provider reports them. No pagination is applied; a provider
	// response is consumed whole.
	GetUtxos(ctx context.Context, address string) ([]*model.Utxo, error)

	// GetCurrentFeePercentiles returns recent fee rates in millisatoshi per
	// vbyte, ascending. walletwatch only uses this call as a liveness probe.
	GetCurrentFeePercentiles(ctx context.Context) ([]uint64, error)

	Health(ctx context.Context, checkLiveness bool) (int, string, error)
}
