package keyderivation

import (
	"context"
)

// ClientI is the contract with the external key management service. One
// derivation path maps deterministically to one public key for a given key
// name, so re-derivation is idempotent.
type ClientI interface {
	DerivePublicKey(ctx context.Context, derivationPath [][]byte) ([]byte, error)
	Health(ctx context.Context, checkLiveness bool) (int, string, error)
}
