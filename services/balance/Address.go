package balance

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/walletwatch/walletwatch/errors"
)

// DeriveAddress turns a secp256k1 public key into a native segwit (P2WPKH)
// address for the given network. Pure function: the same key and network
// always produce the same address string.
func DeriveAddress(publicKey []byte, params *chaincfg.Params) (string, error) {
	pubKey, err := btcec.ParsePubKey(publicKey)
	if err != nil {
		return "", errors.NewInvalidKeyError("could not parse public key", err)
	}

	// BIP-143 commits P2WPKH to the compressed encoding, regardless of how
	// the key arrived.
	pubKeyHash := btcutil.Hash160(pubKey.SerializeCompressed())

	addr, err := btcutil.NewAddressWitnessPubKeyHash(pubKeyHash, params)
	if err != nil {
		return "", errors.NewAddressConstructionError("could not build witness program", err)
	}

	return addr.EncodeAddress(), nil
}
