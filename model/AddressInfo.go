// Package model contains the wire-facing value objects shared by the
// walletwatch services.
package model

// Utxo is an unspent output as reported by the chain data provider. The
// provider owns the record; walletwatch only reads the value field and passes
// the rest through untouched.
type Utxo struct {
	// TxID is the hex encoded hash of the funding transaction.
	TxID string `json:"txid"`

	// Vout is the index of this output in the funding transaction.
	Vout uint32 `json:"vout"`

	// Value is the amount of this output in satoshis.
	Value uint64 `json:"value"`

	// Height is the block height at which the output confirmed, 0 while
	// unconfirmed.
	Height uint32 `json:"height"`
}

// AddressInfo aggregates the UTXO set of a single address. BalanceSats and
// UtxoCount are derived from Utxos and must always be consistent with it;
// they are kept as separate fields for caller convenience. Instances are
// built fresh per request and never stored.
type AddressInfo struct {
	Address     string  `json:"address"`
	BalanceSats uint64  `json:"balance_sats"`
	UtxoCount   uint32  `json:"utxo_count"`
	Utxos       []*Utxo `json:"utxos"`
}
