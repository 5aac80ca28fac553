package chaindata

import (
	"context"
	"net/http"
	"sync"

	"github.com/walletwatch/walletwatch/model"
)

// Mock is an in-memory ClientI for tests.
type Mock struct {
	mu sync.Mutex

	Utxos          []*model.Utxo
	FeePercentiles []uint64
	UtxoErr        error
	FeeErr         error

	GetUtxosCalls int
	FeeCalls      int
	LastAddress   string
}

func (m *Mock) GetUtxos(_ context.Context, address string) ([]*model.Utxo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.GetUtxosCalls++
	m.LastAddress = address

	if m.UtxoErr != nil {
		return nil, m.UtxoErr
	}

	return m.Utxos, nil
}

func (m *Mock) GetCurrentFeePercentiles(_ context.Context) ([]uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.FeeCalls++

	if m.FeeErr != nil {
		return nil, m.FeeErr
	}

	return m.FeePercentiles, nil
}

func (m *Mock) Health(_ context.Context, _ bool) (int, string, error) {
	if m.FeeErr != nil {
		return http.StatusServiceUnavailable, "unavailable", m.FeeErr
	}

	return http.StatusOK, "OK", nil
}
