package keyderivation

import (
	"context"
	"net/http"
	"sync"
)

// Mock is an in-memory ClientI for tests. It records every call so tests can
// assert that key derivation was, or was not, invoked.
type Mock struct {
	mu sync.Mutex

	PublicKey []byte
	Err       error

	DeriveCalls int
	LastPath    [][]byte
}

func (m *Mock) DerivePublicKey(_ context.Context, derivationPath [][]byte) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.DeriveCalls++
	m.LastPath = derivationPath

	if m.Err != nil {
		return nil, m.Err
	}

	return m.PublicKey, nil
}

func (m *Mock) Health(_ context.Context, _ bool) (int, string, error) {
	if m.Err != nil {
		return http.StatusServiceUnavailable, "unavailable", m.Err
	}

	return http.StatusOK, "OK", nil
}
