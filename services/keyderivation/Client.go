// Package keyderivation talks to the external key management service that
// holds the master key. The service derives a per-identity secp256k1 public
// key from a derivation path; the private key never leaves the backend.
package keyderivation

import (
	"bytes"
	"context"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/walletwatch/walletwatch/errors"
	"github.com/walletwatch/walletwatch/settings"
	"github.com/walletwatch/walletwatch/ulogger"
	"github.com/walletwatch/walletwatch/util/health"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type keyID struct {
	Curve string `json:"curve"`
	Name  string `json:"name"`
}

type publicKeyRequest struct {
	DerivationPath [][]byte `json:"derivation_path"`
	KeyID          keyID    `json:"key_id"`
}

type publicKeyResponse struct {
	PublicKey []byte `json:"public_key"`
}

type Client struct {
	logger     ulogger.Logger
	settings   *settings.Settings
	httpClient *http.Client
}

func NewClient(logger ulogger.Logger, tSettings *settings.Settings) (*Client, error) {
	if tSettings.KeyDerivation.HTTPAddress == "" {
		return nil, errors.NewConfigurationError("keyderivation_httpAddress is required")
	}

	return &Client{
		logger:   logger,
		settings: tSettings,
		httpClient: &http.Client{
			Timeout: tSettings.KeyDerivation.Timeout,
		},
	}, nil
}

// DerivePublicKey requests the public key for the given derivation path under
// the configured key name. Every failure mode surfaces as a key derivation
// error; retries, if wanted, belong to the caller.
func (c *Client) DerivePublicKey(ctx context.Context, derivationPath [][]byte) ([]byte, error) {
	body, err := json.Marshal(publicKeyRequest{
		DerivationPath: derivationPath,
		KeyID: keyID{
			Curve: c.settings.KeyDerivation.Curve,
			Name:  c.settings.KeyDerivation.KeyName,
		},
	})
	if err != nil {
		return nil, errors.NewKeyDerivationError("could not encode public key request", err)
	}

	url := c.settings.KeyDerivation.HTTPAddress + "/v1/public_key"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.NewKeyDerivationError("could not create public key request", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewKeyDerivationError("key management service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewKeyDerivationError("public key request for key %q returned status %d", c.settings.KeyDerivation.KeyName, resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewKeyDerivationError("could not read public key response", err)
	}

	var pkResp publicKeyResponse
	if err = json.Unmarshal(b, &pkResp); err != nil {
		return nil, errors.NewKeyDerivationError("malformed public key response", err)
	}

	if len(pkResp.PublicKey) == 0 {
		return nil, errors.NewKeyDerivationError("key management service returned an empty public key")
	}

	return pkResp.PublicKey, nil
}

func (c *Client) Health(ctx context.Context, checkLiveness bool) (int, string, error) {
	return health.CheckHTTPServer(c.settings.KeyDerivation.HTTPAddress, "/health")(ctx, checkLiveness)
}
