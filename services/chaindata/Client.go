// Package chaindata queries an esplora style REST endpoint for UTXO sets and
// fee estimates.
package chaindata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/walletwatch/walletwatch/errors"
	"github.com/walletwatch/walletwatch/model"
	"github.com/walletwatch/walletwatch/settings"
	"github.com/walletwatch/walletwatch/ulogger"
	"github.com/walletwatch/walletwatch/util/health"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// utxoResp mirrors the esplora /address/{addr}/utxo response entry.
type utxoResp struct {
	TxID   string `json:"txid"`
	Vout   uint32 `json:"vout"`
	Value  uint64 `json:"value"`
	Status struct {
		Confirmed   bool   `json:"confirmed"`
		BlockHeight uint32 `json:"block_height"`
	} `json:"status"`
}

type Client struct {
	logger     ulogger.Logger
	settings   *settings.Settings
	baseURL    string
	httpClient *http.Client
}

func NewClient(logger ulogger.Logger, tSettings *settings.Settings) (*Client, error) {
	if tSettings.ChainData.HTTPAddress == "" {
		return nil, errors.NewConfigurationError("chaindata_httpAddress is required")
	}

	return &Client{
		logger:   logger,
		settings: tSettings,
		baseURL:  strings.TrimRight(tSettings.ChainData.HTTPAddress, "/"),
		httpClient: &http.Client{
			Timeout: tSettings.ChainData.Timeout,
		},
	}, nil
}

func (c *Client) GetUtxos(ctx context.Context, address string) ([]*model.Utxo, error) {
	b, err := c.doRequest(ctx, fmt.Sprintf("%s/address/%s/utxo", c.baseURL, address))
	if err != nil {
		return nil, err
	}

	var entries []utxoResp
	if err = json.Unmarshal(b, &entries); err != nil {
		return nil, errors.NewChainDataError("malformed utxo response for %s", address, err)
	}

	utxos := make([]*model.Utxo, len(entries))
	for i, entry := range entries {
		utxos[i] = &model.Utxo{
			TxID:   entry.TxID,
			Vout:   entry.Vout,
			Value:  entry.Value,
			Height: entry.Status.BlockHeight,
		}
	}

	return utxos, nil
}

func (c *Client) GetCurrentFeePercentiles(ctx context.Context) ([]uint64, error) {
	b, err := c.doRequest(ctx, fmt.Sprintf("%s/fee-estimates", c.baseURL))
	if err != nil {
		return nil, err
	}

	// esplora reports sat/vB per confirmation target
	var estimates map[string]float64
	if err = json.Unmarshal(b, &estimates); err != nil {
		return nil, errors.NewChainDataError("malformed fee estimate response", err)
	}

	feeRates := make([]uint64, 0, len(estimates))
	for _, satPerVByte := range estimates {
		feeRates = append(feeRates, uint64(satPerVByte*1000))
	}

	sort.Slice(feeRates, func(i, j int) bool { return feeRates[i] < feeRates[j] })

	return feeRates, nil
}

func (c *Client) Health(ctx context.Context, checkLiveness bool) (int, string, error) {
	return health.CheckHTTPServer(c.baseURL, "/fee-estimates")(ctx, checkLiveness)
}

func (c *Client) doRequest(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewChainDataError("could not create request for %s", url, err)
	}

	if c.settings.ChainData.UserAgent != "" {
		req.Header.Set("User-Agent", c.settings.ChainData.UserAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewChainDataError("chain data provider unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewChainDataError("request to %s returned status %d", url, resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewChainDataError("could not read response from %s", url, err)
	}

	return b, nil
}
