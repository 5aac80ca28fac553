package balance

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/walletwatch/walletwatch/errors"
	"github.com/walletwatch/walletwatch/model"
	"github.com/walletwatch/walletwatch/settings"
	"github.com/walletwatch/walletwatch/ulogger"
	"github.com/walletwatch/walletwatch/util/health"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client talks to a running balance service over its HTTP surface.
type Client struct {
	logger     ulogger.Logger
	settings   *settings.Settings
	baseURL    string
	httpClient *http.Client
}

func NewClient(logger ulogger.Logger, tSettings *settings.Settings) (*Client, error) {
	if tSettings.Balance.HTTPAddress == "" {
		return nil, errors.NewConfigurationError("balance_httpAddress is required")
	}

	return &Client{
		logger:     logger,
		settings:   tSettings,
		baseURL:    strings.TrimRight(tSettings.Balance.HTTPAddress, "/"),
		httpClient: &http.Client{},
	}, nil
}

func (c *Client) GetAddress(ctx context.Context, identity string) (string, error) {
	var resp addressResponse

	if err := c.doRequest(ctx, "/api/v1/address", identity, "", &resp); err != nil {
		return "", err
	}

	return resp.Address, nil
}

func (c *Client) GetBalance(ctx context.Context, identity string, targetAddress string) (*model.AddressInfo, error) {
	var resp model.AddressInfo

	if err := c.doRequest(ctx, "/api/v1/balance", identity, targetAddress, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) GetUtxoCount(ctx context.Context, identity string, targetAddress string) (uint32, error) {
	var resp utxoCountResponse

	if err := c.doRequest(ctx, "/api/v1/utxocount", identity, targetAddress, &resp); err != nil {
		return 0, err
	}

	return resp.UtxoCount, nil
}

func (c *Client) GetChainStatus(ctx context.Context) (string, error) {
	var resp chainStatusResponse

	if err := c.doRequest(ctx, "/api/v1/chainstatus", "", "", &resp); err != nil {
		return "", err
	}

	return resp.Status, nil
}

func (c *Client) Health(ctx context.Context, checkLiveness bool) (int, string, error) {
	return health.CheckHTTPServer(c.baseURL, "/health")(ctx, checkLiveness)
}

func (c *Client) doRequest(ctx context.Context, path string, identity string, targetAddress string, out interface{}) error {
	requestURL := c.baseURL + path
	if targetAddress != "" {
		requestURL = fmt.Sprintf("%s?address=%s", requestURL, url.QueryEscape(targetAddress))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return errors.NewServiceError("could not create request for %s", path, err)
	}

	if identity != "" {
		req.Header.Set(callerIdentityHeader, identity)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewServiceError("balance service unreachable", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewServiceError("could not read response from %s", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return errors.NewServiceError("request to %s returned status %d: %s", path, resp.StatusCode, string(b))
	}

	if err = json.Unmarshal(b, out); err != nil {
		return errors.NewServiceError("malformed response from %s", path, err)
	}

	return nil
}
