package balance

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/walletwatch/walletwatch/errors"
	"github.com/walletwatch/walletwatch/services/chaindata"
	"github.com/walletwatch/walletwatch/services/keyderivation"
	"github.com/walletwatch/walletwatch/settings"
	"github.com/walletwatch/walletwatch/ulogger"
	"github.com/walletwatch/walletwatch/util/health"
	"github.com/walletwatch/walletwatch/util/servicemanager"
)

// callerIdentityHeader carries the externally authenticated caller identity.
// The fronting authenticator sets it; walletwatch never interprets it beyond
// using the raw bytes as a derivation path.
const callerIdentityHeader = "X-Caller-Id"

type Server struct {
	logger              ulogger.Logger
	settings            *settings.Settings
	e                   *echo.Echo
	balance             *Balance
	keyDerivationClient keyderivation.ClientI
	chainDataClient     chaindata.ClientI
}

func NewServer(logger ulogger.Logger, tSettings *settings.Settings, keyDerivationClient keyderivation.ClientI, chainDataClient chaindata.ClientI) *Server {
	initPrometheusMetrics()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	if tSettings.Balance.EchoDebug {
		e.Debug = true
	}

	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET},
	}))

	return &Server{
		logger:              logger,
		settings:            tSettings,
		e:                   e,
		keyDerivationClient: keyDerivationClient,
		chainDataClient:     chainDataClient,
	}
}

func (s *Server) Health(ctx context.Context, checkLiveness bool) (int, string, error) {
	if checkLiveness {
		// Liveness must not fan out to dependencies; a stuck process is the
		// only thing a restart fixes.
		return http.StatusOK, "OK", nil
	}

	checks := make([]health.Check, 0, 2)

	if s.keyDerivationClient != nil {
		checks = append(checks, health.Check{Name: "KeyDerivationClient", Check: s.keyDerivationClient.Health})
	}

	if s.chainDataClient != nil {
		checks = append(checks, health.Check{Name: "ChainDataClient", Check: s.chainDataClient.Health})
	}

	return health.CheckAll(ctx, checkLiveness, checks)
}

func (s *Server) Init(ctx context.Context) error {
	s.balance = NewBalance(s.logger, s.settings, s.keyDerivationClient, s.chainDataClient)

	s.e.GET("/api/v1/address", s.addressHandler)
	s.e.GET("/api/v1/balance", s.balanceHandler)
	s.e.GET("/api/v1/utxocount", s.utxoCountHandler)
	s.e.GET("/api/v1/chainstatus", s.chainStatusHandler)

	s.e.GET("/alive", s.aliveHandler)
	s.e.GET("/health", s.healthHandler)

	return nil
}

func (s *Server) Start(ctx context.Context) error {
	addr := s.settings.Balance.HTTPListenAddress
	if addr == "" {
		return errors.NewConfigurationError("balance_httpListenAddress is required")
	}

	mode := "HTTPS"
	if s.settings.SecurityLevelHTTP == 0 {
		mode = "HTTP"
	}

	s.logger.Infof("Balance %s service listening on %s", mode, addr)

	go func() {
		<-ctx.Done()
		s.logger.Infof("[Balance] %s service shutting down", mode)

		if err := s.e.Shutdown(ctx); err != nil {
			s.logger.Errorf("[Balance] %s service shutdown error: %s", mode, err)
		}
	}()

	var err error

	if mode == "HTTP" {
		servicemanager.AddListenerInfo(fmt.Sprintf("Balance HTTP listening on %s", addr))
		err = s.e.Start(addr)
	} else {
		certFile := s.settings.ServerCertFile
		if certFile == "" {
			return errors.NewConfigurationError("server_certFile is required for HTTPS")
		}

		keyFile := s.settings.ServerKeyFile
		if keyFile == "" {
			return errors.NewConfigurationError("server_keyFile is required for HTTPS")
		}

		servicemanager.AddListenerInfo(fmt.Sprintf("Balance HTTPS listening on %s", addr))
		err = s.e.StartTLS(addr, certFile, keyFile)
	}

	if err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

type addressResponse struct {
	Address string `json:"address"`
}

func (s *Server) addressHandler(c echo.Context) error {
	prometheusGetAddress.Inc()

	identity := c.Request().Header.Get(callerIdentityHeader)

	address, err := s.balance.GetAddress(c.Request().Context(), identity)
	if err != nil {
		return s.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, addressResponse{Address: address})
}

func (s *Server) balanceHandler(c echo.Context) error {
	prometheusGetBalance.Inc()

	identity := c.Request().Header.Get(callerIdentityHeader)
	targetAddress := c.QueryParam("address")

	info, err := s.balance.GetBalance(c.Request().Context(), identity, targetAddress)
	if err != nil {
		return s.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, info)
}

type utxoCountResponse struct {
	UtxoCount uint32 `json:"utxo_count"`
}

func (s *Server) utxoCountHandler(c echo.Context) error {
	prometheusGetUtxoCount.Inc()

	identity := c.Request().Header.Get(callerIdentityHeader)
	targetAddress := c.QueryParam("address")

	count, err := s.balance.GetUtxoCount(c.Request().Context(), identity, targetAddress)
	if err != nil {
		return s.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, utxoCountResponse{UtxoCount: count})
}

type chainStatusResponse struct {
	Status string `json:"status"`
}

func (s *Server) chainStatusHandler(c echo.Context) error {
	prometheusChainStatus.Inc()

	status := s.balance.CheckChainConnectivity(c.Request().Context())

	return c.JSON(http.StatusOK, chainStatusResponse{Status: status})
}

func (s *Server) aliveHandler(c echo.Context) error {
	status, msg, _ := s.Health(c.Request().Context(), true)

	return c.String(status, msg)
}

func (s *Server) healthHandler(c echo.Context) error {
	status, msg, _ := s.Health(c.Request().Context(), false)

	return c.String(status, msg)
}

func (s *Server) errorResponse(c echo.Context, err error) error {
	prometheusRequestFailures.Inc()

	if errors.Is(err, errors.ErrInvalidArgument) {
		return c.String(http.StatusBadRequest, err.Error())
	}

	s.logger.Errorf("[Balance] request failed: %v", err)

	return c.String(http.StatusInternalServerError, err.Error())
}
