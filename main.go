package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/ordishs/gocore"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/walletwatch/walletwatch/services/balance"
	"github.com/walletwatch/walletwatch/services/chaindata"
	"github.com/walletwatch/walletwatch/services/keyderivation"
	"github.com/walletwatch/walletwatch/settings"
	"github.com/walletwatch/walletwatch/ulogger"
	"github.com/walletwatch/walletwatch/util/servicemanager"
)

// Name used by build script for the binaries. (Please keep on single line)
const progname = "walletwatch"

// Version & commit strings injected at build with -ldflags -X...
var version string
var commit string

func init() {
	gocore.SetInfo(progname, version, commit)
}

func main() {
	startBalance := flag.Bool("balance", true, "start balance service")
	help := flag.Bool("help", false, "Show help")

	flag.Parse()

	if help != nil && *help {
		fmt.Println("usage: walletwatch [options]")
		fmt.Println("where options are:")
		fmt.Println("")
		fmt.Println("    -balance=<1|0>")
		fmt.Println("          whether to start the balance service (default=1)")
		fmt.Println("")
		return
	}

	tSettings := settings.NewSettings()

	logger := ulogger.New(progname, ulogger.WithLevel(tSettings.LogLevel))

	logger.Infof("VERSION\n-------\n%s (%s)\n\n", version, commit)

	go func() {
		profilerAddr, ok := gocore.Config().Get("profilerAddr")
		if ok {
			logger.Infof("Starting profile on http://%s/debug/pprof", profilerAddr)
			logger.Fatalf("%v", http.ListenAndServe(profilerAddr, nil))
		}
	}()

	prometheusEndpoint, ok := gocore.Config().Get("prometheusEndpoint")
	if ok && prometheusEndpoint != "" {
		logger.Infof("Starting prometheus endpoint on %s", prometheusEndpoint)
		http.Handle(prometheusEndpoint, promhttp.Handler())
	}

	sm := servicemanager.NewServiceManager(context.Background(), logger)

	if *startBalance {
		keyDerivationClient, err := keyderivation.NewClient(logger.New("keyd"), tSettings)
		if err != nil {
			logger.Errorf("could not create key derivation client: %v", err)
			os.Exit(1)
		}

		chainDataClient, err := chaindata.NewClient(logger.New("chain"), tSettings)
		if err != nil {
			logger.Errorf("could not create chain data client: %v", err)
			os.Exit(1)
		}

		sm.AddService("balance", balance.NewServer(logger.New("balance"), tSettings, keyDerivationClient, chainDataClient))
	}

	if err := sm.StartAllAndWait(); err != nil {
		logger.Errorf("service manager exited with error: %v", err)
		os.Exit(1)
	}
}
