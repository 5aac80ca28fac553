package balance

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	prometheusGetAddress      prometheus.Counter
	prometheusGetBalance      prometheus.Counter
	prometheusGetUtxoCount    prometheus.Counter
	prometheusChainStatus     prometheus.Counter
	prometheusRequestFailures prometheus.Counter
)

var prometheusMetricsInitialized = false

func initPrometheusMetrics() {
	if prometheusMetricsInitialized {
		return
	}

	prometheusGetAddress = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "balance",
			Name:      "get_address",
			Help:      "Number of calls to the GetAddress endpoint",
		},
	)

	prometheusGetBalance = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "balance",
			Name:      "get_balance",
			Help:      "Number of calls to the GetBalance endpoint",
		},
	)

	prometheusGetUtxoCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "balance",
			Name:      "get_utxo_count",
			Help:      "Number of calls to the GetUtxoCount endpoint",
		},
	)

	prometheusChainStatus = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "balance",
			Name:      "chain_status",
			Help:      "Number of calls to the ChainStatus endpoint",
		},
	)

	prometheusRequestFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "balance",
			Name:      "request_failures",
			Help:      "Number of requests that ended in an error response",
		},
	)

	prometheusMetricsInitialized = true
}
