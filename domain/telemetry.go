package domain

import "github.com/prometheus/client_golang/prometheus"

var (
	// prismswap_router_swap_operations_total
	//
	// counter that measures the number of executed swap operations
	//
	// Has the following labels:
	// * kind - native_swap or pool_swap
	RouterSwapOperationsMetricName = "prismswap_router_swap_operations_total"

	// prismswap_router_swap_operation_errors_total
	//
	// counter that measures the number of swap operations that failed to build their messages
	//
	// Has the following labels:
	// * kind - native_swap or pool_swap
	RouterSwapOperationErrorsMetricName = "prismswap_router_swap_operation_errors_total"

	// prismswap_router_route_length
	//
	// histogram of the number of hops in expanded routes
	RouterRouteLengthMetricName = "prismswap_router_route_length"

	// prismswap_chain_token_symbol_cache_hits_total
	//
	// counter that measures the number of token symbol lookups served from the cache
	ChainTokenSymbolCacheHitsMetricName = "prismswap_chain_token_symbol_cache_hits_total"

	// prismswap_chain_token_symbol_cache_misses_total
	//
	// counter that measures the number of token symbol lookups sent to the token contract
	ChainTokenSymbolCacheMissesMetricName = "prismswap_chain_token_symbol_cache_misses_total"

	RouterSwapOperationsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: RouterSwapOperationsMetricName,
			Help: "Total number of executed swap operations by kind.",
		},
		[]string{"kind"},
	)

	RouterSwapOperationErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: RouterSwapOperationErrorsMetricName,
			Help: "Total number of failed swap operations by kind.",
		},
		[]string{"kind"},
	)

	RouterRouteLengthHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    RouterRouteLengthMetricName,
			Help:    "Number of hops in expanded routes.",
			Buckets: []float64{1, 2, 3, 4, 5, 8, 13},
		},
	)

	ChainTokenSymbolCacheHitsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: ChainTokenSymbolCacheHitsMetricName,
			Help: "Total number of token symbol cache hits",
		},
	)

	ChainTokenSymbolCacheMissesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: ChainTokenSymbolCacheMissesMetricName,
			Help: "Total number of token symbol cache misses",
		},
	)
)

func init() {
	prometheus.MustRegister(RouterSwapOperationsCounter)
	prometheus.MustRegister(RouterSwapOperationErrorsCounter)
	prometheus.MustRegister(RouterRouteLengthHistogram)
	prometheus.MustRegister(ChainTokenSymbolCacheHitsCounter)
	prometheus.MustRegister(ChainTokenSymbolCacheMissesCounter)
}
