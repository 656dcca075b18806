package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/viper"

	"github.com/prismswap/swaprouter/domain"
)

// DefaultConfig defines the default config for the swap router service.
var DefaultConfig = domain.Config{
	ServerAddress: ":9092",

	LoggerFilename:     "router.log",
	LoggerIsProduction: true,
	LoggerLevel:        "info",

	ChainGRPCGatewayEndpoint: "localhost:9090",
	ChainID:                  "columbus-5",
	Bech32Prefix:             "terra",

	State: &domain.StateConfig{
		Backend: "goleveldb",
		Dir:     "data",
	},

	Router: &domain.RouterConfig{
		MaxSwapOperations:    domain.DefaultMaxSwapOperations,
		TokenSymbolCacheSize: 1024,
	},

	// Viper keys are case insensitive so caps must use lower case denoms.
	Tax: &domain.TaxConfig{
		Rate:         "0.005",
		Caps:         map[string]string{},
		ExemptDenoms: []string{"uluna"},
	},

	CORS: &domain.CORSConfig{
		AllowedHeaders: "Origin, Accept, Content-Type, X-Requested-With, X-Server-Time, Origin, Accept, Content-Type, X-Requested-With, X-Server-Time, Accept-Encoding, sentry-trace, baggage",
		AllowedMethods: "HEAD, GET, POST, HEAD, GET, POST, DELETE, OPTIONS, PATCH, PUT",
		AllowedOrigin:  "*",
	},

	OTEL: &domain.OTELConfig{},
}

// loadConfig reads the config file at configPath on top of DefaultConfig.
func loadConfig(configPath string) (domain.Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return domain.Config{}, err
	}

	config := DefaultConfig
	config.State = copyOf(DefaultConfig.State)
	config.Router = copyOf(DefaultConfig.Router)
	config.Tax = copyOf(DefaultConfig.Tax)
	config.Tax.Caps = maps.Clone(DefaultConfig.Tax.Caps)
	config.Tax.ExemptDenoms = slices.Clone(DefaultConfig.Tax.ExemptDenoms)
	config.CORS = copyOf(DefaultConfig.CORS)
	config.OTEL = copyOf(DefaultConfig.OTEL)

	if err := v.Unmarshal(&config); err != nil {
		return domain.Config{}, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if config.ContractAddress == "" {
		return domain.Config{}, fmt.Errorf("contract-address is required")
	}
	if config.Router.MaxSwapOperations <= 0 {
		config.Router.MaxSwapOperations = domain.DefaultMaxSwapOperations
	}

	return config, nil
}

func copyOf[T any](v *T) *T {
	c := *v
	return &c
}
