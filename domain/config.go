package domain

// Config defines the config for the swap router service.
type Config struct {
	// Defines the web server configuration.
	ServerAddress string `mapstructure:"server-address"`

	// Defines the logger configuration.
	LoggerFilename     string `mapstructure:"logger-filename"`
	LoggerIsProduction bool   `mapstructure:"logger-is-production"`
	LoggerLevel        string `mapstructure:"logger-level"`

	ChainGRPCGatewayEndpoint string `mapstructure:"grpc-gateway-endpoint"`
	ChainID                  string `mapstructure:"chain-id"`

	// Bech32Prefix is the account address prefix of the chain, e.g. "terra".
	Bech32Prefix string `mapstructure:"bech32-prefix"`

	// ContractAddress is the address of the router contract itself.
	// Only this address may execute a single swap operation.
	ContractAddress string `mapstructure:"contract-address"`

	// State encapsulates the contract state store config.
	State *StateConfig `mapstructure:"state"`

	// Router encapsulates the router config.
	Router *RouterConfig `mapstructure:"router"`

	// Tax encapsulates the native transfer tax parameters.
	Tax *TaxConfig `mapstructure:"tax"`

	CORS *CORSConfig `mapstructure:"cors"`

	OTEL *OTELConfig `mapstructure:"otel"`
}

// StateConfig defines where the contract state is persisted.
type StateConfig struct {
	// Backend is a cometbft-db backend name, e.g. "goleveldb" or "memdb".
	Backend string `mapstructure:"backend"`
	Dir     string `mapstructure:"dir"`
}

// RouterConfig encapsulates the router config.
type RouterConfig struct {
	// RegistryAddress is the pair registry (factory) contract used to seed the contract config.
	RegistryAddress string `mapstructure:"registry-address"`
	// MaxSwapOperations bounds the number of hops in a route.
	MaxSwapOperations int `mapstructure:"max-swap-operations"`
	// TokenSymbolCacheSize bounds the number of cached CW20 symbols.
	TokenSymbolCacheSize int `mapstructure:"token-symbol-cache-size"`
}

// DefaultMaxSwapOperations is used when MaxSwapOperations is not configured.
const DefaultMaxSwapOperations = 50

// TaxConfig holds the native transfer tax parameters.
type TaxConfig struct {
	// Rate is a decimal string, e.g. "0.001".
	Rate string `mapstructure:"rate"`
	// Caps maps a denom to the maximum tax charged per transfer.
	Caps map[string]string `mapstructure:"caps"`
	// ExemptDenoms are never taxed.
	ExemptDenoms []string `mapstructure:"exempt-denoms"`
}

// CORSConfig encapsulates the CORS config.
type CORSConfig struct {
	AllowedHeaders string `mapstructure:"allowed-headers"`
	AllowedMethods string `mapstructure:"allowed-methods"`
	AllowedOrigin  string `mapstructure:"allowed-origin"`
}

// OTELConfig encapsulates the error reporting and tracing config.
type OTELConfig struct {
	DSN           string  `mapstructure:"dsn"`
	SampleRate    float64 `mapstructure:"sample-rate"`
	EnableTracing bool    `mapstructure:"enable-tracing"`
	Environment   string  `mapstructure:"environment"`
}

// ContractConfig is the router contract's stored configuration.
// It is loaded from the state store on every execution.
type ContractConfig struct {
	RegistryAddress string `json:"registry_address"`
}
