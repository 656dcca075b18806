package domain

import (
	"context"

	"cosmossdk.io/math"
)

// BankQuerier reads native ledger balances.
type BankQuerier interface {
	// QueryBalance returns the holder's balance of the given native denom.
	QueryBalance(ctx context.Context, holder string, denom string) (math.Uint, error)
}

// TokenQuerier reads CW20 token contract state.
type TokenQuerier interface {
	// QueryTokenBalance returns the holder's balance in the given token contract.
	QueryTokenBalance(ctx context.Context, tokenAddr string, holder string) (math.Uint, error)
	// QueryTokenSymbol returns the symbol the token contract reports in its token info.
	QueryTokenSymbol(ctx context.Context, tokenAddr string) (string, error)
}

// RegistryQuerier resolves pools registered in the pair registry (factory) contract.
type RegistryQuerier interface {
	// QueryPairInfo returns the pair registered for the given asset infos.
	QueryPairInfo(ctx context.Context, registryAddr string, assetInfos [2]AssetInfo) (PairInfo, error)
}

// TaxQuerier computes the ledger-level transfer tax for native coins.
type TaxQuerier interface {
	// ComputeTax returns the tax charged when transferring amount of denom.
	ComputeTax(ctx context.Context, denom string, amount math.Uint) (math.Uint, error)
}

// BalanceQuerier can read balances of both asset kinds.
type BalanceQuerier interface {
	BankQuerier
	TokenQuerier
}

// Querier is the read-only view of ledger and contract state used by the router.
type Querier interface {
	BankQuerier
	TokenQuerier
	RegistryQuerier
	TaxQuerier
}

// AddressValidator performs the host's address format validation.
type AddressValidator interface {
	// AddrValidate returns the validated address or an error if the format is invalid.
	AddrValidate(addr string) (string, error)
}

// NodeStatusQuerier reports the state of the node the router reads from.
type NodeStatusQuerier interface {
	// GetLatestHeight returns the height of the latest block known to the node.
	GetLatestHeight(ctx context.Context) (uint64, error)
	// IsSyncing returns true while the node is catching up.
	IsSyncing(ctx context.Context) (bool, error)
}
