package mvc

import (
	"context"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/prismswap/swaprouter/domain"
)

// RouterUsecase represents the router's usecases
type RouterUsecase interface {
	// Execute dispatches a router execute message.
	Execute(ctx context.Context, env wasmvmtypes.Env, info wasmvmtypes.MessageInfo, msg domain.ExecuteMsg) (domain.Response, error)

	// ExecuteSwapOperations expands a route into one self-call per hop, in order,
	// optionally followed by a minimum receive assertion.
	ExecuteSwapOperations(ctx context.Context, env wasmvmtypes.Env, sender string, msg domain.ExecuteSwapOperationsMsg) (domain.Response, error)

	// ExecuteSwapOperation executes a single hop. Only the router itself may call it.
	// The whole current balance of the offer asset is swapped.
	ExecuteSwapOperation(ctx context.Context, env wasmvmtypes.Env, info wasmvmtypes.MessageInfo, operation domain.SwapOperation, to *string) (domain.Response, error)

	// AssertMinimumReceive fails if the receiver gained less than the minimum since the previous balance.
	AssertMinimumReceive(ctx context.Context, msg domain.AssertMinimumReceiveMsg) (domain.Response, error)

	// GetLPTokenSymbol returns the liquidity token symbol of a pair of assets.
	GetLPTokenSymbol(ctx context.Context, assetInfos [2]domain.AssetInfo) (string, error)

	// GetPair resolves a pair through the registry and returns its pool balances.
	GetPair(ctx context.Context, assetInfos [2]domain.AssetInfo) (domain.PairInfo, [2]domain.Asset, error)

	// GetConfig returns the stored contract config.
	GetConfig(ctx context.Context) (domain.ContractConfig, error)
}
