package mocks

import (
	"context"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/prismswap/swaprouter/domain"
	"github.com/prismswap/swaprouter/domain/mvc"
)

var _ mvc.RouterUsecase = &RouterUsecaseMock{}

// RouterUsecaseMock is a mock implementation of the RouterUsecase interface
type RouterUsecaseMock struct {
	ExecuteFunc               func(ctx context.Context, env wasmvmtypes.Env, info wasmvmtypes.MessageInfo, msg domain.ExecuteMsg) (domain.Response, error)
	ExecuteSwapOperationsFunc func(ctx context.Context, env wasmvmtypes.Env, sender string, msg domain.ExecuteSwapOperationsMsg) (domain.Response, error)
	ExecuteSwapOperationFunc  func(ctx context.Context, env wasmvmtypes.Env, info wasmvmtypes.MessageInfo, operation domain.SwapOperation, to *string) (domain.Response, error)
	AssertMinimumReceiveFunc  func(ctx context.Context, msg domain.AssertMinimumReceiveMsg) (domain.Response, error)
	GetLPTokenSymbolFunc      func(ctx context.Context, assetInfos [2]domain.AssetInfo) (string, error)
	GetPairFunc               func(ctx context.Context, assetInfos [2]domain.AssetInfo) (domain.PairInfo, [2]domain.Asset, error)
	GetConfigFunc             func(ctx context.Context) (domain.ContractConfig, error)
}

// Execute implements mvc.RouterUsecase.
func (m *RouterUsecaseMock) Execute(ctx context.Context, env wasmvmtypes.Env, info wasmvmtypes.MessageInfo, msg domain.ExecuteMsg) (domain.Response, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, env, info, msg)
	}
	panic("unimplemented")
}

// ExecuteSwapOperations implements mvc.RouterUsecase.
func (m *RouterUsecaseMock) ExecuteSwapOperations(ctx context.Context, env wasmvmtypes.Env, sender string, msg domain.ExecuteSwapOperationsMsg) (domain.Response, error) {
	if m.ExecuteSwapOperationsFunc != nil {
		return m.ExecuteSwapOperationsFunc(ctx, env, sender, msg)
	}
	panic("unimplemented")
}

// ExecuteSwapOperation implements mvc.RouterUsecase.
func (m *RouterUsecaseMock) ExecuteSwapOperation(ctx context.Context, env wasmvmtypes.Env, info wasmvmtypes.MessageInfo, operation domain.SwapOperation, to *string) (domain.Response, error) {
	if m.ExecuteSwapOperationFunc != nil {
		return m.ExecuteSwapOperationFunc(ctx, env, info, operation, to)
	}
	panic("unimplemented")
}

// AssertMinimumReceive implements mvc.RouterUsecase.
func (m *RouterUsecaseMock) AssertMinimumReceive(ctx context.Context, msg domain.AssertMinimumReceiveMsg) (domain.Response, error) {
	if m.AssertMinimumReceiveFunc != nil {
		return m.AssertMinimumReceiveFunc(ctx, msg)
	}
	panic("unimplemented")
}

// GetLPTokenSymbol implements mvc.RouterUsecase.
func (m *RouterUsecaseMock) GetLPTokenSymbol(ctx context.Context, assetInfos [2]domain.AssetInfo) (string, error) {
	if m.GetLPTokenSymbolFunc != nil {
		return m.GetLPTokenSymbolFunc(ctx, assetInfos)
	}
	panic("unimplemented")
}

// GetPair implements mvc.RouterUsecase.
func (m *RouterUsecaseMock) GetPair(ctx context.Context, assetInfos [2]domain.AssetInfo) (domain.PairInfo, [2]domain.Asset, error) {
	if m.GetPairFunc != nil {
		return m.GetPairFunc(ctx, assetInfos)
	}
	panic("unimplemented")
}

// GetConfig implements mvc.RouterUsecase.
func (m *RouterUsecaseMock) GetConfig(ctx context.Context) (domain.ContractConfig, error) {
	if m.GetConfigFunc != nil {
		return m.GetConfigFunc(ctx)
	}
	panic("unimplemented")
}
