package mocks

import (
	"context"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	"github.com/cosmos/cosmos-sdk/client/grpc/cmtservice"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"google.golang.org/grpc"
)

var _ banktypes.QueryClient = &BankQueryClient{}

// BankQueryClient mocks the bank query service. Methods without a func panic.
type BankQueryClient struct {
	banktypes.QueryClient

	BalanceFunc func(ctx context.Context, in *banktypes.QueryBalanceRequest, opts ...grpc.CallOption) (*banktypes.QueryBalanceResponse, error)
}

func (m *BankQueryClient) Balance(ctx context.Context, in *banktypes.QueryBalanceRequest, opts ...grpc.CallOption) (*banktypes.QueryBalanceResponse, error) {
	if m.BalanceFunc != nil {
		return m.BalanceFunc(ctx, in, opts...)
	}
	panic("unimplemented")
}

var _ wasmtypes.QueryClient = &WasmQueryClient{}

// WasmQueryClient mocks the wasm query service. Methods without a func panic.
type WasmQueryClient struct {
	wasmtypes.QueryClient

	SmartContractStateFunc func(ctx context.Context, in *wasmtypes.QuerySmartContractStateRequest, opts ...grpc.CallOption) (*wasmtypes.QuerySmartContractStateResponse, error)
}

func (m *WasmQueryClient) SmartContractState(ctx context.Context, in *wasmtypes.QuerySmartContractStateRequest, opts ...grpc.CallOption) (*wasmtypes.QuerySmartContractStateResponse, error) {
	if m.SmartContractStateFunc != nil {
		return m.SmartContractStateFunc(ctx, in, opts...)
	}
	panic("unimplemented")
}

var _ cmtservice.ServiceClient = &CometServiceClient{}

// CometServiceClient mocks the CometBFT node service. Methods without a func panic.
type CometServiceClient struct {
	cmtservice.ServiceClient

	GetLatestBlockFunc func(ctx context.Context, in *cmtservice.GetLatestBlockRequest, opts ...grpc.CallOption) (*cmtservice.GetLatestBlockResponse, error)
	GetSyncingFunc     func(ctx context.Context, in *cmtservice.GetSyncingRequest, opts ...grpc.CallOption) (*cmtservice.GetSyncingResponse, error)
}

func (m *CometServiceClient) GetLatestBlock(ctx context.Context, in *cmtservice.GetLatestBlockRequest, opts ...grpc.CallOption) (*cmtservice.GetLatestBlockResponse, error) {
	if m.GetLatestBlockFunc != nil {
		return m.GetLatestBlockFunc(ctx, in, opts...)
	}
	panic("unimplemented")
}

func (m *CometServiceClient) GetSyncing(ctx context.Context, in *cmtservice.GetSyncingRequest, opts ...grpc.CallOption) (*cmtservice.GetSyncingResponse, error) {
	if m.GetSyncingFunc != nil {
		return m.GetSyncingFunc(ctx, in, opts...)
	}
	panic("unimplemented")
}
