package chain_test

import (
	"context"
	"errors"
	"testing"

	"cosmossdk.io/math"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/prismswap/swaprouter/chain"
	"github.com/prismswap/swaprouter/domain"
	"github.com/prismswap/swaprouter/domain/json"
	"github.com/prismswap/swaprouter/domain/mocks"
)

const (
	holder   = "terra1holder"
	token    = "terra1token"
	registry = "terra1registry"
)

var errNode = errors.New("node unavailable")

func newTestQuerier(t *testing.T, bank *mocks.BankQueryClient, wasm *mocks.WasmQueryClient) domain.Querier {
	t.Helper()

	taxPolicy, err := domain.NewTaxPolicy(domain.TaxConfig{
		Rate:         "0.001",
		Caps:         map[string]string{"uusd": "1000"},
		ExemptDenoms: []string{"uluna"},
	})
	require.NoError(t, err)

	querier, err := chain.NewQuerierFromClients(bank, wasm, taxPolicy, 0)
	require.NoError(t, err)
	return querier
}

// smartQueryResponder answers smart queries with the given JSON after checking the request.
func smartQueryResponder(t *testing.T, expectedContract string, expectedQuery string, response string) func(ctx context.Context, in *wasmtypes.QuerySmartContractStateRequest, opts ...grpc.CallOption) (*wasmtypes.QuerySmartContractStateResponse, error) {
	return func(ctx context.Context, in *wasmtypes.QuerySmartContractStateRequest, opts ...grpc.CallOption) (*wasmtypes.QuerySmartContractStateResponse, error) {
		require.Equal(t, expectedContract, in.Address)
		require.JSONEq(t, expectedQuery, string(in.QueryData))
		return &wasmtypes.QuerySmartContractStateResponse{Data: []byte(response)}, nil
	}
}

func TestQueryBalance(t *testing.T) {
	tests := []struct {
		name     string
		response *banktypes.QueryBalanceResponse
		err      error

		expected    math.Uint
		expectedErr bool
	}{
		{
			name:     "balance",
			response: &banktypes.QueryBalanceResponse{Balance: &sdk.Coin{Denom: "uusd", Amount: math.NewInt(1_000_000)}},
			expected: math.NewUint(1_000_000),
		},
		{
			name:     "no balance",
			response: &banktypes.QueryBalanceResponse{},
			expected: math.ZeroUint(),
		},
		{
			name:        "node error",
			err:         errNode,
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bank := &mocks.BankQueryClient{
				BalanceFunc: func(ctx context.Context, in *banktypes.QueryBalanceRequest, opts ...grpc.CallOption) (*banktypes.QueryBalanceResponse, error) {
					require.Equal(t, holder, in.Address)
					require.Equal(t, "uusd", in.Denom)
					return tt.response, tt.err
				},
			}

			amount, err := newTestQuerier(t, bank, &mocks.WasmQueryClient{}).QueryBalance(context.Background(), holder, "uusd")
			if tt.expectedErr {
				var queryErr domain.QueryFailureError
				require.ErrorAs(t, err, &queryErr)
				require.ErrorIs(t, err, errNode)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected.String(), amount.String())
		})
	}
}

func TestQueryTokenBalance(t *testing.T) {
	wasm := &mocks.WasmQueryClient{
		SmartContractStateFunc: smartQueryResponder(t, token, `{"balance":{"address":"terra1holder"}}`, `{"balance":"42"}`),
	}

	amount, err := newTestQuerier(t, &mocks.BankQueryClient{}, wasm).QueryTokenBalance(context.Background(), token, holder)
	require.NoError(t, err)
	require.Equal(t, "42", amount.String())

	// Unexpected response shape.
	wasm.SmartContractStateFunc = smartQueryResponder(t, token, `{"balance":{"address":"terra1holder"}}`, `{"amount":"42"}`)
	_, err = newTestQuerier(t, &mocks.BankQueryClient{}, wasm).QueryTokenBalance(context.Background(), token, holder)
	var queryErr domain.QueryFailureError
	require.ErrorAs(t, err, &queryErr)
}

func TestQueryTokenSymbolIsCached(t *testing.T) {
	calls := 0
	responder := smartQueryResponder(t, token, `{"token_info":{}}`, `{"name":"Prism","symbol":"xPRISM","decimals":6,"total_supply":"100"}`)
	wasm := &mocks.WasmQueryClient{
		SmartContractStateFunc: func(ctx context.Context, in *wasmtypes.QuerySmartContractStateRequest, opts ...grpc.CallOption) (*wasmtypes.QuerySmartContractStateResponse, error) {
			calls++
			return responder(ctx, in, opts...)
		},
	}

	querier := newTestQuerier(t, &mocks.BankQueryClient{}, wasm)
	for i := 0; i < 3; i++ {
		symbol, err := querier.QueryTokenSymbol(context.Background(), token)
		require.NoError(t, err)
		require.Equal(t, "xPRISM", symbol)
	}
	require.Equal(t, 1, calls)
}

func TestQueryPairInfo(t *testing.T) {
	assetInfos := [2]domain.AssetInfo{domain.NewNativeAssetInfo("uluna"), domain.NewTokenAssetInfo(token)}
	expectedQuery := `{"pair":{"asset_infos":[{"native":"uluna"},{"cw20":"terra1token"}]}}`

	expected := domain.PairInfo{
		AssetInfos:     assetInfos,
		ContractAddr:   "terra1pair",
		LiquidityToken: "terra1lp",
	}
	response, err := json.Marshal(expected)
	require.NoError(t, err)

	wasm := &mocks.WasmQueryClient{
		SmartContractStateFunc: smartQueryResponder(t, registry, expectedQuery, string(response)),
	}

	pairInfo, err := newTestQuerier(t, &mocks.BankQueryClient{}, wasm).QueryPairInfo(context.Background(), registry, assetInfos)
	require.NoError(t, err)
	require.Equal(t, expected, pairInfo)

	wasm.SmartContractStateFunc = func(ctx context.Context, in *wasmtypes.QuerySmartContractStateRequest, opts ...grpc.CallOption) (*wasmtypes.QuerySmartContractStateResponse, error) {
		return nil, errNode
	}
	_, err = newTestQuerier(t, &mocks.BankQueryClient{}, wasm).QueryPairInfo(context.Background(), registry, assetInfos)
	require.ErrorIs(t, err, errNode)
}

func TestComputeTax(t *testing.T) {
	querier := newTestQuerier(t, &mocks.BankQueryClient{}, &mocks.WasmQueryClient{})

	// Capped at 1000.
	tax, err := querier.ComputeTax(context.Background(), "uusd", math.NewUint(100_000_000))
	require.NoError(t, err)
	require.Equal(t, "1000", tax.String())

	// Exempt.
	tax, err = querier.ComputeTax(context.Background(), "uluna", math.NewUint(100_000_000))
	require.NoError(t, err)
	require.True(t, tax.IsZero())

	// Uncapped denom.
	tax, err = querier.ComputeTax(context.Background(), "ukrw", math.NewUint(1_001_000))
	require.NoError(t, err)
	require.Equal(t, "1000", tax.String())
}
