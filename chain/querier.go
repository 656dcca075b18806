package chain

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	gogogrpc "github.com/cosmos/gogoproto/grpc"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/prismswap/swaprouter/domain"
)

const defaultTokenSymbolCacheSize = 1024

type querierImpl struct {
	bankClient banktypes.QueryClient
	wasmClient wasmtypes.QueryClient
	taxQuerier domain.TaxQuerier

	// CW20 symbols never change once a token is instantiated.
	tokenSymbols *lru.Cache[string, string]
}

var _ domain.Querier = &querierImpl{}

// NewQuerier creates a querier over the chain's bank and wasm gRPC query services.
func NewQuerier(conn gogogrpc.ClientConn, taxQuerier domain.TaxQuerier, tokenSymbolCacheSize int) (domain.Querier, error) {
	return NewQuerierFromClients(banktypes.NewQueryClient(conn), wasmtypes.NewQueryClient(conn), taxQuerier, tokenSymbolCacheSize)
}

// NewQuerierFromClients creates a querier from already constructed query clients.
func NewQuerierFromClients(bankClient banktypes.QueryClient, wasmClient wasmtypes.QueryClient, taxQuerier domain.TaxQuerier, tokenSymbolCacheSize int) (domain.Querier, error) {
	if tokenSymbolCacheSize <= 0 {
		tokenSymbolCacheSize = defaultTokenSymbolCacheSize
	}

	tokenSymbols, err := lru.New[string, string](tokenSymbolCacheSize)
	if err != nil {
		return nil, err
	}

	return &querierImpl{
		bankClient:   bankClient,
		wasmClient:   wasmClient,
		taxQuerier:   taxQuerier,
		tokenSymbols: tokenSymbols,
	}, nil
}

// QueryBalance implements domain.Querier.
func (q *querierImpl) QueryBalance(ctx context.Context, holder string, denom string) (math.Uint, error) {
	response, err := q.bankClient.Balance(ctx, &banktypes.QueryBalanceRequest{
		Address: holder,
		Denom:   denom,
	})
	if err != nil {
		return math.Uint{}, domain.QueryFailureError{Query: "balance", Err: err}
	}

	if response.Balance == nil || response.Balance.Amount.IsNil() {
		return math.ZeroUint(), nil
	}

	if response.Balance.Amount.IsNegative() {
		return math.Uint{}, domain.QueryFailureError{Query: "balance", Err: fmt.Errorf("negative balance (%s)", response.Balance.Amount)}
	}

	return toUint128(math.NewUintFromBigInt(response.Balance.Amount.BigInt()), "balance")
}

// QueryTokenBalance implements domain.Querier.
func (q *querierImpl) QueryTokenBalance(ctx context.Context, tokenAddr string, holder string) (math.Uint, error) {
	request := domain.Cw20QueryMsg{
		Balance: &domain.Cw20BalanceQuery{Address: holder},
	}

	var response domain.Cw20BalanceResponse
	if err := queryCosmwasmContract(ctx, q.wasmClient, tokenAddr, request, &response); err != nil {
		return math.Uint{}, domain.QueryFailureError{Query: "token_balance", Err: err}
	}

	if response.Balance == (math.Uint{}) {
		return math.Uint{}, domain.QueryFailureError{Query: "token_balance", Err: fmt.Errorf("missing balance in response")}
	}

	return toUint128(response.Balance, "token_balance")
}

// QueryTokenSymbol implements domain.Querier.
func (q *querierImpl) QueryTokenSymbol(ctx context.Context, tokenAddr string) (string, error) {
	if symbol, ok := q.tokenSymbols.Get(tokenAddr); ok {
		domain.ChainTokenSymbolCacheHitsCounter.Inc()
		return symbol, nil
	}
	domain.ChainTokenSymbolCacheMissesCounter.Inc()

	request := domain.Cw20QueryMsg{
		TokenInfo: &struct{}{},
	}

	var response domain.Cw20TokenInfoResponse
	if err := queryCosmwasmContract(ctx, q.wasmClient, tokenAddr, request, &response); err != nil {
		return "", domain.QueryFailureError{Query: "token_info", Err: err}
	}

	q.tokenSymbols.Add(tokenAddr, response.Symbol)

	return response.Symbol, nil
}

// QueryPairInfo implements domain.Querier.
func (q *querierImpl) QueryPairInfo(ctx context.Context, registryAddr string, assetInfos [2]domain.AssetInfo) (domain.PairInfo, error) {
	request := domain.RegistryQueryMsg{
		Pair: &domain.RegistryPairQuery{AssetInfos: assetInfos},
	}

	var response domain.PairInfo
	if err := queryCosmwasmContract(ctx, q.wasmClient, registryAddr, request, &response); err != nil {
		return domain.PairInfo{}, domain.QueryFailureError{Query: "pair", Err: err}
	}

	if response.ContractAddr == "" {
		return domain.PairInfo{}, domain.QueryFailureError{Query: "pair", Err: fmt.Errorf("registry returned no pair contract")}
	}

	return response, nil
}

// ComputeTax implements domain.Querier.
func (q *querierImpl) ComputeTax(ctx context.Context, denom string, amount math.Uint) (math.Uint, error) {
	tax, err := q.taxQuerier.ComputeTax(ctx, denom, amount)
	if err != nil {
		return math.Uint{}, domain.QueryFailureError{Query: "tax", Err: err}
	}
	return tax, nil
}

func toUint128(amount math.Uint, query string) (math.Uint, error) {
	if err := domain.CheckUint128(amount); err != nil {
		return math.Uint{}, domain.QueryFailureError{Query: query, Err: err}
	}
	return amount, nil
}
