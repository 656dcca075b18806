package usecase

import (
	"context"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/prismswap/swaprouter/domain"
)

// ExecuteSwapOperation implements mvc.RouterUsecase.
// The full balance the router currently holds of the offer asset is swapped since a hop
// cannot know the exact output of the previous one. Proceeds stay on the router unless
// to is set, which marks the last hop.
func (r *routerUseCaseImpl) ExecuteSwapOperation(ctx context.Context, env wasmvmtypes.Env, info wasmvmtypes.MessageInfo, operation domain.SwapOperation, to *string) (domain.Response, error) {
	if env.Contract.Address != info.Sender {
		return domain.Response{}, domain.ErrUnauthorized
	}

	if err := operation.Validate(); err != nil {
		return domain.Response{}, err
	}

	var (
		msg wasmvmtypes.CosmosMsg
		err error
	)
	switch {
	case operation.NativeSwap != nil:
		msg, err = r.executeNativeSwap(ctx, env.Contract.Address, operation, to)
	case operation.PoolSwap != nil:
		msg, err = r.executePoolSwap(ctx, env.Contract.Address, operation, to)
	}
	if err != nil {
		domain.RouterSwapOperationErrorsCounter.WithLabelValues(operation.Kind()).Inc()
		return domain.Response{}, err
	}

	domain.RouterSwapOperationsCounter.WithLabelValues(operation.Kind()).Inc()

	return domain.NewResponse().
		AddMessages(msg).
		AddAttribute("action", "execute_swap_operation").
		AddAttribute("offer_asset", operation.OfferAssetInfo().String()).
		AddAttribute("ask_asset", operation.AskAssetInfo().String()), nil
}

func (r *routerUseCaseImpl) executeNativeSwap(ctx context.Context, contractAddr string, operation domain.SwapOperation, to *string) (wasmvmtypes.CosmosMsg, error) {
	nativeSwap := operation.NativeSwap

	amount, err := r.querier.QueryBalance(ctx, contractAddr, nativeSwap.OfferDenom)
	if err != nil {
		return wasmvmtypes.CosmosMsg{}, err
	}

	r.logHop(operation, to, amount.String())

	offerAsset := domain.NewAsset(domain.NewNativeAssetInfo(nativeSwap.OfferDenom), amount)

	if to == nil {
		offerCoin, err := offerAsset.ToCoin()
		if err != nil {
			return wasmvmtypes.CosmosMsg{}, err
		}
		return domain.NewMarketSwapMsg(offerCoin, nativeSwap.AskDenom)
	}

	// Last hop sends the proceeds out, so the offer must leave room for the transfer tax.
	offerAsset, err = offerAsset.DeductTax(ctx, r.querier)
	if err != nil {
		return wasmvmtypes.CosmosMsg{}, err
	}

	offerCoin, err := offerAsset.ToCoin()
	if err != nil {
		return wasmvmtypes.CosmosMsg{}, err
	}

	return domain.NewMarketSwapSendMsg(*to, offerCoin, nativeSwap.AskDenom)
}

func (r *routerUseCaseImpl) executePoolSwap(ctx context.Context, contractAddr string, operation domain.SwapOperation, to *string) (wasmvmtypes.CosmosMsg, error) {
	poolSwap := operation.PoolSwap

	config, err := r.configRepository.LoadConfig(ctx)
	if err != nil {
		return wasmvmtypes.CosmosMsg{}, err
	}

	pairInfo, err := r.querier.QueryPairInfo(ctx, config.RegistryAddress, [2]domain.AssetInfo{poolSwap.OfferAssetInfo, poolSwap.AskAssetInfo})
	if err != nil {
		return wasmvmtypes.CosmosMsg{}, err
	}

	if !poolSwap.OfferAssetInfo.IsNative() {
		if _, err := r.addressValidator.AddrValidate(poolSwap.OfferAssetInfo.Value); err != nil {
			return wasmvmtypes.CosmosMsg{}, err
		}
	}

	amount, err := poolSwap.OfferAssetInfo.QueryBalance(ctx, r.querier, contractAddr)
	if err != nil {
		return wasmvmtypes.CosmosMsg{}, err
	}

	r.logHop(operation, to, amount.String())

	offerAsset := domain.NewAsset(poolSwap.OfferAssetInfo, amount)

	return AssetIntoSwapMsg(ctx, r.querier, pairInfo.ContractAddr, offerAsset, nil, to)
}
