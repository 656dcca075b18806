package usecase

import (
	"context"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/prismswap/swaprouter/domain"
)

// AssetIntoSwapMsg builds the message swapping offerAsset in pairContract.
// Native offers have the transfer tax deducted first so that the attached funds plus the tax
// fit into what the router holds. Returns domain.ArithmeticUnderflowError if the tax exceeds the amount.
// Token offers are sent in full.
func AssetIntoSwapMsg(ctx context.Context, querier domain.TaxQuerier, pairContract string, offerAsset domain.Asset, maxSpread *osmomath.Dec, to *string) (wasmvmtypes.CosmosMsg, error) {
	switch offerAsset.Info.Kind {
	case domain.NativeAsset:
		taxedAsset, err := offerAsset.DeductTax(ctx, querier)
		if err != nil {
			return wasmvmtypes.CosmosMsg{}, err
		}
		return taxedAsset.IntoSwapMsg(pairContract, maxSpread, to)
	case domain.TokenAsset:
		return offerAsset.IntoSwapMsg(pairContract, maxSpread, to)
	default:
		return wasmvmtypes.CosmosMsg{}, domain.InvalidAssetInfoError{Kind: offerAsset.Info.Kind, Value: offerAsset.Info.Value}
	}
}
