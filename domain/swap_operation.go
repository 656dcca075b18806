package domain

import (
	"github.com/prismswap/swaprouter/domain/json"
)

const (
	NativeSwapKind = "native_swap"
	PoolSwapKind   = "pool_swap"
)

// NativeSwap exchanges one native denom for another through the ledger's market module.
type NativeSwap struct {
	OfferDenom string `json:"offer_denom"`
	AskDenom   string `json:"ask_denom"`
}

// PoolSwap exchanges through the pool registered for the two assets.
type PoolSwap struct {
	OfferAssetInfo AssetInfo `json:"offer_asset_info"`
	AskAssetInfo   AssetInfo `json:"ask_asset_info"`
}

// SwapOperation is one hop of a route. Exactly one variant is set.
type SwapOperation struct {
	NativeSwap *NativeSwap `json:"native_swap,omitempty"`
	PoolSwap   *PoolSwap   `json:"pool_swap,omitempty"`
}

// NewNativeSwapOperation returns a market swap hop.
func NewNativeSwapOperation(offerDenom, askDenom string) SwapOperation {
	return SwapOperation{NativeSwap: &NativeSwap{OfferDenom: offerDenom, AskDenom: askDenom}}
}

// NewPoolSwapOperation returns a pool swap hop.
func NewPoolSwapOperation(offer, ask AssetInfo) SwapOperation {
	return SwapOperation{PoolSwap: &PoolSwap{OfferAssetInfo: offer, AskAssetInfo: ask}}
}

// Kind returns the wire name of the set variant.
func (o SwapOperation) Kind() string {
	switch {
	case o.NativeSwap != nil:
		return NativeSwapKind
	case o.PoolSwap != nil:
		return PoolSwapKind
	default:
		return "unknown"
	}
}

// Validate returns an error unless exactly one well-formed variant is set.
func (o SwapOperation) Validate() error {
	switch {
	case o.NativeSwap != nil && o.PoolSwap != nil:
		return InvalidSwapOperationError{Reason: "both native_swap and pool_swap are set"}
	case o.NativeSwap != nil:
		if o.NativeSwap.OfferDenom == "" || o.NativeSwap.AskDenom == "" {
			return InvalidSwapOperationError{Reason: "native_swap denoms must not be empty"}
		}
		if o.NativeSwap.OfferDenom == o.NativeSwap.AskDenom {
			return InvalidSwapOperationError{Reason: "native_swap offer and ask denoms are the same"}
		}
		return nil
	case o.PoolSwap != nil:
		if err := o.PoolSwap.OfferAssetInfo.Validate(); err != nil {
			return err
		}
		if err := o.PoolSwap.AskAssetInfo.Validate(); err != nil {
			return err
		}
		if o.PoolSwap.OfferAssetInfo.Equal(o.PoolSwap.AskAssetInfo) {
			return InvalidSwapOperationError{Reason: "pool_swap offer and ask assets are the same"}
		}
		return nil
	default:
		return InvalidSwapOperationError{Reason: "no operation variant is set"}
	}
}

// OfferAssetInfo returns the asset consumed by this hop.
func (o SwapOperation) OfferAssetInfo() AssetInfo {
	switch {
	case o.NativeSwap != nil:
		return NewNativeAssetInfo(o.NativeSwap.OfferDenom)
	case o.PoolSwap != nil:
		return o.PoolSwap.OfferAssetInfo
	default:
		return AssetInfo{}
	}
}

// AskAssetInfo returns the asset produced by this hop.
func (o SwapOperation) AskAssetInfo() AssetInfo {
	switch {
	case o.NativeSwap != nil:
		return NewNativeAssetInfo(o.NativeSwap.AskDenom)
	case o.PoolSwap != nil:
		return o.PoolSwap.AskAssetInfo
	default:
		return AssetInfo{}
	}
}

// UnmarshalJSON decodes the operation and validates it.
func (o *SwapOperation) UnmarshalJSON(data []byte) error {
	type swapOperation SwapOperation
	var raw swapOperation
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*o = SwapOperation(raw)
	return o.Validate()
}
