package domain

import (
	"context"
	"fmt"
	"strings"

	"cosmossdk.io/math"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/prismswap/swaprouter/domain/json"
)

// AssetKind discriminates the two asset representations.
type AssetKind uint8

const (
	// NativeAsset is a coin held by the ledger's bank module, identified by denom.
	NativeAsset AssetKind = iota + 1
	// TokenAsset is a CW20 token, identified by its contract address.
	TokenAsset
)

// AssetKinds lists every supported kind. Consumers switching on AssetKind
// are tested against this list.
var AssetKinds = []AssetKind{NativeAsset, TokenAsset}

func (k AssetKind) String() string {
	switch k {
	case NativeAsset:
		return "native"
	case TokenAsset:
		return "cw20"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// AssetInfo identifies an asset. It is comparable and safe to use as a map key.
type AssetInfo struct {
	Kind AssetKind
	// Value is the denom for native assets and the contract address for tokens.
	Value string
}

// NewNativeAssetInfo returns the asset info of a native denom.
func NewNativeAssetInfo(denom string) AssetInfo {
	return AssetInfo{Kind: NativeAsset, Value: denom}
}

// NewTokenAssetInfo returns the asset info of a CW20 token contract.
func NewTokenAssetInfo(contractAddr string) AssetInfo {
	return AssetInfo{Kind: TokenAsset, Value: contractAddr}
}

// IsNative returns true for native denoms.
func (a AssetInfo) IsNative() bool {
	return a.Kind == NativeAsset
}

// Validate returns an error if the kind is unknown or the identifier is empty.
func (a AssetInfo) Validate() error {
	switch a.Kind {
	case NativeAsset, TokenAsset:
		if a.Value == "" {
			return InvalidAssetInfoError{Kind: a.Kind, Value: a.Value}
		}
		return nil
	default:
		return InvalidAssetInfoError{Kind: a.Kind, Value: a.Value}
	}
}

// Equal reports whether both infos identify the same asset.
func (a AssetInfo) Equal(other AssetInfo) bool {
	return a == other
}

// AsBytes returns the denom bytes for native assets and the address bytes for tokens.
// The kind is not encoded.
func (a AssetInfo) AsBytes() []byte {
	return []byte(a.Value)
}

// String implements fmt.Stringer.
func (a AssetInfo) String() string {
	return a.Kind.String() + ":" + a.Value
}

// ParseAssetInfo parses the String form of an asset info, e.g. "native:uluna" or "cw20:terra1...".
func ParseAssetInfo(s string) (AssetInfo, error) {
	kind, value, found := strings.Cut(s, ":")
	if !found {
		return AssetInfo{}, InvalidAssetInfoError{Value: s}
	}

	var info AssetInfo
	switch kind {
	case NativeAsset.String():
		info = NewNativeAssetInfo(value)
	case TokenAsset.String():
		info = NewTokenAssetInfo(value)
	default:
		return AssetInfo{}, InvalidAssetInfoError{Value: s}
	}

	if err := info.Validate(); err != nil {
		return AssetInfo{}, err
	}
	return info, nil
}

// QueryBalance returns the holder's balance of this asset.
func (a AssetInfo) QueryBalance(ctx context.Context, querier BalanceQuerier, holder string) (math.Uint, error) {
	switch a.Kind {
	case NativeAsset:
		return querier.QueryBalance(ctx, holder, a.Value)
	case TokenAsset:
		return querier.QueryTokenBalance(ctx, a.Value, holder)
	default:
		return math.Uint{}, InvalidAssetInfoError{Kind: a.Kind, Value: a.Value}
	}
}

type assetInfoJSON struct {
	Native *string `json:"native,omitempty"`
	CW20   *string `json:"cw20,omitempty"`
}

// MarshalJSON encodes the info as {"native":"<denom>"} or {"cw20":"<addr>"}.
func (a AssetInfo) MarshalJSON() ([]byte, error) {
	value := a.Value
	switch a.Kind {
	case NativeAsset:
		return json.Marshal(assetInfoJSON{Native: &value})
	case TokenAsset:
		return json.Marshal(assetInfoJSON{CW20: &value})
	default:
		return nil, InvalidAssetInfoError{Kind: a.Kind, Value: a.Value}
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *AssetInfo) UnmarshalJSON(data []byte) error {
	var raw assetInfoJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.Native != nil && raw.CW20 == nil:
		*a = NewNativeAssetInfo(*raw.Native)
	case raw.CW20 != nil && raw.Native == nil:
		*a = NewTokenAssetInfo(*raw.CW20)
	default:
		return InvalidAssetInfoError{}
	}

	return a.Validate()
}

// Asset is an amount of a given asset.
type Asset struct {
	Info   AssetInfo `json:"info"`
	Amount math.Uint `json:"amount"`
}

// NewAsset returns an asset of the given info and amount.
func NewAsset(info AssetInfo, amount math.Uint) Asset {
	return Asset{Info: info, Amount: amount}
}

// Validate checks the info and that the amount fits into 128 bits.
func (a Asset) Validate() error {
	if err := a.Info.Validate(); err != nil {
		return err
	}
	if a.Amount == (math.Uint{}) {
		return fmt.Errorf("asset %s has no amount", a.Info)
	}
	return CheckUint128(a.Amount)
}

// String implements fmt.Stringer.
func (a Asset) String() string {
	return a.Amount.String() + a.Info.String()
}

// ComputeTax returns the transfer tax charged on this asset.
// Tokens are never taxed and the querier is not consulted for them.
func (a Asset) ComputeTax(ctx context.Context, querier TaxQuerier) (math.Uint, error) {
	switch a.Info.Kind {
	case NativeAsset:
		return querier.ComputeTax(ctx, a.Info.Value, a.Amount)
	case TokenAsset:
		return math.ZeroUint(), nil
	default:
		return math.Uint{}, InvalidAssetInfoError{Kind: a.Info.Kind, Value: a.Info.Value}
	}
}

// DeductTax returns the asset with its transfer tax subtracted.
// Returns ArithmeticUnderflowError if the tax exceeds the amount.
func (a Asset) DeductTax(ctx context.Context, querier TaxQuerier) (Asset, error) {
	tax, err := a.ComputeTax(ctx, querier)
	if err != nil {
		return Asset{}, err
	}

	amount, err := CheckedSub(a.Amount, tax)
	if err != nil {
		return Asset{}, err
	}

	return NewAsset(a.Info, amount), nil
}

// ToCoin converts a native asset to a coin.
func (a Asset) ToCoin() (wasmvmtypes.Coin, error) {
	if !a.Info.IsNative() {
		return wasmvmtypes.Coin{}, fmt.Errorf("asset %s is not a native coin", a.Info)
	}
	return wasmvmtypes.Coin{Denom: a.Info.Value, Amount: a.Amount.String()}, nil
}

// AssertFundsMatch checks that the native funds attached to a call match the declared asset.
// If no coin of the denom is attached the declared amount must be zero.
// Tokens always pass since they are moved by a separate token contract call.
func (a Asset) AssertFundsMatch(funds []wasmvmtypes.Coin) error {
	switch a.Info.Kind {
	case NativeAsset:
	case TokenAsset:
		return nil
	default:
		return InvalidAssetInfoError{Kind: a.Info.Kind, Value: a.Info.Value}
	}

	denom := a.Info.Value
	for _, coin := range funds {
		if coin.Denom != denom {
			continue
		}

		sent, err := math.ParseUint(coin.Amount)
		if err != nil {
			return BalanceMismatchError{Denom: denom, Declared: a.Amount, Sent: math.ZeroUint()}
		}
		if !a.Amount.Equal(sent) {
			return BalanceMismatchError{Denom: denom, Declared: a.Amount, Sent: sent}
		}
		return nil
	}

	if !a.Amount.IsZero() {
		return BalanceMismatchError{Denom: denom, Declared: a.Amount, Sent: math.ZeroUint()}
	}
	return nil
}

// IntoSwapMsg builds the message swapping this asset in the given pair contract.
// Native assets are attached as funds to a direct pair call. Tokens are wrapped in
// a CW20 send to the pair whose inner message is the same swap payload.
// No tax is deducted here.
func (a Asset) IntoSwapMsg(pairContract string, maxSpread *osmomath.Dec, to *string) (wasmvmtypes.CosmosMsg, error) {
	swapMsg, err := json.Marshal(NewPairSwapMsg(a, maxSpread, to))
	if err != nil {
		return wasmvmtypes.CosmosMsg{}, err
	}

	switch a.Info.Kind {
	case NativeAsset:
		coin, err := a.ToCoin()
		if err != nil {
			return wasmvmtypes.CosmosMsg{}, err
		}
		return NewWasmExecuteMsg(pairContract, swapMsg, coin), nil
	case TokenAsset:
		sendMsg, err := json.Marshal(Cw20ExecuteMsg{
			Send: &Cw20SendMsg{
				Contract: pairContract,
				Amount:   a.Amount,
				Msg:      swapMsg,
			},
		})
		if err != nil {
			return wasmvmtypes.CosmosMsg{}, err
		}
		return NewWasmExecuteMsg(a.Info.Value, sendMsg), nil
	default:
		return wasmvmtypes.CosmosMsg{}, InvalidAssetInfoError{Kind: a.Info.Kind, Value: a.Info.Value}
	}
}
