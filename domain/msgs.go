package domain

import (
	"cosmossdk.io/math"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
	"github.com/osmosis-labs/osmosis/osmomath"
)

// PairExecuteMsg is the execute message accepted by a pair (pool) contract.
// Only the swap variant is produced by the router.
type PairExecuteMsg struct {
	Swap *PairSwapMsg `json:"swap,omitempty"`
}

// PairSwapMsg swaps the offer asset against the other asset of the pool.
type PairSwapMsg struct {
	OfferAsset  Asset         `json:"offer_asset"`
	BeliefPrice *osmomath.Dec `json:"belief_price,omitempty"`
	MaxSpread   *osmomath.Dec `json:"max_spread,omitempty"`
	To          *string       `json:"to,omitempty"`
}

// NewPairSwapMsg returns a pair swap message. The belief price is always left unset;
// slippage is bounded by maxSpread only.
func NewPairSwapMsg(offerAsset Asset, maxSpread *osmomath.Dec, to *string) PairExecuteMsg {
	return PairExecuteMsg{
		Swap: &PairSwapMsg{
			OfferAsset: offerAsset,
			MaxSpread:  maxSpread,
			To:         to,
		},
	}
}

// Cw20ExecuteMsg is the subset of CW20 execute messages used by the router.
type Cw20ExecuteMsg struct {
	Send     *Cw20SendMsg     `json:"send,omitempty"`
	Transfer *Cw20TransferMsg `json:"transfer,omitempty"`
}

// Cw20SendMsg moves tokens to a contract and triggers its receive hook with Msg.
type Cw20SendMsg struct {
	Contract string    `json:"contract"`
	Amount   math.Uint `json:"amount"`
	Msg      []byte    `json:"msg"`
}

// Cw20TransferMsg moves tokens to a recipient without a hook.
type Cw20TransferMsg struct {
	Recipient string    `json:"recipient"`
	Amount    math.Uint `json:"amount"`
}

// Cw20ReceiveMsg is delivered by a token contract to the receiving contract of a send.
type Cw20ReceiveMsg struct {
	Sender string    `json:"sender"`
	Amount math.Uint `json:"amount"`
	Msg    []byte    `json:"msg"`
}

// Cw20QueryMsg is the subset of CW20 queries used by the router.
type Cw20QueryMsg struct {
	Balance   *Cw20BalanceQuery `json:"balance,omitempty"`
	TokenInfo *struct{}         `json:"token_info,omitempty"`
}

// Cw20BalanceQuery requests the balance of Address.
type Cw20BalanceQuery struct {
	Address string `json:"address"`
}

// Cw20BalanceResponse is the response to Cw20BalanceQuery.
type Cw20BalanceResponse struct {
	Balance math.Uint `json:"balance"`
}

// Cw20TokenInfoResponse is the response to the token_info query.
type Cw20TokenInfoResponse struct {
	Name        string    `json:"name"`
	Symbol      string    `json:"symbol"`
	Decimals    uint8     `json:"decimals"`
	TotalSupply math.Uint `json:"total_supply"`
}

// RegistryQueryMsg is the subset of pair registry queries used by the router.
type RegistryQueryMsg struct {
	Pair *RegistryPairQuery `json:"pair,omitempty"`
}

// RegistryPairQuery looks up the pair of two assets.
type RegistryPairQuery struct {
	AssetInfos [2]AssetInfo `json:"asset_infos"`
}

// NewWasmExecuteMsg returns a message executing contractAddr with msg and the attached funds.
func NewWasmExecuteMsg(contractAddr string, msg []byte, funds ...wasmvmtypes.Coin) wasmvmtypes.CosmosMsg {
	if funds == nil {
		funds = []wasmvmtypes.Coin{}
	}

	return wasmvmtypes.CosmosMsg{
		Wasm: &wasmvmtypes.WasmMsg{
			Execute: &wasmvmtypes.ExecuteMsg{
				ContractAddr: contractAddr,
				Msg:          msg,
				Funds:        funds,
			},
		},
	}
}
