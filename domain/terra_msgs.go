package domain

import (
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/prismswap/swaprouter/domain/json"
)

// MarketRoute routes custom messages to the ledger's market (native exchange) module.
const MarketRoute = "market"

// TerraMsgWrapper is the custom message envelope understood by the ledger.
type TerraMsgWrapper struct {
	Route   string   `json:"route"`
	MsgData TerraMsg `json:"msg_data"`
}

// TerraMsg holds the market module messages.
type TerraMsg struct {
	Swap     *MarketSwapMsg     `json:"swap,omitempty"`
	SwapSend *MarketSwapSendMsg `json:"swap_send,omitempty"`
}

// MarketSwapMsg exchanges OfferCoin for AskDenom, leaving the proceeds with the sender.
type MarketSwapMsg struct {
	OfferCoin wasmvmtypes.Coin `json:"offer_coin"`
	AskDenom  string           `json:"ask_denom"`
}

// MarketSwapSendMsg exchanges OfferCoin for AskDenom and sends the proceeds to ToAddress.
type MarketSwapSendMsg struct {
	ToAddress string           `json:"to_address"`
	OfferCoin wasmvmtypes.Coin `json:"offer_coin"`
	AskDenom  string           `json:"ask_denom"`
}

// NewMarketSwapMsg returns a custom message swapping offerCoin in place.
func NewMarketSwapMsg(offerCoin wasmvmtypes.Coin, askDenom string) (wasmvmtypes.CosmosMsg, error) {
	return newMarketMsg(TerraMsg{
		Swap: &MarketSwapMsg{
			OfferCoin: offerCoin,
			AskDenom:  askDenom,
		},
	})
}

// NewMarketSwapSendMsg returns a custom message swapping offerCoin and sending the result to toAddress.
func NewMarketSwapSendMsg(toAddress string, offerCoin wasmvmtypes.Coin, askDenom string) (wasmvmtypes.CosmosMsg, error) {
	return newMarketMsg(TerraMsg{
		SwapSend: &MarketSwapSendMsg{
			ToAddress: toAddress,
			OfferCoin: offerCoin,
			AskDenom:  askDenom,
		},
	})
}

func newMarketMsg(msg TerraMsg) (wasmvmtypes.CosmosMsg, error) {
	bz, err := json.Marshal(TerraMsgWrapper{
		Route:   MarketRoute,
		MsgData: msg,
	})
	if err != nil {
		return wasmvmtypes.CosmosMsg{}, err
	}

	return wasmvmtypes.CosmosMsg{Custom: bz}, nil
}
