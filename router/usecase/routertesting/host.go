package routertesting

import (
	"context"
	"fmt"
	"sync"

	"cosmossdk.io/math"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/prismswap/swaprouter/domain"
	"github.com/prismswap/swaprouter/domain/json"
	"github.com/prismswap/swaprouter/domain/mvc"
)

// Host is an in-memory ledger that executes the router the way the chain would.
// Messages returned by an execution are dispatched depth-first: the messages produced by a
// dispatched message run before its next sibling. Any failure rolls back every balance change
// made since the top-level call.
//
// Pairs are constant product pools without commission. Tax is charged on native funds attached
// to contract calls and on the offer coin of market swap-sends.
type Host struct {
	RouterAddr   string
	RegistryAddr string
	TaxPolicy    domain.TaxPolicy

	router mvc.RouterUsecase

	mu           sync.Mutex
	balances     map[string]map[domain.AssetInfo]math.Uint
	pairs        map[pairKey]domain.PairInfo
	pairByAddr   map[string]domain.PairInfo
	tokenSymbols map[string]string
	marketRates  map[[2]string]osmomath.Dec
	trace        []string
}

var (
	_ domain.Querier          = &Host{}
	_ domain.AddressValidator = &Host{}
)

type pairKey [2]domain.AssetInfo

func newPairKey(a, b domain.AssetInfo) pairKey {
	if a.String() > b.String() {
		a, b = b, a
	}
	return pairKey{a, b}
}

// NewHost returns an empty ledger. SetRouter must be called before executing.
func NewHost(routerAddr, registryAddr string, taxPolicy domain.TaxPolicy) *Host {
	return &Host{
		RouterAddr:   routerAddr,
		RegistryAddr: registryAddr,
		TaxPolicy:    taxPolicy,
		balances:     map[string]map[domain.AssetInfo]math.Uint{},
		pairs:        map[pairKey]domain.PairInfo{},
		pairByAddr:   map[string]domain.PairInfo{},
		tokenSymbols: map[string]string{},
		marketRates:  map[[2]string]osmomath.Dec{},
	}
}

// SetRouter sets the router executed for calls to RouterAddr.
func (h *Host) SetRouter(router mvc.RouterUsecase) {
	h.router = router
}

// Mint credits holder with amount of the asset.
func (h *Host) Mint(holder string, assetInfo domain.AssetInfo, amount math.Uint) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.credit(holder, assetInfo, amount)
}

// Balance returns the holder's balance of the asset.
func (h *Host) Balance(holder string, assetInfo domain.AssetInfo) math.Uint {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.balanceOf(holder, assetInfo)
}

// AddToken registers a CW20 token contract.
func (h *Host) AddToken(contractAddr, symbol string) domain.AssetInfo {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tokenSymbols[contractAddr] = symbol
	return domain.NewTokenAssetInfo(contractAddr)
}

// AddPair registers a pool of two assets in the registry and funds it.
func (h *Host) AddPair(contractAddr string, a, b domain.Asset) domain.PairInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	pairInfo := domain.PairInfo{
		AssetInfos:     [2]domain.AssetInfo{a.Info, b.Info},
		ContractAddr:   contractAddr,
		LiquidityToken: contractAddr + "lp",
	}
	h.pairs[newPairKey(a.Info, b.Info)] = pairInfo
	h.pairByAddr[contractAddr] = pairInfo

	h.credit(contractAddr, a.Info, a.Amount)
	h.credit(contractAddr, b.Info, b.Amount)
	return pairInfo
}

// SetMarketRate sets how many ask units the market module pays per offer unit.
func (h *Host) SetMarketRate(offerDenom, askDenom string, rate osmomath.Dec) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.marketRates[[2]string{offerDenom, askDenom}] = rate
}

// Trace returns the dispatched calls of the last execution, in order.
func (h *Host) Trace() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.trace...)
}

// Execute runs msg against the router as sender with funds attached, then dispatches every
// resulting message. All balance changes are reverted if any step fails.
func (h *Host) Execute(ctx context.Context, sender string, funds []wasmvmtypes.Coin, msg domain.ExecuteMsg) error {
	bz, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return h.Dispatch(ctx, sender, domain.NewWasmExecuteMsg(h.RouterAddr, bz, funds...))
}

// Dispatch runs a single message sent by sender along with everything it produces.
func (h *Host) Dispatch(ctx context.Context, sender string, msg wasmvmtypes.CosmosMsg) error {
	h.mu.Lock()
	snapshot := h.snapshot()
	h.trace = nil
	h.mu.Unlock()

	stack := []producedMsg{{sender: sender, msg: msg}}
	for len(stack) > 0 {
		next := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		produced, err := h.dispatchOne(ctx, next.sender, next.msg)
		if err != nil {
			h.mu.Lock()
			h.balances = snapshot
			h.mu.Unlock()
			return err
		}

		// Reverse push so the first produced message runs next.
		for i := len(produced) - 1; i >= 0; i-- {
			stack = append(stack, produced[i])
		}
	}

	return nil
}

type producedMsg struct {
	sender string
	msg    wasmvmtypes.CosmosMsg
}

func (h *Host) dispatchOne(ctx context.Context, sender string, msg wasmvmtypes.CosmosMsg) ([]producedMsg, error) {
	switch {
	case msg.Wasm != nil && msg.Wasm.Execute != nil:
		return h.executeContract(ctx, sender, *msg.Wasm.Execute)
	case msg.Custom != nil:
		return nil, h.executeMarket(sender, msg.Custom)
	default:
		return nil, fmt.Errorf("unsupported message")
	}
}

func (h *Host) executeContract(ctx context.Context, sender string, execute wasmvmtypes.ExecuteMsg) ([]producedMsg, error) {
	h.mu.Lock()
	for _, coin := range execute.Funds {
		amount, err := math.ParseUint(coin.Amount)
		if err != nil {
			h.mu.Unlock()
			return nil, err
		}
		if err := h.sendNative(sender, execute.ContractAddr, coin.Denom, amount); err != nil {
			h.mu.Unlock()
			return nil, err
		}
	}
	_, isToken := h.tokenSymbols[execute.ContractAddr]
	_, isPair := h.pairByAddr[execute.ContractAddr]
	h.mu.Unlock()

	info := wasmvmtypes.MessageInfo{Sender: sender, Funds: execute.Funds}

	switch {
	case execute.ContractAddr == h.RouterAddr:
		return h.executeRouter(ctx, info, execute.Msg)
	case isToken:
		return h.executeToken(ctx, sender, execute.ContractAddr, execute.Msg)
	case isPair:
		return nil, h.executePair(execute.ContractAddr, info, execute.Msg)
	default:
		return nil, fmt.Errorf("no contract at %s", execute.ContractAddr)
	}
}

func (h *Host) executeRouter(ctx context.Context, info wasmvmtypes.MessageInfo, msgBz []byte) ([]producedMsg, error) {
	var msg domain.ExecuteMsg
	if err := json.Unmarshal(msgBz, &msg); err != nil {
		return nil, err
	}

	h.record("router:%s", routerAction(msg))

	env := wasmvmtypes.Env{
		Block:    wasmvmtypes.BlockInfo{Height: 1, ChainID: "localterra"},
		Contract: wasmvmtypes.ContractInfo{Address: h.RouterAddr},
	}

	response, err := h.router.Execute(ctx, env, info, msg)
	if err != nil {
		return nil, err
	}

	produced := make([]producedMsg, 0, len(response.Messages))
	for _, m := range response.Messages {
		produced = append(produced, producedMsg{sender: h.RouterAddr, msg: m})
	}
	return produced, nil
}

func routerAction(msg domain.ExecuteMsg) string {
	switch {
	case msg.Receive != nil:
		return "receive"
	case msg.ExecuteSwapOperations != nil:
		return "execute_swap_operations"
	case msg.ExecuteSwapOperation != nil:
		return "execute_swap_operation"
	case msg.AssertMinimumReceive != nil:
		return "assert_minimum_receive"
	default:
		return "unknown"
	}
}

func (h *Host) executeToken(ctx context.Context, sender, tokenAddr string, msgBz []byte) ([]producedMsg, error) {
	var msg domain.Cw20ExecuteMsg
	if err := json.Unmarshal(msgBz, &msg); err != nil {
		return nil, err
	}

	tokenInfo := domain.NewTokenAssetInfo(tokenAddr)

	switch {
	case msg.Transfer != nil:
		h.record("token:transfer")
		h.mu.Lock()
		defer h.mu.Unlock()
		return nil, h.move(sender, msg.Transfer.Recipient, tokenInfo, msg.Transfer.Amount)
	case msg.Send != nil:
		h.record("token:send")
		h.mu.Lock()
		err := h.move(sender, msg.Send.Contract, tokenInfo, msg.Send.Amount)
		h.mu.Unlock()
		if err != nil {
			return nil, err
		}

		hook, err := json.Marshal(domain.ExecuteMsg{
			Receive: &domain.Cw20ReceiveMsg{
				Sender: sender,
				Amount: msg.Send.Amount,
				Msg:    msg.Send.Msg,
			},
		})
		if err != nil {
			return nil, err
		}

		// The receive hook runs as a call from the token contract.
		return []producedMsg{{sender: tokenAddr, msg: domain.NewWasmExecuteMsg(msg.Send.Contract, hook)}}, nil
	default:
		return nil, fmt.Errorf("unsupported cw20 message")
	}
}

func (h *Host) executePair(pairAddr string, info wasmvmtypes.MessageInfo, msgBz []byte) error {
	var (
		swap   *domain.PairSwapMsg
		sender = info.Sender
	)

	var routerMsg domain.ExecuteMsg
	if err := json.Unmarshal(msgBz, &routerMsg); err == nil && routerMsg.Receive != nil {
		var pairMsg domain.PairExecuteMsg
		if err := json.Unmarshal(routerMsg.Receive.Msg, &pairMsg); err != nil {
			return err
		}
		if pairMsg.Swap == nil {
			return fmt.Errorf("unsupported pair hook")
		}

		offer := pairMsg.Swap.OfferAsset
		if !offer.Info.Equal(domain.NewTokenAssetInfo(info.Sender)) || !offer.Amount.Equal(routerMsg.Receive.Amount) {
			return fmt.Errorf("cw20 offer %s does not match the received tokens", offer)
		}
		swap, sender = pairMsg.Swap, routerMsg.Receive.Sender
	} else {
		var pairMsg domain.PairExecuteMsg
		if err := json.Unmarshal(msgBz, &pairMsg); err != nil {
			return err
		}
		if pairMsg.Swap == nil {
			return fmt.Errorf("unsupported pair message")
		}
		if !pairMsg.Swap.OfferAsset.Info.IsNative() {
			return fmt.Errorf("cw20 offers must be sent through the token contract")
		}
		if err := pairMsg.Swap.OfferAsset.AssertFundsMatch(info.Funds); err != nil {
			return err
		}
		swap = pairMsg.Swap
	}

	h.record("pair:swap")

	h.mu.Lock()
	defer h.mu.Unlock()

	pairInfo := h.pairByAddr[pairAddr]
	offer := swap.OfferAsset

	var askInfo domain.AssetInfo
	switch {
	case offer.Info.Equal(pairInfo.AssetInfos[0]):
		askInfo = pairInfo.AssetInfos[1]
	case offer.Info.Equal(pairInfo.AssetInfos[1]):
		askInfo = pairInfo.AssetInfos[0]
	default:
		return fmt.Errorf("asset %s is not in pair %s", offer.Info, pairAddr)
	}

	// The offer already landed on the pair.
	offerPool, err := domain.CheckedSub(h.balanceOf(pairAddr, offer.Info), offer.Amount)
	if err != nil {
		return err
	}
	askPool := h.balanceOf(pairAddr, askInfo)

	returnAmount := askPool.Mul(offer.Amount).Quo(offerPool.Add(offer.Amount))

	recipient := sender
	if swap.To != nil {
		recipient = *swap.To
	}

	return h.move(pairAddr, recipient, askInfo, returnAmount)
}

func (h *Host) executeMarket(sender string, custom []byte) error {
	var wrapper domain.TerraMsgWrapper
	if err := json.Unmarshal(custom, &wrapper); err != nil {
		return err
	}
	if wrapper.Route != domain.MarketRoute {
		return fmt.Errorf("unsupported route %s", wrapper.Route)
	}

	var (
		offerCoin wasmvmtypes.Coin
		askDenom  string
		recipient = sender
		send      bool
	)
	switch {
	case wrapper.MsgData.Swap != nil:
		h.record("market:swap")
		offerCoin, askDenom = wrapper.MsgData.Swap.OfferCoin, wrapper.MsgData.Swap.AskDenom
	case wrapper.MsgData.SwapSend != nil:
		h.record("market:swap_send")
		offerCoin, askDenom = wrapper.MsgData.SwapSend.OfferCoin, wrapper.MsgData.SwapSend.AskDenom
		recipient, send = wrapper.MsgData.SwapSend.ToAddress, true
	default:
		return fmt.Errorf("unsupported market message")
	}

	offerAmount, err := math.ParseUint(offerCoin.Amount)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	rate, ok := h.marketRates[[2]string{offerCoin.Denom, askDenom}]
	if !ok {
		return fmt.Errorf("no market rate for %s to %s", offerCoin.Denom, askDenom)
	}

	offerInfo := domain.NewNativeAssetInfo(offerCoin.Denom)
	if send {
		if err := h.chargeTax(sender, offerCoin.Denom, offerAmount); err != nil {
			return err
		}
	}
	if err := h.burn(sender, offerInfo, offerAmount); err != nil {
		return err
	}

	askAmount := rate.MulInt(math.NewIntFromBigInt(offerAmount.BigInt())).TruncateInt()
	h.credit(recipient, domain.NewNativeAssetInfo(askDenom), math.NewUintFromBigInt(askAmount.BigInt()))
	return nil
}

// sendNative moves a native coin between accounts and charges the sender the transfer tax on top.
func (h *Host) sendNative(from, to, denom string, amount math.Uint) error {
	if err := h.chargeTax(from, denom, amount); err != nil {
		return err
	}
	return h.move(from, to, domain.NewNativeAssetInfo(denom), amount)
}

// chargeTax burns the tax on amount from the payer.
func (h *Host) chargeTax(payer, denom string, amount math.Uint) error {
	if _, ok := h.TaxPolicy.ExemptDenoms[denom]; ok {
		return nil
	}

	tax := math.NewUintFromBigInt(h.TaxPolicy.Rate.MulInt(math.NewIntFromBigInt(amount.BigInt())).TruncateInt().BigInt())
	if taxCap, ok := h.TaxPolicy.Caps[denom]; ok && tax.GT(taxCap) {
		tax = taxCap
	}

	return h.burn(payer, domain.NewNativeAssetInfo(denom), tax)
}

func (h *Host) move(from, to string, assetInfo domain.AssetInfo, amount math.Uint) error {
	if err := h.burn(from, assetInfo, amount); err != nil {
		return err
	}
	h.credit(to, assetInfo, amount)
	return nil
}

func (h *Host) burn(holder string, assetInfo domain.AssetInfo, amount math.Uint) error {
	remaining, err := domain.CheckedSub(h.balanceOf(holder, assetInfo), amount)
	if err != nil {
		return fmt.Errorf("insufficient %s balance of %s: %w", assetInfo, holder, err)
	}
	h.setBalance(holder, assetInfo, remaining)
	return nil
}

func (h *Host) credit(holder string, assetInfo domain.AssetInfo, amount math.Uint) {
	h.setBalance(holder, assetInfo, h.balanceOf(holder, assetInfo).Add(amount))
}

func (h *Host) balanceOf(holder string, assetInfo domain.AssetInfo) math.Uint {
	if amount, ok := h.balances[holder][assetInfo]; ok {
		return amount
	}
	return math.ZeroUint()
}

func (h *Host) setBalance(holder string, assetInfo domain.AssetInfo, amount math.Uint) {
	holdings, ok := h.balances[holder]
	if !ok {
		holdings = map[domain.AssetInfo]math.Uint{}
		h.balances[holder] = holdings
	}
	holdings[assetInfo] = amount
}

func (h *Host) snapshot() map[string]map[domain.AssetInfo]math.Uint {
	balances := make(map[string]map[domain.AssetInfo]math.Uint, len(h.balances))
	for holder, holdings := range h.balances {
		copied := make(map[domain.AssetInfo]math.Uint, len(holdings))
		for assetInfo, amount := range holdings {
			copied[assetInfo] = amount
		}
		balances[holder] = copied
	}
	return balances
}

func (h *Host) record(format string, args ...any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.trace = append(h.trace, fmt.Sprintf(format, args...))
}

// QueryBalance implements domain.BankQuerier.
func (h *Host) QueryBalance(_ context.Context, holder string, denom string) (math.Uint, error) {
	return h.Balance(holder, domain.NewNativeAssetInfo(denom)), nil
}

// QueryTokenBalance implements domain.TokenQuerier.
func (h *Host) QueryTokenBalance(_ context.Context, tokenAddr string, holder string) (math.Uint, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.tokenSymbols[tokenAddr]; !ok {
		return math.Uint{}, domain.QueryFailureError{Query: "token_balance", Err: fmt.Errorf("no token at %s", tokenAddr)}
	}
	return h.balanceOf(holder, domain.NewTokenAssetInfo(tokenAddr)), nil
}

// QueryTokenSymbol implements domain.TokenQuerier.
func (h *Host) QueryTokenSymbol(_ context.Context, tokenAddr string) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	symbol, ok := h.tokenSymbols[tokenAddr]
	if !ok {
		return "", domain.QueryFailureError{Query: "token_info", Err: fmt.Errorf("no token at %s", tokenAddr)}
	}
	return symbol, nil
}

// QueryPairInfo implements domain.RegistryQuerier.
func (h *Host) QueryPairInfo(_ context.Context, registryAddr string, assetInfos [2]domain.AssetInfo) (domain.PairInfo, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if registryAddr != h.RegistryAddr {
		return domain.PairInfo{}, domain.QueryFailureError{Query: "pair", Err: fmt.Errorf("no registry at %s", registryAddr)}
	}
	pairInfo, ok := h.pairs[newPairKey(assetInfos[0], assetInfos[1])]
	if !ok {
		return domain.PairInfo{}, domain.QueryFailureError{Query: "pair", Err: fmt.Errorf("no pair for %s and %s", assetInfos[0], assetInfos[1])}
	}
	return pairInfo, nil
}

// ComputeTax implements domain.TaxQuerier.
func (h *Host) ComputeTax(ctx context.Context, denom string, amount math.Uint) (math.Uint, error) {
	return h.TaxPolicy.ComputeTax(ctx, denom, amount)
}

// AddrValidate implements domain.AddressValidator. Any non-empty address is accepted.
func (h *Host) AddrValidate(addr string) (string, error) {
	if addr == "" {
		return "", domain.InvalidAddressError{Address: addr, Reason: "empty address"}
	}
	return addr, nil
}
