package usecase

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
	"go.uber.org/zap"

	"github.com/prismswap/swaprouter/domain"
	"github.com/prismswap/swaprouter/domain/json"
)

// swapRoute is an ordered sequence of hops where each hop offers what the previous one asked.
type swapRoute []domain.SwapOperation

// validate checks the route length and that every hop chains into the next.
func (route swapRoute) validate(maxOperations int) error {
	if len(route) == 0 {
		return domain.ErrNoSwapOperations
	}
	if len(route) > maxOperations {
		return domain.MaxSwapOperationsExceededError{Count: len(route), Max: maxOperations}
	}

	for i, operation := range route {
		if err := operation.Validate(); err != nil {
			return err
		}
		if i == 0 {
			continue
		}
		prevAsk := route[i-1].AskAssetInfo()
		if offer := operation.OfferAssetInfo(); !offer.Equal(prevAsk) {
			return domain.NonChainedSwapOperationsError{Index: i, Expected: prevAsk, Actual: offer}
		}
	}

	return nil
}

// askAssetInfo returns the asset the route ends in.
func (route swapRoute) askAssetInfo() domain.AssetInfo {
	return route[len(route)-1].AskAssetInfo()
}

// hops returns one self-call per operation. Only the last one carries the recipient.
func (route swapRoute) hops(contractAddr string, recipient string) ([]wasmvmtypes.CosmosMsg, error) {
	msgs := make([]wasmvmtypes.CosmosMsg, 0, len(route))
	for i, operation := range route {
		var to *string
		if i == len(route)-1 {
			to = &recipient
		}

		msg, err := domain.NewSelfCallMsg(contractAddr, domain.ExecuteMsg{
			ExecuteSwapOperation: &domain.ExecuteSwapOperationMsg{
				Operation: operation,
				To:        to,
			},
		})
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

// ExecuteSwapOperations implements mvc.RouterUsecase.
func (r *routerUseCaseImpl) ExecuteSwapOperations(ctx context.Context, env wasmvmtypes.Env, sender string, msg domain.ExecuteSwapOperationsMsg) (domain.Response, error) {
	route := swapRoute(msg.Operations)
	if err := route.validate(r.config.MaxSwapOperations); err != nil {
		return domain.Response{}, err
	}

	recipient := sender
	if msg.To != nil {
		validated, err := domain.ValidateLowercaseAddress(r.addressValidator, *msg.To)
		if err != nil {
			return domain.Response{}, err
		}
		recipient = validated
	}

	msgs, err := route.hops(env.Contract.Address, recipient)
	if err != nil {
		return domain.Response{}, err
	}

	if msg.MinimumReceive != nil {
		targetAssetInfo := route.askAssetInfo()

		prevBalance, err := targetAssetInfo.QueryBalance(ctx, r.querier, recipient)
		if err != nil {
			return domain.Response{}, err
		}

		assertMsg, err := domain.NewSelfCallMsg(env.Contract.Address, domain.ExecuteMsg{
			AssertMinimumReceive: &domain.AssertMinimumReceiveMsg{
				AssetInfo:      targetAssetInfo,
				PrevBalance:    prevBalance,
				MinimumReceive: *msg.MinimumReceive,
				Receiver:       recipient,
			},
		})
		if err != nil {
			return domain.Response{}, err
		}
		msgs = append(msgs, assertMsg)
	}

	domain.RouterRouteLengthHistogram.Observe(float64(len(route)))

	r.logger.Debug("executing swap operations",
		zap.Int("hops", len(route)),
		zap.String("sender", sender),
		zap.String("recipient", recipient),
	)

	return domain.NewResponse().
		AddMessages(msgs...).
		AddAttribute("action", "execute_swap_operations").
		AddAttribute("hops", strconv.Itoa(len(route))).
		AddAttribute("recipient", recipient), nil
}

// receiveCw20 handles the CW20 receive hook. The token sender becomes the route's sender,
// and so the default recipient.
func (r *routerUseCaseImpl) receiveCw20(ctx context.Context, env wasmvmtypes.Env, cw20Msg domain.Cw20ReceiveMsg) (domain.Response, error) {
	var hookMsg domain.Cw20HookMsg
	if err := json.Unmarshal(cw20Msg.Msg, &hookMsg); err != nil {
		return domain.Response{}, err
	}

	if hookMsg.ExecuteSwapOperations == nil {
		return domain.Response{}, domain.ErrInvalidHookMsg
	}

	return r.ExecuteSwapOperations(ctx, env, cw20Msg.Sender, *hookMsg.ExecuteSwapOperations)
}

// AssertMinimumReceive implements mvc.RouterUsecase.
func (r *routerUseCaseImpl) AssertMinimumReceive(ctx context.Context, msg domain.AssertMinimumReceiveMsg) (domain.Response, error) {
	receiver, err := domain.ValidateLowercaseAddress(r.addressValidator, msg.Receiver)
	if err != nil {
		return domain.Response{}, err
	}

	balance, err := msg.AssetInfo.QueryBalance(ctx, r.querier, receiver)
	if err != nil {
		return domain.Response{}, err
	}

	swapAmount := math.ZeroUint()
	if balance.GT(msg.PrevBalance) {
		swapAmount = balance.Sub(msg.PrevBalance)
	}

	if swapAmount.LT(msg.MinimumReceive) {
		return domain.Response{}, domain.MinimumReceiveAssertionError{
			MinimumReceive: msg.MinimumReceive,
			SwapAmount:     swapAmount,
		}
	}

	return domain.NewResponse().AddAttribute("action", "assert_minimum_receive"), nil
}
