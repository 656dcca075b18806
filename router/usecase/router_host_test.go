package usecase_test

import (
	"context"

	"cosmossdk.io/math"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/prismswap/swaprouter/domain"
	"github.com/prismswap/swaprouter/domain/json"
	"github.com/prismswap/swaprouter/router/usecase/routertesting"
)

var (
	uusdOffer    = wasmvmtypes.Coin{Denom: routertesting.UUSD, Amount: "1000000"}
	userUUSDMint = math.NewUint(2_000_000)

	// uusd -> uluna -> PRISM -> xPRISM through three pools.
	threePoolRoute = []domain.SwapOperation{
		domain.NewPoolSwapOperation(routertesting.USD, routertesting.LUNA),
		domain.NewPoolSwapOperation(routertesting.LUNA, routertesting.PRISM),
		domain.NewPoolSwapOperation(routertesting.PRISM, routertesting.XPRISM),
	}
)

type balanceSnapshot map[string]map[domain.AssetInfo]string

// snapshotBalances captures the balances of every account the default host touches.
func (s *RouterTestSuite) snapshotBalances() balanceSnapshot {
	holders := []string{
		routertesting.User,
		routertesting.Recipient,
		routertesting.RouterAddr,
		routertesting.LunaUSDPairAddr,
		routertesting.LunaPrismPairAddr,
		routertesting.PrismXPrismAddr,
	}
	assets := []domain.AssetInfo{routertesting.USD, routertesting.LUNA, routertesting.PRISM, routertesting.XPRISM, domain.NewNativeAssetInfo(routertesting.UKRW)}

	snapshot := balanceSnapshot{}
	for _, holder := range holders {
		snapshot[holder] = map[domain.AssetInfo]string{}
		for _, asset := range assets {
			snapshot[holder][asset] = s.Host.Balance(holder, asset).String()
		}
	}
	return snapshot
}

func (s *RouterTestSuite) TestHost_PoolRoute() {
	s.SetupDefaultHost()
	s.Host.Mint(routertesting.User, routertesting.USD, userUUSDMint)

	minimumReceive := math.NewUint(998_997)
	to := routertesting.Recipient

	err := s.Host.Execute(context.Background(), routertesting.User, []wasmvmtypes.Coin{uusdOffer}, domain.ExecuteMsg{
		ExecuteSwapOperations: &domain.ExecuteSwapOperationsMsg{
			Operations:     threePoolRoute,
			MinimumReceive: &minimumReceive,
			To:             &to,
		},
	})
	s.Require().NoError(err)

	// The user pays the tax on the attached funds.
	s.Require().Equal("999000", s.Host.Balance(routertesting.User, routertesting.USD).String())

	// 1_000_000 uusd less the 1000 tax reaches the first pool, and every pool keeps one unit.
	s.Require().Equal("998997", s.Host.Balance(routertesting.Recipient, routertesting.XPRISM).String())

	// Only rounding dust of the taxed offer is left on the router.
	s.Require().Equal("1", s.Host.Balance(routertesting.RouterAddr, routertesting.USD).String())
	s.Require().True(s.Host.Balance(routertesting.RouterAddr, routertesting.LUNA).IsZero())
	s.Require().True(s.Host.Balance(routertesting.RouterAddr, routertesting.PRISM).IsZero())
	s.Require().True(s.Host.Balance(routertesting.RouterAddr, routertesting.XPRISM).IsZero())

	s.Require().Equal([]string{
		"router:execute_swap_operations",
		"router:execute_swap_operation",
		"pair:swap",
		"router:execute_swap_operation",
		"pair:swap",
		"router:execute_swap_operation",
		"token:send",
		"pair:swap",
		"router:assert_minimum_receive",
	}, s.Host.Trace())
}

func (s *RouterTestSuite) TestHost_MinimumReceiveRollsBack() {
	s.SetupDefaultHost()
	s.Host.Mint(routertesting.User, routertesting.USD, userUUSDMint)

	before := s.snapshotBalances()

	minimumReceive := math.NewUint(998_998)
	err := s.Host.Execute(context.Background(), routertesting.User, []wasmvmtypes.Coin{uusdOffer}, domain.ExecuteMsg{
		ExecuteSwapOperations: &domain.ExecuteSwapOperationsMsg{
			Operations:     threePoolRoute,
			MinimumReceive: &minimumReceive,
		},
	})

	var assertionErr domain.MinimumReceiveAssertionError
	s.Require().ErrorAs(err, &assertionErr)
	s.Require().Equal("998997", assertionErr.SwapAmount.String())

	// Every hop ran before the assertion failed and all of it was reverted.
	s.Require().Equal("router:assert_minimum_receive", s.Host.Trace()[len(s.Host.Trace())-1])
	s.Require().Equal(before, s.snapshotBalances())
}

func (s *RouterTestSuite) TestHost_MarketRoute() {
	s.SetupDefaultHost()
	s.Host.Mint(routertesting.User, routertesting.USD, userUUSDMint)

	to := routertesting.Recipient
	err := s.Host.Execute(context.Background(), routertesting.User, []wasmvmtypes.Coin{uusdOffer}, domain.ExecuteMsg{
		ExecuteSwapOperations: &domain.ExecuteSwapOperationsMsg{
			Operations: []domain.SwapOperation{domain.NewNativeSwapOperation(routertesting.UUSD, routertesting.UKRW)},
			To:         &to,
		},
	})
	s.Require().NoError(err)

	// The swap-send offer is the router's balance less its tax: 999_000 uusd at 1200 ukrw.
	s.Require().Equal("1198800000", s.Host.Balance(routertesting.Recipient, domain.NewNativeAssetInfo(routertesting.UKRW)).String())
	s.Require().Equal("1", s.Host.Balance(routertesting.RouterAddr, routertesting.USD).String())

	s.Require().Equal([]string{
		"router:execute_swap_operations",
		"router:execute_swap_operation",
		"market:swap_send",
	}, s.Host.Trace())
}

func (s *RouterTestSuite) TestHost_MarketThenPoolRoute() {
	s.SetupDefaultHost()
	s.Host.Mint(routertesting.User, domain.NewNativeAssetInfo(routertesting.UKRW), math.NewUint(2_000_000_000))

	// An intermediate market hop leaves the proceeds on the router, untaxed.
	err := s.Host.Execute(context.Background(), routertesting.User, []wasmvmtypes.Coin{{Denom: routertesting.UKRW, Amount: "1200000000"}}, domain.ExecuteMsg{
		ExecuteSwapOperations: &domain.ExecuteSwapOperationsMsg{
			Operations: []domain.SwapOperation{
				domain.NewNativeSwapOperation(routertesting.UKRW, routertesting.UUSD),
				domain.NewPoolSwapOperation(routertesting.USD, routertesting.LUNA),
			},
		},
	})
	s.Require().NoError(err)

	s.Require().Equal([]string{
		"router:execute_swap_operations",
		"router:execute_swap_operation",
		"market:swap",
		"router:execute_swap_operation",
		"pair:swap",
	}, s.Host.Trace())

	s.Require().False(s.Host.Balance(routertesting.User, routertesting.LUNA).IsZero())
	s.Require().True(s.Host.Balance(routertesting.RouterAddr, domain.NewNativeAssetInfo(routertesting.UKRW)).IsZero())
}

func (s *RouterTestSuite) TestHost_Cw20Route() {
	s.SetupDefaultHost()
	s.Host.Mint(routertesting.User, routertesting.PRISM, math.NewUint(1_000_000))

	hook, err := json.Marshal(domain.Cw20HookMsg{
		ExecuteSwapOperations: &domain.ExecuteSwapOperationsMsg{
			Operations: []domain.SwapOperation{
				domain.NewPoolSwapOperation(routertesting.PRISM, routertesting.LUNA),
				domain.NewPoolSwapOperation(routertesting.LUNA, routertesting.USD),
			},
		},
	})
	s.Require().NoError(err)

	send, err := json.Marshal(domain.Cw20ExecuteMsg{
		Send: &domain.Cw20SendMsg{
			Contract: routertesting.RouterAddr,
			Amount:   math.NewUint(1_000_000),
			Msg:      hook,
		},
	})
	s.Require().NoError(err)

	err = s.Host.Dispatch(context.Background(), routertesting.User, domain.NewWasmExecuteMsg(routertesting.PrismTokenAddr, send))
	s.Require().NoError(err)

	// The token sender gets the proceeds. uluna is tax exempt so nothing is lost between hops.
	s.Require().True(s.Host.Balance(routertesting.User, routertesting.PRISM).IsZero())
	s.Require().Equal("999998", s.Host.Balance(routertesting.User, routertesting.USD).String())

	s.Require().Equal([]string{
		"token:send",
		"router:receive",
		"router:execute_swap_operation",
		"token:send",
		"pair:swap",
		"router:execute_swap_operation",
		"pair:swap",
	}, s.Host.Trace())
}

func (s *RouterTestSuite) TestHost_DirectHopIsRejected() {
	s.SetupDefaultHost()
	s.Host.Mint(routertesting.User, routertesting.USD, userUUSDMint)
	before := s.snapshotBalances()

	err := s.Host.Execute(context.Background(), routertesting.User, []wasmvmtypes.Coin{uusdOffer}, domain.ExecuteMsg{
		ExecuteSwapOperation: &domain.ExecuteSwapOperationMsg{
			Operation: domain.NewPoolSwapOperation(routertesting.USD, routertesting.LUNA),
		},
	})
	s.Require().ErrorIs(err, domain.ErrUnauthorized)

	// The attached funds are returned.
	s.Require().Equal(before, s.snapshotBalances())
}

func (s *RouterTestSuite) TestHost_MaxSwapOperations() {
	s.SetupHost(domain.RouterConfig{MaxSwapOperations: 2})
	s.Host.Mint(routertesting.User, routertesting.USD, userUUSDMint)

	err := s.Host.Execute(context.Background(), routertesting.User, []wasmvmtypes.Coin{uusdOffer}, domain.ExecuteMsg{
		ExecuteSwapOperations: &domain.ExecuteSwapOperationsMsg{Operations: threePoolRoute},
	})
	s.Require().ErrorIs(err, domain.MaxSwapOperationsExceededError{Count: 3, Max: 2})

	err = s.Host.Execute(context.Background(), routertesting.User, []wasmvmtypes.Coin{uusdOffer}, domain.ExecuteMsg{
		ExecuteSwapOperations: &domain.ExecuteSwapOperationsMsg{Operations: threePoolRoute[:2]},
	})
	s.Require().NoError(err)
	s.Require().False(s.Host.Balance(routertesting.User, routertesting.PRISM).IsZero())
}

func (s *RouterTestSuite) TestHost_LPTokenSymbol() {
	s.SetupDefaultHost()

	symbol, err := s.Router.GetLPTokenSymbol(context.Background(), [2]domain.AssetInfo{routertesting.LUNA, routertesting.XPRISM})
	s.Require().NoError(err)
	s.Require().Equal("ULUNA-XPRISM-LP", symbol)

	pairInfo, pools, err := s.Router.GetPair(context.Background(), [2]domain.AssetInfo{routertesting.PRISM, routertesting.LUNA})
	s.Require().NoError(err)
	s.Require().Equal(routertesting.LunaPrismPairAddr, pairInfo.ContractAddr)
	s.Require().Equal(routertesting.DefaultPoolAmount.String(), pools[0].Amount.String())
}
