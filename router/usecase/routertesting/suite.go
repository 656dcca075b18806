package routertesting

import (
	"context"

	"cosmossdk.io/math"
	dbm "github.com/cometbft/cometbft-db"
	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/stretchr/testify/suite"

	"github.com/prismswap/swaprouter/domain"
	"github.com/prismswap/swaprouter/domain/mvc"
	"github.com/prismswap/swaprouter/log"
	routerrepo "github.com/prismswap/swaprouter/router/repository"
	"github.com/prismswap/swaprouter/router/usecase"
)

type RouterTestHelper struct {
	suite.Suite

	Host   *Host
	Router mvc.RouterUsecase
	Config routerrepo.ConfigRepository
}

const (
	RouterAddr   = "terra1router"
	RegistryAddr = "terra1registry"
	User         = "terra1user"
	Recipient    = "terra1recipient"

	ULUNA = "uluna"
	UUSD  = "uusd"
	UKRW  = "ukrw"

	PrismTokenAddr  = "terra1prism"
	XPrismTokenAddr = "terra1xprism"

	LunaUSDPairAddr   = "terra1pairlunausd"
	LunaPrismPairAddr = "terra1pairlunaprism"
	PrismXPrismAddr   = "terra1pairprismxprism"
)

var (
	DefaultTaxConfig = domain.TaxConfig{
		Rate:         "0.001",
		Caps:         map[string]string{UUSD: "1000000", UKRW: "1000000"},
		ExemptDenoms: []string{ULUNA},
	}

	// Pools start balanced so a small offer returns roughly the same amount.
	DefaultPoolAmount = math.NewUint(1_000_000_000_000)

	DefaultUSDToKRWRate  = osmomath.MustNewDecFromStr("1200")
	DefaultKRWToUSDRate  = osmomath.MustNewDecFromStr("0.000833333333333333")
	DefaultUSDToLunaRate = osmomath.MustNewDecFromStr("0.01")

	LUNA   = domain.NewNativeAssetInfo(ULUNA)
	USD    = domain.NewNativeAssetInfo(UUSD)
	PRISM  = domain.NewTokenAssetInfo(PrismTokenAddr)
	XPRISM = domain.NewTokenAssetInfo(XPrismTokenAddr)
)

// SetupDefaultHost creates a ledger with the router deployed and the following markets:
// - uusd <> ukrw and uusd -> uluna on the market module
// - uluna/uusd, uluna/PRISM and PRISM/xPRISM pools
func (s *RouterTestHelper) SetupDefaultHost() {
	s.SetupHost(domain.RouterConfig{MaxSwapOperations: domain.DefaultMaxSwapOperations})
}

// SetupHost is SetupDefaultHost with a custom router config.
func (s *RouterTestHelper) SetupHost(routerConfig domain.RouterConfig) {
	taxPolicy, err := domain.NewTaxPolicy(DefaultTaxConfig)
	s.Require().NoError(err)

	host := NewHost(RouterAddr, RegistryAddr, taxPolicy)

	host.AddToken(PrismTokenAddr, "PRISM")
	host.AddToken(XPrismTokenAddr, "xPRISM")

	host.AddPair(LunaUSDPairAddr, domain.NewAsset(LUNA, DefaultPoolAmount), domain.NewAsset(USD, DefaultPoolAmount))
	host.AddPair(LunaPrismPairAddr, domain.NewAsset(LUNA, DefaultPoolAmount), domain.NewAsset(PRISM, DefaultPoolAmount))
	host.AddPair(PrismXPrismAddr, domain.NewAsset(PRISM, DefaultPoolAmount), domain.NewAsset(XPRISM, DefaultPoolAmount))

	host.SetMarketRate(UUSD, UKRW, DefaultUSDToKRWRate)
	host.SetMarketRate(UKRW, UUSD, DefaultKRWToUSDRate)
	host.SetMarketRate(UUSD, ULUNA, DefaultUSDToLunaRate)

	configRepository := routerrepo.New(dbm.NewMemDB())
	s.Require().NoError(configRepository.SaveConfig(context.Background(), domain.ContractConfig{RegistryAddress: RegistryAddr}))

	router := usecase.NewRouterUsecase(configRepository, host, host, routerConfig, &log.NoOpLogger{})
	host.SetRouter(router)

	s.Host = host
	s.Router = router
	s.Config = configRepository
}
