package http

import (
	"net/http"
	"time"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	deliveryhttp "github.com/prismswap/swaprouter/delivery/http"
	"github.com/prismswap/swaprouter/domain"
	"github.com/prismswap/swaprouter/domain/mvc"
	"github.com/prismswap/swaprouter/log"
	"github.com/prismswap/swaprouter/router/types"
)

// RouterHandler  represent the httphandler for the router
type RouterHandler struct {
	RUsecase        mvc.RouterUsecase
	ContractAddress string
	ChainID         string
	logger          log.Logger
}

// PairResponse is the pair registered for two assets together with its pool balances.
type PairResponse struct {
	Pair  domain.PairInfo `json:"pair"`
	Pools [2]domain.Asset `json:"pools"`
}

// LPTokenSymbolResponse wraps the liquidity token symbol of a pair.
type LPTokenSymbolResponse struct {
	Symbol string `json:"symbol"`
}

const routerResource = "/router"

func formatRouterResource(resource string) string {
	return routerResource + resource
}

// NewRouterHandler will initialize the /router resources endpoint
func NewRouterHandler(e *echo.Echo, us mvc.RouterUsecase, contractAddress, chainID string, logger log.Logger) {
	handler := &RouterHandler{
		RUsecase:        us,
		ContractAddress: contractAddress,
		ChainID:         chainID,
		logger:          logger,
	}
	e.POST(formatRouterResource("/execute"), handler.Execute)
	e.GET(formatRouterResource("/lp-symbol"), handler.GetLPTokenSymbol)
	e.GET(formatRouterResource("/pair"), handler.GetPair)
	e.GET(formatRouterResource("/config"), handler.GetConfig)
}

// @Summary Execute a router message
// @Description runs an execute message against the router as if sent by the given sender with the given funds
// and returns the messages and attributes the router emits.
// @ID post-router-execute
// @Accept  json
// @Produce  json
// @Param  request  body  types.ExecuteRequest  true  "Sender, attached funds and the execute message"
// @Success 200  {object}  domain.Response  "The router response"
// @Router /router/execute [post]
func (a *RouterHandler) Execute(c echo.Context) (err error) {
	ctx, span := deliveryhttp.Span(c)
	defer func() { deliveryhttp.RecordSpanError(ctx, span, err) }()

	var req types.ExecuteRequest
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	response, err := a.RUsecase.Execute(ctx, a.env(), req.MessageInfo(), req.Msg)
	if err != nil {
		requestPath, _ := domain.GetURLPathFromContext(ctx)
		a.logger.Debug("router execution failed", zap.String("path", requestPath), zap.String("sender", req.Sender), zap.Error(err))
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, response)
}

// @Summary LP token symbol
// @Description returns the liquidity token symbol of the pair formed by two assets.
// @ID get-router-lp-symbol
// @Produce  json
// @Param  assetInfos  query  string  true  "Two comma separated assets, e.g. native:uluna,cw20:terra1..."
// @Success 200  {object}  LPTokenSymbolResponse  "The liquidity token symbol"
// @Router /router/lp-symbol [get]
func (a *RouterHandler) GetLPTokenSymbol(c echo.Context) (err error) {
	ctx, span := deliveryhttp.Span(c)
	defer func() { deliveryhttp.RecordSpanError(ctx, span, err) }()

	var req types.AssetPairRequest
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	symbol, err := a.RUsecase.GetLPTokenSymbol(ctx, req.AssetInfos)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, LPTokenSymbolResponse{Symbol: symbol})
}

// @Summary Pair
// @Description returns the pair registered for two assets and the balances of its pools.
// @ID get-router-pair
// @Produce  json
// @Param  assetInfos  query  string  true  "Two comma separated assets, e.g. native:uluna,cw20:terra1..."
// @Success 200  {object}  PairResponse  "The pair and its pools"
// @Router /router/pair [get]
func (a *RouterHandler) GetPair(c echo.Context) (err error) {
	ctx, span := deliveryhttp.Span(c)
	defer func() { deliveryhttp.RecordSpanError(ctx, span, err) }()

	var req types.AssetPairRequest
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	pair, pools, err := a.RUsecase.GetPair(ctx, req.AssetInfos)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, PairResponse{Pair: pair, Pools: pools})
}

// @Summary Router config
// @Description returns the stored router contract config.
// @ID get-router-config
// @Produce  json
// @Success 200  {object}  domain.ContractConfig  "The contract config"
// @Router /router/config [get]
func (a *RouterHandler) GetConfig(c echo.Context) (err error) {
	ctx, span := deliveryhttp.Span(c)
	defer func() { deliveryhttp.RecordSpanError(ctx, span, err) }()

	config, err := a.RUsecase.GetConfig(ctx)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, config)
}

// env returns the environment the router executes in. Executions are not tied to a block.
func (a *RouterHandler) env() wasmvmtypes.Env {
	return wasmvmtypes.Env{
		Block: wasmvmtypes.BlockInfo{
			Time:    wasmvmtypes.Uint64(time.Now().UnixNano()),
			ChainID: a.ChainID,
		},
		Contract: wasmvmtypes.ContractInfo{Address: a.ContractAddress},
	}
}
