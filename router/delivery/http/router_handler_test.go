package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/prismswap/swaprouter/domain"
	"github.com/prismswap/swaprouter/domain/json"
	"github.com/prismswap/swaprouter/domain/mocks"
	"github.com/prismswap/swaprouter/log"
	routerdelivery "github.com/prismswap/swaprouter/router/delivery/http"
	"github.com/prismswap/swaprouter/router/usecase/routertesting"
)

type RouterHandlerSuite struct {
	routertesting.RouterTestHelper
}

const chainID = "localterra"

var errQueryFailed = errors.New("node unavailable")

func TestRouterHandlerSuite(t *testing.T) {
	suite.Run(t, new(RouterHandlerSuite))
}

func (s *RouterHandlerSuite) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func (s *RouterHandlerSuite) TestExecute() {
	const validBody = `{
		"sender": "terra1user",
		"funds": [{"denom": "uusd", "amount": "1000000"}],
		"msg": {"execute_swap_operations": {"operations": [{"native_swap": {"offer_denom": "uusd", "ask_denom": "ukrw"}}]}}
	}`

	testcases := []struct {
		name               string
		body               string
		usecase            *mocks.RouterUsecaseMock
		expectedStatusCode int
		expectedResponse   string
	}{
		{
			name: "valid request",
			body: validBody,
			usecase: &mocks.RouterUsecaseMock{
				ExecuteFunc: func(ctx context.Context, env wasmvmtypes.Env, info wasmvmtypes.MessageInfo, msg domain.ExecuteMsg) (domain.Response, error) {
					s.Require().Equal(routertesting.RouterAddr, env.Contract.Address)
					s.Require().Equal(chainID, env.Block.ChainID)
					s.Require().Equal(routertesting.User, info.Sender)
					s.Require().Equal(wasmvmtypes.Array[wasmvmtypes.Coin]{{Denom: "uusd", Amount: "1000000"}}, info.Funds)
					s.Require().NotNil(msg.ExecuteSwapOperations)

					response := domain.NewResponse()
					response.Attributes = append(response.Attributes, wasmvmtypes.EventAttribute{Key: "action", Value: "execute_swap_operations"})
					return response, nil
				},
			},
			expectedStatusCode: http.StatusOK,
			expectedResponse:   `{"messages":[],"attributes":[{"key":"action","value":"execute_swap_operations"}]}`,
		},
		{
			name:               "missing sender",
			body:               `{"msg": {"execute_swap_operations": {"operations": [{"native_swap": {"offer_denom": "uusd", "ask_denom": "ukrw"}}]}}}`,
			usecase:            &mocks.RouterUsecaseMock{},
			expectedStatusCode: http.StatusBadRequest,
			expectedResponse:   `{"message":"sender is required"}`,
		},
		{
			name: "unauthorized",
			body: `{"sender": "terra1user", "msg": {"execute_swap_operation": {"operation": {"native_swap": {"offer_denom": "uusd", "ask_denom": "ukrw"}}}}}`,
			usecase: &mocks.RouterUsecaseMock{
				ExecuteFunc: func(ctx context.Context, env wasmvmtypes.Env, info wasmvmtypes.MessageInfo, msg domain.ExecuteMsg) (domain.Response, error) {
					return domain.Response{}, domain.ErrUnauthorized
				},
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedResponse:   `{"message":"unauthorized"}`,
		},
	}

	for _, tc := range testcases {
		s.Run(tc.name, func() {
			c, rec := s.newContext(echo.POST, "/router/execute", tc.body)

			handler := routerdelivery.NewTestRouterHandler(tc.usecase, routertesting.RouterAddr, chainID)

			err := handler.Execute(c)
			s.Require().NoError(err)
			s.Require().Equal(tc.expectedStatusCode, rec.Code)
			s.Require().JSONEq(tc.expectedResponse, rec.Body.String())
		})
	}
}

func (s *RouterHandlerSuite) TestGetLPTokenSymbol() {
	testcases := []struct {
		name               string
		target             string
		usecase            *mocks.RouterUsecaseMock
		expectedStatusCode int
		expectedResponse   string
	}{
		{
			name:   "valid request",
			target: "/router/lp-symbol?assetInfos=native:uluna,cw20:terra1xprism",
			usecase: &mocks.RouterUsecaseMock{
				GetLPTokenSymbolFunc: func(ctx context.Context, assetInfos [2]domain.AssetInfo) (string, error) {
					s.Require().Equal([2]domain.AssetInfo{routertesting.LUNA, routertesting.XPRISM}, assetInfos)
					return "ULUNA-XPRISM-LP", nil
				},
			},
			expectedStatusCode: http.StatusOK,
			expectedResponse:   `{"symbol":"ULUNA-XPRISM-LP"}`,
		},
		{
			name:               "missing asset infos",
			target:             "/router/lp-symbol",
			usecase:            &mocks.RouterUsecaseMock{},
			expectedStatusCode: http.StatusBadRequest,
			expectedResponse:   `{"message":"assetInfos is required"}`,
		},
		{
			name:   "query failure",
			target: "/router/lp-symbol?assetInfos=native:uluna,cw20:terra1xprism",
			usecase: &mocks.RouterUsecaseMock{
				GetLPTokenSymbolFunc: func(ctx context.Context, assetInfos [2]domain.AssetInfo) (string, error) {
					return "", domain.QueryFailureError{Query: "token_info", Err: errQueryFailed}
				},
			},
			expectedStatusCode: http.StatusBadGateway,
		},
	}

	for _, tc := range testcases {
		s.Run(tc.name, func() {
			c, rec := s.newContext(echo.GET, tc.target, "")

			handler := routerdelivery.NewTestRouterHandler(tc.usecase, routertesting.RouterAddr, chainID)

			err := handler.GetLPTokenSymbol(c)
			s.Require().NoError(err)
			s.Require().Equal(tc.expectedStatusCode, rec.Code)
			if tc.expectedResponse != "" {
				s.Require().JSONEq(tc.expectedResponse, rec.Body.String())
			}
		})
	}
}

func (s *RouterHandlerSuite) TestGetConfig() {
	c, rec := s.newContext(echo.GET, "/router/config", "")

	handler := routerdelivery.NewTestRouterHandler(&mocks.RouterUsecaseMock{
		GetConfigFunc: func(ctx context.Context) (domain.ContractConfig, error) {
			return domain.ContractConfig{}, domain.ErrConfigNotFound
		},
	}, routertesting.RouterAddr, chainID)

	s.Require().NoError(handler.GetConfig(c))
	s.Require().Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterHandlerSuite) TestEnv() {
	handler := routerdelivery.NewTestRouterHandler(&mocks.RouterUsecaseMock{}, routertesting.RouterAddr, chainID)

	env := handler.Env()
	s.Require().Equal(routertesting.RouterAddr, env.Contract.Address)
	s.Require().Equal(chainID, env.Block.ChainID)
	s.Require().NotZero(env.Block.Time)
}

// TestRouterOverHost runs the handlers against a router backed by the in-memory ledger.
func (s *RouterHandlerSuite) TestRouterOverHost() {
	s.SetupDefaultHost()

	e := echo.New()
	routerdelivery.NewRouterHandler(e, s.Router, routertesting.RouterAddr, chainID, &log.NoOpLogger{})

	serve := func(method, target, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	s.Run("config", func() {
		rec := serve(echo.GET, "/router/config", "")
		s.Require().Equal(http.StatusOK, rec.Code)
		s.Require().JSONEq(`{"registry_address":"terra1registry"}`, rec.Body.String())
	})

	s.Run("lp symbol", func() {
		rec := serve(echo.GET, "/router/lp-symbol?assetInfos=native:uluna,cw20:terra1xprism", "")
		s.Require().Equal(http.StatusOK, rec.Code)
		s.Require().JSONEq(`{"symbol":"ULUNA-XPRISM-LP"}`, rec.Body.String())
	})

	s.Run("pair", func() {
		rec := serve(echo.GET, "/router/pair?assetInfos=cw20:terra1prism,native:uluna", "")
		s.Require().Equal(http.StatusOK, rec.Code)

		var response routerdelivery.PairResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Require().Equal(routertesting.LunaPrismPairAddr, response.Pair.ContractAddr)
		s.Require().Equal(routertesting.DefaultPoolAmount.String(), response.Pools[0].Amount.String())
		s.Require().Equal(routertesting.DefaultPoolAmount.String(), response.Pools[1].Amount.String())
	})

	s.Run("unknown pair", func() {
		rec := serve(echo.GET, "/router/pair?assetInfos=native:uluna,native:ukrw", "")
		s.Require().Equal(http.StatusBadGateway, rec.Code)
	})

	s.Run("execute swap operations", func() {
		rec := serve(echo.POST, "/router/execute", `{
			"sender": "terra1user",
			"funds": [{"denom": "uusd", "amount": "1000000"}],
			"msg": {"execute_swap_operations": {"operations": [
				{"pool_swap": {"offer_asset_info": {"native": "uusd"}, "ask_asset_info": {"native": "uluna"}}},
				{"pool_swap": {"offer_asset_info": {"native": "uluna"}, "ask_asset_info": {"cw20": "terra1prism"}}}
			]}}
		}`)
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

		var response domain.Response
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Require().Len(response.Messages, 2)
		for _, msg := range response.Messages {
			s.Require().Equal(routertesting.RouterAddr, msg.Wasm.Execute.ContractAddr)
		}
	})
}
