package types_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/prismswap/swaprouter/domain"
	"github.com/prismswap/swaprouter/router/types"
)

func TestExecuteRequestUnmarshal(t *testing.T) {
	testcases := []struct {
		name           string
		body           string
		expectedResult *types.ExecuteRequest
		expectedError  error
	}{
		{
			name: "valid swap operations",
			body: `{
				"sender": "terra1user",
				"funds": [{"denom": "uusd", "amount": "1000000"}],
				"msg": {"execute_swap_operations": {"operations": [{"native_swap": {"offer_denom": "uusd", "ask_denom": "uluna"}}]}}
			}`,
			expectedResult: &types.ExecuteRequest{
				Sender: "terra1user",
				Funds:  []wasmvmtypes.Coin{{Denom: "uusd", Amount: "1000000"}},
				Msg: domain.ExecuteMsg{
					ExecuteSwapOperations: &domain.ExecuteSwapOperationsMsg{
						Operations: []domain.SwapOperation{domain.NewNativeSwapOperation("uusd", "uluna")},
					},
				},
			},
		},
		{
			name:          "not json",
			body:          `sender=terra1user`,
			expectedError: types.ErrRequestBodyNotValid,
		},
		{
			name:          "invalid swap operation",
			body:          `{"sender": "terra1user", "msg": {"execute_swap_operations": {"operations": [{}]}}}`,
			expectedError: types.ErrRequestBodyNotValid,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(echo.POST, "/router/execute", strings.NewReader(tc.body))
			c := e.NewContext(req, httptest.NewRecorder())

			var result types.ExecuteRequest
			err := (&result).UnmarshalHTTPRequest(c)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedResult, &result)
		})
	}
}

func TestExecuteRequestValidate(t *testing.T) {
	validMsg := domain.ExecuteMsg{
		ExecuteSwapOperations: &domain.ExecuteSwapOperationsMsg{
			Operations: []domain.SwapOperation{domain.NewNativeSwapOperation("uusd", "uluna")},
		},
	}

	testcases := []struct {
		name          string
		request       types.ExecuteRequest
		expectedError error
	}{
		{
			name:    "valid",
			request: types.ExecuteRequest{Sender: "terra1user", Funds: []wasmvmtypes.Coin{{Denom: "uusd", Amount: "1"}}, Msg: validMsg},
		},
		{
			name:          "missing sender",
			request:       types.ExecuteRequest{Msg: validMsg},
			expectedError: types.ErrSenderNotSpecified,
		},
		{
			name:          "non integer amount",
			request:       types.ExecuteRequest{Sender: "terra1user", Funds: []wasmvmtypes.Coin{{Denom: "uusd", Amount: "1.5"}}, Msg: validMsg},
			expectedError: types.ErrFundsNotValid,
		},
		{
			name:          "missing denom",
			request:       types.ExecuteRequest{Sender: "terra1user", Funds: []wasmvmtypes.Coin{{Amount: "1"}}, Msg: validMsg},
			expectedError: types.ErrFundsNotValid,
		},
		{
			name: "duplicate denom",
			request: types.ExecuteRequest{
				Sender: "terra1user",
				Funds:  []wasmvmtypes.Coin{{Denom: "uusd", Amount: "1"}, {Denom: "uusd", Amount: "2"}},
				Msg:    validMsg,
			},
			expectedError: types.ErrDuplicateFundsDenom,
		},
		{
			name:          "no message variant",
			request:       types.ExecuteRequest{Sender: "terra1user"},
			expectedError: domain.ErrInvalidExecuteMsg,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAssetPairRequestUnmarshal(t *testing.T) {
	testcases := []struct {
		name           string
		assetInfos     string
		expectedResult [2]domain.AssetInfo
		expectedError  error
	}{
		{
			name:           "native and token",
			assetInfos:     "native:uluna,cw20:terra1token",
			expectedResult: [2]domain.AssetInfo{domain.NewNativeAssetInfo("uluna"), domain.NewTokenAssetInfo("terra1token")},
		},
		{
			name:          "missing",
			expectedError: types.ErrAssetInfosNotSpecified,
		},
		{
			name:          "single asset",
			assetInfos:    "native:uluna",
			expectedError: types.ErrAssetInfosNotValid,
		},
		{
			name:          "unknown kind",
			assetInfos:    "native:uluna,erc20:0xabc",
			expectedError: types.ErrAssetInfosNotValid,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(echo.GET, "/", nil)
			q := req.URL.Query()
			if tc.assetInfos != "" {
				q.Add("assetInfos", tc.assetInfos)
			}
			req.URL.RawQuery = q.Encode()
			c := e.NewContext(req, httptest.NewRecorder())

			var result types.AssetPairRequest
			err := (&result).UnmarshalHTTPRequest(c)

			if tc.expectedError != nil {
				assert.Equal(t, tc.expectedError, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedResult, result.AssetInfos)
		})
	}

	sameAssets := types.AssetPairRequest{AssetInfos: [2]domain.AssetInfo{domain.NewNativeAssetInfo("uluna"), domain.NewNativeAssetInfo("uluna")}}
	assert.ErrorIs(t, sameAssets.Validate(), types.ErrValidationFailed)
}
