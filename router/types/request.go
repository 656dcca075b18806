package types

import (
	"fmt"
	"io"
	"strings"

	"cosmossdk.io/math"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
	"github.com/labstack/echo/v4"

	"github.com/prismswap/swaprouter/domain"
	"github.com/prismswap/swaprouter/domain/json"
)

// ExecuteRequest represents the body of the /router/execute endpoint: an execute message
// as the router contract would receive it.
type ExecuteRequest struct {
	Sender string             `json:"sender"`
	Funds  []wasmvmtypes.Coin `json:"funds"`
	Msg    domain.ExecuteMsg  `json:"msg"`
}

// UnmarshalHTTPRequest decodes the JSON body.
func (r *ExecuteRequest) UnmarshalHTTPRequest(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, r); err != nil {
		return fmt.Errorf("%w: %w", ErrRequestBodyNotValid, err)
	}

	return nil
}

// Validate validates the ExecuteRequest
func (r *ExecuteRequest) Validate() error {
	if r.Sender == "" {
		return ErrSenderNotSpecified
	}

	seen := make(map[string]struct{}, len(r.Funds))
	for _, coin := range r.Funds {
		if coin.Denom == "" {
			return ErrFundsNotValid
		}
		amount, err := math.ParseUint(coin.Amount)
		if err != nil {
			return ErrFundsNotValid
		}
		if err := domain.CheckUint128(amount); err != nil {
			return err
		}
		if _, ok := seen[coin.Denom]; ok {
			return ErrDuplicateFundsDenom
		}
		seen[coin.Denom] = struct{}{}
	}

	return r.Msg.Validate()
}

// MessageInfo returns the sender and funds as the router sees them.
func (r *ExecuteRequest) MessageInfo() wasmvmtypes.MessageInfo {
	funds := r.Funds
	if funds == nil {
		funds = []wasmvmtypes.Coin{}
	}
	return wasmvmtypes.MessageInfo{Sender: r.Sender, Funds: funds}
}

// AssetPairRequest represents a query for two assets, given as
// ?assetInfos=native:uluna,cw20:terra1...
type AssetPairRequest struct {
	AssetInfos [2]domain.AssetInfo
}

// UnmarshalHTTPRequest parses the assetInfos query parameter.
func (r *AssetPairRequest) UnmarshalHTTPRequest(c echo.Context) error {
	assetInfosStr := c.QueryParam("assetInfos")
	if assetInfosStr == "" {
		return ErrAssetInfosNotSpecified
	}

	parts := strings.Split(assetInfosStr, ",")
	if len(parts) != len(r.AssetInfos) {
		return ErrAssetInfosNotValid
	}

	for i, part := range parts {
		assetInfo, err := domain.ParseAssetInfo(strings.TrimSpace(part))
		if err != nil {
			return ErrAssetInfosNotValid
		}
		r.AssetInfos[i] = assetInfo
	}

	return nil
}

// Validate validates the AssetPairRequest
func (r *AssetPairRequest) Validate() error {
	if r.AssetInfos[0].Equal(r.AssetInfos[1]) {
		return fmt.Errorf("%w: assets must differ", ErrValidationFailed)
	}
	return nil
}
