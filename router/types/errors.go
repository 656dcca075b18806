package types

import "errors"

// Handler Errors
var (
	ErrValidationFailed       = errors.New("validation failed")
	ErrSenderNotSpecified     = errors.New("sender is required")
	ErrRequestBodyNotValid    = errors.New("request body is invalid - must be a JSON object with sender, funds and msg")
	ErrAssetInfosNotSpecified = errors.New("assetInfos is required")
	ErrAssetInfosNotValid     = errors.New("assetInfos is invalid - must be two comma separated assets in the format native:denom or cw20:address")
	ErrFundsNotValid          = errors.New("funds are invalid - each coin must have a denom and an integer amount")
	ErrDuplicateFundsDenom    = errors.New("funds must not repeat a denom")
)
