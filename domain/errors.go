package domain

import (
	"errors"
	"fmt"
	"net/http"

	"cosmossdk.io/math"
)

var (
	// ErrUnauthorized is returned when a hop is invoked by anyone other than the router itself.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNoSwapOperations is returned when a route has no operations.
	ErrNoSwapOperations = errors.New("must provide swap operations to execute")
	// ErrConfigNotFound is returned when the contract config has not been stored yet.
	ErrConfigNotFound = errors.New("contract config not found")
	// ErrInvalidHookMsg is returned when a CW20 receive hook carries an unsupported message.
	ErrInvalidHookMsg = errors.New("invalid cw20 hook message")
	// ErrInvalidExecuteMsg is returned when an execute message sets no variant or more than one.
	ErrInvalidExecuteMsg = errors.New("execute message must set exactly one variant")
)

// GetStatusCode returns status code given error
func GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var (
		queryFailureErr    QueryFailureError
		invalidAddressErr  InvalidAddressError
		balanceMismatchErr BalanceMismatchError
		invalidOpErr       InvalidSwapOperationError
		maxOpsErr          MaxSwapOperationsExceededError
		nonChainedErr      NonChainedSwapOperationsError
		invalidAssetErr    InvalidAssetInfoError
	)

	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrConfigNotFound):
		return http.StatusNotFound
	case errors.As(err, &queryFailureErr):
		return http.StatusBadGateway
	case errors.Is(err, ErrNoSwapOperations),
		errors.Is(err, ErrInvalidHookMsg),
		errors.Is(err, ErrInvalidExecuteMsg),
		errors.As(err, &invalidAddressErr),
		errors.As(err, &balanceMismatchErr),
		errors.As(err, &invalidOpErr),
		errors.As(err, &maxOpsErr),
		errors.As(err, &nonChainedErr),
		errors.As(err, &invalidAssetErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// ArithmeticUnderflowError is returned when a checked subtraction would go below zero.
type ArithmeticUnderflowError struct {
	Minuend    math.Uint
	Subtrahend math.Uint
}

func (e ArithmeticUnderflowError) Error() string {
	return fmt.Sprintf("cannot sub %s from %s: arithmetic underflow", e.Subtrahend, e.Minuend)
}

// Uint128OverflowError is returned when an amount does not fit into 128 bits.
type Uint128OverflowError struct {
	Amount math.Uint
}

func (e Uint128OverflowError) Error() string {
	return fmt.Sprintf("amount (%s) overflows uint128", e.Amount)
}

// BalanceMismatchError is returned when the attached native funds differ from the declared asset amount.
type BalanceMismatchError struct {
	Denom    string
	Declared math.Uint
	Sent     math.Uint
}

func (e BalanceMismatchError) Error() string {
	return fmt.Sprintf("native token balance mismatch between the argument (%s%s) and the transferred (%s%s)", e.Declared, e.Denom, e.Sent, e.Denom)
}

// InvalidAddressError is returned when an address is not canonical or fails host validation.
type InvalidAddressError struct {
	Address string
	Reason  string
}

func (e InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid address (%s): %s", e.Address, e.Reason)
}

// QueryFailureError wraps a failed collaborator lookup.
type QueryFailureError struct {
	Query string
	Err   error
}

func (e QueryFailureError) Error() string {
	return fmt.Sprintf("query (%s) failed: %v", e.Query, e.Err)
}

func (e QueryFailureError) Unwrap() error {
	return e.Err
}

// InvalidAssetInfoError is returned for an asset info with an unknown kind or an empty identifier.
type InvalidAssetInfoError struct {
	Kind  AssetKind
	Value string
}

func (e InvalidAssetInfoError) Error() string {
	return fmt.Sprintf("invalid asset info: kind (%d), value (%q)", e.Kind, e.Value)
}

// InvalidSwapOperationError is returned when a swap operation sets no variant, both variants,
// or swaps an asset into itself.
type InvalidSwapOperationError struct {
	Reason string
}

func (e InvalidSwapOperationError) Error() string {
	return fmt.Sprintf("invalid swap operation: %s", e.Reason)
}

// MaxSwapOperationsExceededError is returned when a route is longer than allowed.
type MaxSwapOperationsExceededError struct {
	Count int
	Max   int
}

func (e MaxSwapOperationsExceededError) Error() string {
	return fmt.Sprintf("swap limit exceeded: %d operations given, max is %d", e.Count, e.Max)
}

// NonChainedSwapOperationsError is returned when the ask asset of a hop is not the offer asset of the next one.
type NonChainedSwapOperationsError struct {
	Index    int
	Expected AssetInfo
	Actual   AssetInfo
}

func (e NonChainedSwapOperationsError) Error() string {
	return fmt.Sprintf("swap operation (%d) offers %s but previous operation asks %s", e.Index, e.Actual, e.Expected)
}

// MinimumReceiveAssertionError is returned when a route yields less than the requested minimum.
type MinimumReceiveAssertionError struct {
	MinimumReceive math.Uint
	SwapAmount     math.Uint
}

func (e MinimumReceiveAssertionError) Error() string {
	return fmt.Sprintf("assertion failed; minimum receive amount: %s, swap amount: %s", e.MinimumReceive, e.SwapAmount)
}
