package usecase

import (
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/prismswap/swaprouter/domain"
)

type (
	RouterUseCaseImpl = routerUseCaseImpl
)

func ValidateSwapRoute(operations []domain.SwapOperation, maxOperations int) error {
	return swapRoute(operations).validate(maxOperations)
}

func SwapRouteHops(operations []domain.SwapOperation, contractAddr string, recipient string) ([]wasmvmtypes.CosmosMsg, error) {
	return swapRoute(operations).hops(contractAddr, recipient)
}
