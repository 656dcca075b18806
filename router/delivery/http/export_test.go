package http

import (
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/prismswap/swaprouter/domain/mvc"
	"github.com/prismswap/swaprouter/log"
)

func NewTestRouterHandler(us mvc.RouterUsecase, contractAddress, chainID string) *RouterHandler {
	return &RouterHandler{
		RUsecase:        us,
		ContractAddress: contractAddress,
		ChainID:         chainID,
		logger:          &log.NoOpLogger{},
	}
}

func (a *RouterHandler) Env() wasmvmtypes.Env {
	return a.env()
}
