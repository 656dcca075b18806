package usecase

import (
	"context"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
	"go.uber.org/zap"

	"github.com/prismswap/swaprouter/domain"
	"github.com/prismswap/swaprouter/domain/mvc"
	"github.com/prismswap/swaprouter/log"
	routerrepo "github.com/prismswap/swaprouter/router/repository"
)

var _ mvc.RouterUsecase = &routerUseCaseImpl{}

type routerUseCaseImpl struct {
	configRepository routerrepo.ConfigRepository
	querier          domain.Querier
	addressValidator domain.AddressValidator
	config           domain.RouterConfig
	logger           log.Logger
}

// NewRouterUsecase will create a new router use case object
func NewRouterUsecase(configRepository routerrepo.ConfigRepository, querier domain.Querier, addressValidator domain.AddressValidator, config domain.RouterConfig, logger log.Logger) mvc.RouterUsecase {
	if config.MaxSwapOperations <= 0 {
		config.MaxSwapOperations = domain.DefaultMaxSwapOperations
	}

	return &routerUseCaseImpl{
		configRepository: configRepository,
		querier:          querier,
		addressValidator: addressValidator,
		config:           config,
		logger:           logger,
	}
}

// Execute implements mvc.RouterUsecase.
func (r *routerUseCaseImpl) Execute(ctx context.Context, env wasmvmtypes.Env, info wasmvmtypes.MessageInfo, msg domain.ExecuteMsg) (domain.Response, error) {
	if err := msg.Validate(); err != nil {
		return domain.Response{}, err
	}

	switch {
	case msg.Receive != nil:
		return r.receiveCw20(ctx, env, *msg.Receive)
	case msg.ExecuteSwapOperations != nil:
		return r.ExecuteSwapOperations(ctx, env, info.Sender, *msg.ExecuteSwapOperations)
	case msg.ExecuteSwapOperation != nil:
		return r.ExecuteSwapOperation(ctx, env, info, msg.ExecuteSwapOperation.Operation, msg.ExecuteSwapOperation.To)
	case msg.AssertMinimumReceive != nil:
		return r.AssertMinimumReceive(ctx, *msg.AssertMinimumReceive)
	default:
		return domain.Response{}, domain.ErrInvalidExecuteMsg
	}
}

// GetLPTokenSymbol implements mvc.RouterUsecase.
func (r *routerUseCaseImpl) GetLPTokenSymbol(ctx context.Context, assetInfos [2]domain.AssetInfo) (string, error) {
	return domain.FormatLPTokenSymbol(ctx, r.querier, assetInfos)
}

// GetPair implements mvc.RouterUsecase.
func (r *routerUseCaseImpl) GetPair(ctx context.Context, assetInfos [2]domain.AssetInfo) (domain.PairInfo, [2]domain.Asset, error) {
	config, err := r.configRepository.LoadConfig(ctx)
	if err != nil {
		return domain.PairInfo{}, [2]domain.Asset{}, err
	}

	pairInfo, err := r.querier.QueryPairInfo(ctx, config.RegistryAddress, assetInfos)
	if err != nil {
		return domain.PairInfo{}, [2]domain.Asset{}, err
	}

	pools, err := pairInfo.QueryPools(ctx, r.querier)
	if err != nil {
		return domain.PairInfo{}, [2]domain.Asset{}, err
	}

	return pairInfo, pools, nil
}

// GetConfig implements mvc.RouterUsecase.
func (r *routerUseCaseImpl) GetConfig(ctx context.Context) (domain.ContractConfig, error) {
	return r.configRepository.LoadConfig(ctx)
}

func (r *routerUseCaseImpl) logHop(operation domain.SwapOperation, to *string, amount string) {
	recipient := ""
	if to != nil {
		recipient = *to
	}
	r.logger.Debug("executing swap operation",
		zap.String("kind", operation.Kind()),
		zap.Stringer("offer", operation.OfferAssetInfo()),
		zap.Stringer("ask", operation.AskAssetInfo()),
		zap.String("amount", amount),
		zap.String("to", recipient),
	)
}
