package main

import (
	"context"
	"errors"
	"net/http"

	dbm "github.com/cometbft/cometbft-db"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/prismswap/swaprouter/chain"
	grpcdelivery "github.com/prismswap/swaprouter/delivery/grpc"
	"github.com/prismswap/swaprouter/domain"
	"github.com/prismswap/swaprouter/log"
	"github.com/prismswap/swaprouter/middleware"
	routerHttpDelivery "github.com/prismswap/swaprouter/router/delivery/http"
	routerrepo "github.com/prismswap/swaprouter/router/repository"
	routerUseCase "github.com/prismswap/swaprouter/router/usecase"
	systemhttpdelivery "github.com/prismswap/swaprouter/system/delivery/http"
)

// RouterServer serves the swap router over HTTP.
type RouterServer interface {
	GetLogger() log.Logger
	Shutdown(context.Context) error
	Start(context.Context) error
}

type routerServer struct {
	e          *echo.Echo
	db         dbm.DB
	grpcClient *grpcdelivery.Client
	address    string
	logger     log.Logger
}

const (
	stateDBName = "router"
	tracerName  = "prismswap-router"
)

// GetLogger implements RouterServer.
func (s *routerServer) GetLogger() log.Logger {
	return s.logger
}

// Shutdown implements RouterServer.
func (s *routerServer) Shutdown(ctx context.Context) error {
	return errors.Join(
		s.e.Shutdown(ctx),
		s.grpcClient.Close(),
		s.db.Close(),
	)
}

// Start implements RouterServer.
func (s *routerServer) Start(context.Context) error {
	s.logger.Info("Starting swap router", zap.String("address", s.address))
	err := s.e.Start(s.address)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// NewRouterServer opens the contract state, connects to the chain and registers the HTTP handlers.
func NewRouterServer(ctx context.Context, config domain.Config, logger log.Logger) (RouterServer, error) {
	e := echo.New()
	middleware := middleware.InitMiddleware(config.CORS)
	e.Use(middleware.CORS)
	e.Use(middleware.InstrumentMiddleware)
	e.Use(middleware.TraceWithParamsMiddleware(tracerName))

	db, err := dbm.NewDB(stateDBName, dbm.BackendType(config.State.Backend), config.State.Dir)
	if err != nil {
		return nil, err
	}

	configRepository := routerrepo.New(db)
	if err := seedContractConfig(ctx, configRepository, *config.Router, logger); err != nil {
		return nil, errors.Join(err, db.Close())
	}

	grpcClient, err := grpcdelivery.NewClient(config.ChainGRPCGatewayEndpoint)
	if err != nil {
		return nil, errors.Join(err, db.Close())
	}

	taxPolicy, err := domain.NewTaxPolicy(*config.Tax)
	if err != nil {
		return nil, errors.Join(err, grpcClient.Close(), db.Close())
	}

	querier, err := chain.NewQuerier(grpcClient, taxPolicy, config.Router.TokenSymbolCacheSize)
	if err != nil {
		return nil, errors.Join(err, grpcClient.Close(), db.Close())
	}

	addressValidator := domain.Bech32AddressValidator{Prefix: config.Bech32Prefix}

	routerUsecase := routerUseCase.NewRouterUsecase(configRepository, querier, addressValidator, *config.Router, logger)

	// HTTP handlers
	systemhttpdelivery.NewSystemHandler(e, config, logger, chain.NewNodeStatusQuerier(grpcClient), configRepository)
	routerHttpDelivery.NewRouterHandler(e, routerUsecase, config.ContractAddress, config.ChainID, logger)

	return &routerServer{
		e:          e,
		db:         db,
		grpcClient: grpcClient,
		address:    config.ServerAddress,
		logger:     logger,
	}, nil
}

// seedContractConfig stores the configured registry when no contract config exists yet.
// A stored config is never overwritten.
func seedContractConfig(ctx context.Context, configRepository routerrepo.ConfigRepository, routerConfig domain.RouterConfig, logger log.Logger) error {
	stored, err := configRepository.LoadConfig(ctx)
	if err == nil {
		if routerConfig.RegistryAddress != "" && routerConfig.RegistryAddress != stored.RegistryAddress {
			logger.Warn("configured registry differs from the stored one; keeping the stored registry",
				zap.String("configured", routerConfig.RegistryAddress),
				zap.String("stored", stored.RegistryAddress))
		}
		return nil
	}

	if !errors.Is(err, domain.ErrConfigNotFound) {
		return err
	}

	if routerConfig.RegistryAddress == "" {
		return errors.New("no contract config stored and router.registry-address is not set")
	}

	logger.Info("storing contract config", zap.String("registry_address", routerConfig.RegistryAddress))
	return configRepository.SaveConfig(ctx, domain.ContractConfig{RegistryAddress: routerConfig.RegistryAddress})
}
