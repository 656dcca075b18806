package http

import (
	"fmt"
	"net/http"
	"net/http/pprof"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/prismswap/swaprouter/domain"
	"github.com/prismswap/swaprouter/log"
	routerrepo "github.com/prismswap/swaprouter/router/repository"
)

type SystemHandler struct {
	logger           log.Logger
	NodeStatus       domain.NodeStatusQuerier
	ConfigRepository routerrepo.ConfigRepository
	config           domain.Config
}

// HealthStatus is the body of a successful health check.
type HealthStatus struct {
	NodeStatus         string `json:"node_status"`
	NodeLatestHeight   uint64 `json:"node_latest_height"`
	RegistryAddress    string `json:"registry_address"`
	RouterContractAddr string `json:"router_contract_address"`
}

const (
	versionPlaceholder    = "version="
	whiteSpacePlaceholder = " "

	swaggerSpecPath = "docs/swagger.yaml"
)

// NewSystemHandler will initialize the /debug/pprof, health, version and metrics endpoints
func NewSystemHandler(e *echo.Echo, config domain.Config, logger log.Logger, nodeStatus domain.NodeStatusQuerier, configRepository routerrepo.ConfigRepository) {
	handler := &SystemHandler{
		logger:           logger,
		NodeStatus:       nodeStatus,
		ConfigRepository: configRepository,
		config:           config,
	}

	// if debug mod, enable additional profiles that are too intensive
	// for production.
	if !config.LoggerIsProduction {
		runtime.SetMutexProfileFraction(2)
		runtime.SetBlockProfileRate(2)
	}

	e.GET("/debug/pprof/*", echo.WrapHandler(http.DefaultServeMux))
	e.GET("/debug/pprof/cmdline", echo.WrapHandler(http.HandlerFunc(pprof.Cmdline)))
	e.GET("/debug/pprof/profile", echo.WrapHandler(http.HandlerFunc(pprof.Profile)))
	e.GET("/debug/pprof/symbol", echo.WrapHandler(http.HandlerFunc(pprof.Symbol)))
	e.GET("/debug/pprof/trace", echo.WrapHandler(http.HandlerFunc(pprof.Trace)))

	e.GET("/healthcheck", handler.GetHealthStatus)
	e.GET("/config", handler.GetConfig)
	e.GET("/version", handler.GetVersion)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.File("/"+swaggerSpecPath, swaggerSpecPath)
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/"+swaggerSpecPath)))
}

// GetConfig returns the service config with secrets removed.
func (h *SystemHandler) GetConfig(c echo.Context) error {
	config := h.config
	if config.OTEL != nil {
		otelConfig := *config.OTEL
		otelConfig.DSN = ""
		config.OTEL = &otelConfig
	}
	return c.JSON(http.StatusOK, config)
}

func (h *SystemHandler) GetVersion(c echo.Context) error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read build info")
	}

	for _, setting := range buildInfo.Settings {
		if setting.Key == "-ldflags" {
			version, err := extractVersion(setting.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("failed to extract version information: %v", err))
			}

			return c.JSON(http.StatusOK, version)
		}
	}

	return echo.NewHTTPError(http.StatusInternalServerError, "failed to find version information")
}

// extractVersion extracts the version string set with -X <module>/version=<version> from the ldflags
func extractVersion(ldFlagsValueStr string) (string, error) {
	index := strings.Index(ldFlagsValueStr, versionPlaceholder)
	if index == -1 {
		return "", fmt.Errorf("no version string found")
	}

	substring := ldFlagsValueStr[index+len(versionPlaceholder):]

	index = strings.Index(substring, whiteSpacePlaceholder)
	if index == -1 {
		return substring, nil
	}

	return substring[:index], nil
}

// GetHealthStatus reports healthy when the node is reachable and synced and the contract config is stored.
func (h *SystemHandler) GetHealthStatus(c echo.Context) error {
	ctx := c.Request().Context()

	syncing, err := h.NodeStatus.IsSyncing(ctx)
	if err != nil {
		h.logger.Error("Error checking node status", zap.Error(err))
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Error connecting to the chain via gRPC")
	}

	if syncing {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Node is still catching up")
	}

	latestHeight, err := h.NodeStatus.GetLatestHeight(ctx)
	if err != nil {
		h.logger.Error("Error getting latest height", zap.Error(err))
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Failed to get latest height from the node")
	}

	contractConfig, err := h.ConfigRepository.LoadConfig(ctx)
	if err != nil {
		h.logger.Error("Error loading contract config", zap.Error(err))
		return echo.NewHTTPError(http.StatusServiceUnavailable, fmt.Sprintf("Failed to load contract config: %s", err))
	}

	return c.JSON(http.StatusOK, HealthStatus{
		NodeStatus:         "running",
		NodeLatestHeight:   latestHeight,
		RegistryAddress:    contractConfig.RegistryAddress,
		RouterContractAddr: h.config.ContractAddress,
	})
}
