package http

import (
	"github.com/prismswap/swaprouter/domain"
	"github.com/prismswap/swaprouter/log"
	routerrepo "github.com/prismswap/swaprouter/router/repository"
)

func ExtractVersion(ldFlagsValueStr string) (string, error) {
	return extractVersion(ldFlagsValueStr)
}

func NewTestSystemHandler(config domain.Config, nodeStatus domain.NodeStatusQuerier, configRepository routerrepo.ConfigRepository) *SystemHandler {
	return &SystemHandler{
		logger:           &log.NoOpLogger{},
		NodeStatus:       nodeStatus,
		ConfigRepository: configRepository,
		config:           config,
	}
}
