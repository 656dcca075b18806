package mocks

import (
	"context"

	"github.com/prismswap/swaprouter/domain"
)

var _ domain.NodeStatusQuerier = &NodeStatusQuerierMock{}

type NodeStatusQuerierMock struct {
	GetLatestHeightFunc func(ctx context.Context) (uint64, error)
	IsSyncingFunc       func(ctx context.Context) (bool, error)
}

// GetLatestHeight implements domain.NodeStatusQuerier.
func (m *NodeStatusQuerierMock) GetLatestHeight(ctx context.Context) (uint64, error) {
	if m.GetLatestHeightFunc != nil {
		return m.GetLatestHeightFunc(ctx)
	}
	panic("unimplemented")
}

// IsSyncing implements domain.NodeStatusQuerier.
func (m *NodeStatusQuerierMock) IsSyncing(ctx context.Context) (bool, error) {
	if m.IsSyncingFunc != nil {
		return m.IsSyncingFunc(ctx)
	}
	panic("unimplemented")
}
