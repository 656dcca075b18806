package chain

import (
	"context"

	"github.com/cosmos/cosmos-sdk/client/grpc/cmtservice"
	gogogrpc "github.com/cosmos/gogoproto/grpc"

	"github.com/prismswap/swaprouter/domain"
)

type nodeStatusQuerier struct {
	client cmtservice.ServiceClient
}

var _ domain.NodeStatusQuerier = &nodeStatusQuerier{}

// NewNodeStatusQuerier creates a node status querier over the CometBFT gRPC service.
func NewNodeStatusQuerier(conn gogogrpc.ClientConn) domain.NodeStatusQuerier {
	return NewNodeStatusQuerierFromClient(cmtservice.NewServiceClient(conn))
}

// NewNodeStatusQuerierFromClient creates a node status querier from an already constructed client.
func NewNodeStatusQuerierFromClient(client cmtservice.ServiceClient) domain.NodeStatusQuerier {
	return &nodeStatusQuerier{client: client}
}

// GetLatestHeight implements domain.NodeStatusQuerier.
func (q *nodeStatusQuerier) GetLatestHeight(ctx context.Context) (uint64, error) {
	response, err := q.client.GetLatestBlock(ctx, &cmtservice.GetLatestBlockRequest{})
	if err != nil {
		return 0, domain.QueryFailureError{Query: "latest_block", Err: err}
	}

	height := response.GetSdkBlock().GetHeader().Height
	if height < 0 {
		return 0, nil
	}
	return uint64(height), nil
}

// IsSyncing implements domain.NodeStatusQuerier.
func (q *nodeStatusQuerier) IsSyncing(ctx context.Context) (bool, error) {
	response, err := q.client.GetSyncing(ctx, &cmtservice.GetSyncingRequest{})
	if err != nil {
		return false, domain.QueryFailureError{Query: "syncing", Err: err}
	}
	return response.Syncing, nil
}
