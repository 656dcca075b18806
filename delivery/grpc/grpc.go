package grpc

import (
	"fmt"

	proto "github.com/cosmos/gogoproto/proto"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	maxCallRecvMsgSize = 10 * 1024 * 1024
	gogoprotoCodecName = "gogoproto"
)

// gogoprotoCodec encodes messages with gogoproto, which the Cosmos SDK query types are generated with.
// See: https://github.com/cosmos/cosmos-sdk/issues/18430
type gogoprotoCodec struct{}

func (gogoprotoCodec) Marshal(v interface{}) ([]byte, error) {
	protoMsg, ok := v.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("failed to assert proto.Message, got %T", v)
	}
	return proto.Marshal(protoMsg)
}

func (gogoprotoCodec) Unmarshal(data []byte, v interface{}) error {
	protoMsg, ok := v.(proto.Message)
	if !ok {
		return fmt.Errorf("failed to assert proto.Message, got %T", v)
	}
	return proto.Unmarshal(data, protoMsg)
}

func (gogoprotoCodec) Name() string {
	return gogoprotoCodecName
}

// Client is a connection to the chain's gRPC query services.
type Client struct {
	*grpc.ClientConn
}

// NewClient creates a client connection to the chain's gRPC endpoint.
// The connection is established lazily on the first call.
func NewClient(grpcEndpoint string) (*Client, error) {
	grpcOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithDefaultCallOptions(
			grpc.ForceCodec(gogoprotoCodec{}),
			grpc.MaxCallRecvMsgSize(maxCallRecvMsgSize),
		),
	}

	grpcConn, err := grpc.NewClient(grpcEndpoint, grpcOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to dial chain gRPC service: %w", err)
	}

	return &Client{
		ClientConn: grpcConn,
	}, nil
}
