package executorclient

import (
	"context"
	"time"

	"github.com/virjilakrum/igloo/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	methodProcessPayload = "/igloo.v1.ExecutorService/ProcessPayload"
	methodGetLastEpoch   = "/igloo.v1.ExecutorService/GetLastEpoch"
)

// Config is the executor client configuration.
type Config struct {
	// URI is the address of the executor gRPC endpoint.
	URI string `mapstructure:"URI"`

	// MaxGRPCMessageSize overrides the default gRPC receive limit, batches
	// can outgrow the 4MB default.
	MaxGRPCMessageSize int `mapstructure:"MaxGRPCMessageSize"`
}

// Client talks to the executor service.
type Client struct {
	conn *grpc.ClientConn
}

// NewClient dials the executor and blocks until the connection is
// established or ctx is done.
func NewClient(ctx context.Context, cfg Config) (*Client, context.CancelFunc, error) {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	}
	if cfg.MaxGRPCMessageSize > 0 {
		opts = append(opts, grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(cfg.MaxGRPCMessageSize)))
	}

	const dialTimeout = 2 * time.Second
	ctx, cancel := context.WithCancel(ctx)
	connectCtx, connectCancel := context.WithTimeout(ctx, dialTimeout)
	defer connectCancel()

	conn, err := grpc.DialContext(connectCtx, cfg.URI, opts...)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	log.Infof("connected to executor at %s", cfg.URI)
	return &Client{conn: conn}, cancel, nil
}

// Close tears down the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// ProcessPayload submits one payload attribute to the executor.
func (c *Client) ProcessPayload(ctx context.Context, req *ProcessPayloadRequest) (*ProcessPayloadResponse, error) {
	resp := &ProcessPayloadResponse{}
	err := c.conn.Invoke(ctx, methodProcessPayload, req, resp, grpc.CallContentSubtype(codecName))
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetLastEpoch returns the executor's last applied epoch.
func (c *Client) GetLastEpoch(ctx context.Context) (*GetLastEpochResponse, error) {
	resp := &GetLastEpochResponse{}
	err := c.conn.Invoke(ctx, methodGetLastEpoch, &GetLastEpochRequest{}, resp, grpc.CallContentSubtype(codecName))
	if err != nil {
		return nil, err
	}
	return resp, nil
}
