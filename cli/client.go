// Package cli contains all business logic needed by the CLI command.
package cli

import (
	"cloud.google.com/go/automl/apiv1beta1/automlpb"
	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	gtransport "google.golang.org/api/transport/grpc"
	"google.golang.org/grpc"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// automlClient wraps a cli.Context and provides all the CLI command
// functionality needed to talk to the model and operations services.
type automlClient struct {
	c          *cli.Context
	conf       *config
	automl     automlpb.AutoMlClient
	operations longrunningpb.OperationsClient
	logger     golog.Logger

	conn *grpc.ClientConn
}

// newAutoMLClient validates the environment-derived configuration and
// dials an authenticated channel to the service endpoint. Authentication
// uses application default credentials; transient-failure policy belongs
// to the channel, not this layer.
func newAutoMLClient(c *cli.Context) (*automlClient, error) {
	conf, err := configFromEnv()
	if err != nil {
		return nil, err
	}

	var logger golog.Logger
	if c.Bool(debugFlagName) {
		logger = golog.NewDebugLogger("cli")
	} else {
		logger = zap.NewNop().Sugar()
	}

	conn, err := gtransport.Dial(c.Context,
		option.WithEndpoint(c.String(endpointFlagName)),
		option.WithScopes(cloudPlatformScope),
	)
	if err != nil {
		return nil, errors.Wrap(err, "could not connect to service endpoint")
	}

	return &automlClient{
		c:          c,
		conf:       conf,
		automl:     automlpb.NewAutoMlClient(conn),
		operations: longrunningpb.NewOperationsClient(conn),
		logger:     logger,
		conn:       conn,
	}, nil
}

func (c *automlClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
