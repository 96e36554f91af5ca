package cli

import (
	"context"
	"io"
	"time"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
)

// operationPollInterval is how often waitForOperation re-checks a
// running operation; tests shrink it.
var operationPollInterval = 5 * time.Second

type getOperationStatusArgs struct {
	OperationID string
}

// GetOperationStatusAction is the corresponding action for 'get_operation_status'.
func GetOperationStatusAction(cCtx *cli.Context) (err error) {
	parsed, err := parseArgs(cCtx, []string{"operationFullId"}, nil)
	if err != nil {
		return usageFailure(cCtx, err)
	}
	client, err := newAutoMLClient(cCtx)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Combine(err, client.Close()) }()
	return client.getOperationStatusAction(cCtx, getOperationStatusArgs{OperationID: parsed[0]})
}

func (c *automlClient) getOperationStatusAction(cCtx *cli.Context, args getOperationStatusArgs) error {
	op, err := c.getOperation(cCtx.Context, args.OperationID)
	if err != nil {
		return err
	}
	printOperation(cCtx.App.Writer, op)
	return nil
}

func (c *automlClient) getOperation(ctx context.Context, name string) (*longrunningpb.Operation, error) {
	c.logger.Debugw("getting operation", "name", name)
	op, err := c.operations.GetOperation(ctx, &longrunningpb.GetOperationRequest{Name: name})
	if err != nil {
		return nil, errors.Wrap(err, "received error from server")
	}
	return op, nil
}

type listOperationsStatusArgs struct {
	Filter string
}

// ListOperationsStatusAction is the corresponding action for 'list_operations_status'.
func ListOperationsStatusAction(cCtx *cli.Context) (err error) {
	parsed, err := parseArgs(cCtx, nil, []string{""})
	if err != nil {
		return usageFailure(cCtx, err)
	}
	client, err := newAutoMLClient(cCtx)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Combine(err, client.Close()) }()
	return client.listOperationsStatusAction(cCtx, listOperationsStatusArgs{Filter: parsed[0]})
}

func (c *automlClient) listOperationsStatusAction(cCtx *cli.Context, args listOperationsStatusArgs) error {
	return c.listOperations(cCtx.Context, args.Filter, func(op *longrunningpb.Operation) {
		printOperation(cCtx.App.Writer, op)
	})
}

// listOperations pages through the operations in the configured location,
// invoking fn for each record as its page arrives.
func (c *automlClient) listOperations(ctx context.Context, filter string, fn func(*longrunningpb.Operation)) error {
	var pageToken string
	for {
		resp, err := c.operations.ListOperations(ctx, &longrunningpb.ListOperationsRequest{
			Name:      c.conf.location().String(),
			Filter:    filter,
			PageToken: pageToken,
		})
		if err != nil {
			return errors.Wrap(err, "received error from server")
		}
		for _, op := range resp.GetOperations() {
			fn(op)
		}
		if resp.GetNextPageToken() == "" {
			return nil
		}
		pageToken = resp.GetNextPageToken()
	}
}

// waitForOperation polls the operation until the service reports it done,
// honoring cancellation of ctx between polls.
func (c *automlClient) waitForOperation(ctx context.Context, name string) (*longrunningpb.Operation, error) {
	ticker := time.NewTicker(operationPollInterval)
	defer ticker.Stop()
	for {
		op, err := c.getOperation(ctx, name)
		if err != nil {
			return nil, err
		}
		if op.GetDone() {
			return op, nil
		}
		c.logger.Debugw("operation still running", "name", name)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func printOperation(w io.Writer, op *longrunningpb.Operation) {
	printf(w, "Operation details:")
	printf(w, "\tName: %s", op.GetName())
	printf(w, "\tMetadata:")
	printf(w, "\t\tType Url: %s", op.GetMetadata().GetTypeUrl())
	printf(w, "\t\tValue: %s", flattenValue(op.GetMetadata().GetValue()))
	printf(w, "\tDone: %t", op.GetDone())
	if resp := op.GetResponse(); resp != nil {
		printf(w, "\tResponse:")
		printf(w, "\t\tType Url: %s", resp.GetTypeUrl())
		printf(w, "\t\tValue: %s", flattenValue(resp.GetValue()))
	}
	if opErr := op.GetError(); opErr != nil {
		printf(w, "\tError:")
		printf(w, "\t\tError code: %d", opErr.GetCode())
		printf(w, "\t\tError message: %s", opErr.GetMessage())
	}
}
