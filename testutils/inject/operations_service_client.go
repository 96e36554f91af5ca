package inject

import (
	"context"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"google.golang.org/grpc"
)

// OperationsServiceClient is an injectable longrunningpb.OperationsClient.
type OperationsServiceClient struct {
	longrunningpb.OperationsClient
	GetOperationFunc func(ctx context.Context, in *longrunningpb.GetOperationRequest,
		opts ...grpc.CallOption) (*longrunningpb.Operation, error)
	ListOperationsFunc func(ctx context.Context, in *longrunningpb.ListOperationsRequest,
		opts ...grpc.CallOption) (*longrunningpb.ListOperationsResponse, error)
}

// GetOperation calls the injected GetOperationFunc or the real version.
func (osc *OperationsServiceClient) GetOperation(ctx context.Context, in *longrunningpb.GetOperationRequest,
	opts ...grpc.CallOption,
) (*longrunningpb.Operation, error) {
	if osc.GetOperationFunc == nil {
		return osc.OperationsClient.GetOperation(ctx, in, opts...)
	}
	return osc.GetOperationFunc(ctx, in, opts...)
}

// ListOperations calls the injected ListOperationsFunc or the real version.
func (osc *OperationsServiceClient) ListOperations(ctx context.Context, in *longrunningpb.ListOperationsRequest,
	opts ...grpc.CallOption,
) (*longrunningpb.ListOperationsResponse, error) {
	if osc.ListOperationsFunc == nil {
		return osc.OperationsClient.ListOperations(ctx, in, opts...)
	}
	return osc.ListOperationsFunc(ctx, in, opts...)
}
