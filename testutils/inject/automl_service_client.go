// Package inject provides injectable mocks of the generated service
// clients for testing.
package inject

import (
	"context"

	"cloud.google.com/go/automl/apiv1beta1/automlpb"
	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"google.golang.org/grpc"
)

// AutoMLServiceClient is an injectable automlpb.AutoMlClient.
type AutoMLServiceClient struct {
	automlpb.AutoMlClient
	CreateModelFunc func(ctx context.Context, in *automlpb.CreateModelRequest,
		opts ...grpc.CallOption) (*longrunningpb.Operation, error)
	GetModelFunc func(ctx context.Context, in *automlpb.GetModelRequest,
		opts ...grpc.CallOption) (*automlpb.Model, error)
	ListModelsFunc func(ctx context.Context, in *automlpb.ListModelsRequest,
		opts ...grpc.CallOption) (*automlpb.ListModelsResponse, error)
	DeleteModelFunc func(ctx context.Context, in *automlpb.DeleteModelRequest,
		opts ...grpc.CallOption) (*longrunningpb.Operation, error)
	ListModelEvaluationsFunc func(ctx context.Context, in *automlpb.ListModelEvaluationsRequest,
		opts ...grpc.CallOption) (*automlpb.ListModelEvaluationsResponse, error)
	GetModelEvaluationFunc func(ctx context.Context, in *automlpb.GetModelEvaluationRequest,
		opts ...grpc.CallOption) (*automlpb.ModelEvaluation, error)
}

// CreateModel calls the injected CreateModelFunc or the real version.
func (asc *AutoMLServiceClient) CreateModel(ctx context.Context, in *automlpb.CreateModelRequest,
	opts ...grpc.CallOption,
) (*longrunningpb.Operation, error) {
	if asc.CreateModelFunc == nil {
		return asc.AutoMlClient.CreateModel(ctx, in, opts...)
	}
	return asc.CreateModelFunc(ctx, in, opts...)
}

// GetModel calls the injected GetModelFunc or the real version.
func (asc *AutoMLServiceClient) GetModel(ctx context.Context, in *automlpb.GetModelRequest,
	opts ...grpc.CallOption,
) (*automlpb.Model, error) {
	if asc.GetModelFunc == nil {
		return asc.AutoMlClient.GetModel(ctx, in, opts...)
	}
	return asc.GetModelFunc(ctx, in, opts...)
}

// ListModels calls the injected ListModelsFunc or the real version.
func (asc *AutoMLServiceClient) ListModels(ctx context.Context, in *automlpb.ListModelsRequest,
	opts ...grpc.CallOption,
) (*automlpb.ListModelsResponse, error) {
	if asc.ListModelsFunc == nil {
		return asc.AutoMlClient.ListModels(ctx, in, opts...)
	}
	return asc.ListModelsFunc(ctx, in, opts...)
}

// DeleteModel calls the injected DeleteModelFunc or the real version.
func (asc *AutoMLServiceClient) DeleteModel(ctx context.Context, in *automlpb.DeleteModelRequest,
	opts ...grpc.CallOption,
) (*longrunningpb.Operation, error) {
	if asc.DeleteModelFunc == nil {
		return asc.AutoMlClient.DeleteModel(ctx, in, opts...)
	}
	return asc.DeleteModelFunc(ctx, in, opts...)
}

// ListModelEvaluations calls the injected ListModelEvaluationsFunc or the real version.
func (asc *AutoMLServiceClient) ListModelEvaluations(ctx context.Context, in *automlpb.ListModelEvaluationsRequest,
	opts ...grpc.CallOption,
) (*automlpb.ListModelEvaluationsResponse, error) {
	if asc.ListModelEvaluationsFunc == nil {
		return asc.AutoMlClient.ListModelEvaluations(ctx, in, opts...)
	}
	return asc.ListModelEvaluationsFunc(ctx, in, opts...)
}

// GetModelEvaluation calls the injected GetModelEvaluationFunc or the real version.
func (asc *AutoMLServiceClient) GetModelEvaluation(ctx context.Context, in *automlpb.GetModelEvaluationRequest,
	opts ...grpc.CallOption,
) (*automlpb.ModelEvaluation, error) {
	if asc.GetModelEvaluationFunc == nil {
		return asc.AutoMlClient.GetModelEvaluation(ctx, in, opts...)
	}
	return asc.GetModelEvaluationFunc(ctx, in, opts...)
}
