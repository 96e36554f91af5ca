package cli

import (
	"context"
	"io"

	"cloud.google.com/go/automl/apiv1beta1/automlpb"
	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
)

type createModelArgs struct {
	DatasetID string
	ModelName string
}

// CreateModelAction is the corresponding action for 'create_model'.
func CreateModelAction(cCtx *cli.Context) (err error) {
	parsed, err := parseArgs(cCtx, []string{"datasetId", "modelName"}, nil)
	if err != nil {
		return usageFailure(cCtx, err)
	}
	client, err := newAutoMLClient(cCtx)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Combine(err, client.Close()) }()
	return client.createModelAction(cCtx, createModelArgs{DatasetID: parsed[0], ModelName: parsed[1]})
}

func (c *automlClient) createModelAction(cCtx *cli.Context, args createModelArgs) error {
	op, err := c.createModel(cCtx.Context, args.DatasetID, args.ModelName)
	if err != nil {
		return err
	}
	printf(cCtx.App.Writer, "Training operation name: %s", op.GetName())
	printf(cCtx.App.Writer, "Training started...")
	return nil
}

// createModel issues a create request carrying the display name, the
// source dataset, and the empty video classification metadata marker;
// the service exposes no tunable hyperparameters here. Training runs
// remotely as a long-running operation.
func (c *automlClient) createModel(ctx context.Context, datasetID, modelName string) (*longrunningpb.Operation, error) {
	parent := c.conf.location().String()
	c.logger.Debugw("creating model", "parent", parent, "dataset_id", datasetID)
	op, err := c.automl.CreateModel(ctx, &automlpb.CreateModelRequest{
		Parent: parent,
		Model: &automlpb.Model{
			DisplayName: modelName,
			DatasetId:   datasetID,
			ModelMetadata: &automlpb.Model_VideoClassificationModelMetadata{
				VideoClassificationModelMetadata: &automlpb.VideoClassificationModelMetadata{},
			},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "received error from server")
	}
	return op, nil
}

type listModelsArgs struct {
	Filter string
}

// ListModelsAction is the corresponding action for 'list_models'.
func ListModelsAction(cCtx *cli.Context) (err error) {
	parsed, err := parseArgs(cCtx, nil, []string{"video_classification_model_metadata:*"})
	if err != nil {
		return usageFailure(cCtx, err)
	}
	client, err := newAutoMLClient(cCtx)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Combine(err, client.Close()) }()
	return client.listModelsAction(cCtx, listModelsArgs{Filter: parsed[0]})
}

func (c *automlClient) listModelsAction(cCtx *cli.Context, args listModelsArgs) error {
	printf(cCtx.App.Writer, "List of models:")
	return c.listModels(cCtx.Context, args.Filter, func(model *automlpb.Model) {
		printf(cCtx.App.Writer, "")
		printModel(cCtx.App.Writer, model)
	})
}

// listModels pages through the models in the configured location,
// invoking fn for each record as its page arrives. The filter string is
// passed through to the service verbatim.
func (c *automlClient) listModels(ctx context.Context, filter string, fn func(*automlpb.Model)) error {
	var pageToken string
	for {
		resp, err := c.automl.ListModels(ctx, &automlpb.ListModelsRequest{
			Parent:    c.conf.location().String(),
			Filter:    filter,
			PageToken: pageToken,
		})
		if err != nil {
			return errors.Wrap(err, "received error from server")
		}
		for _, model := range resp.GetModel() {
			fn(model)
		}
		if resp.GetNextPageToken() == "" {
			return nil
		}
		pageToken = resp.GetNextPageToken()
	}
}

type getModelArgs struct {
	ModelID string
}

// GetModelAction is the corresponding action for 'get_model'.
func GetModelAction(cCtx *cli.Context) (err error) {
	parsed, err := parseArgs(cCtx, []string{"modelId"}, nil)
	if err != nil {
		return usageFailure(cCtx, err)
	}
	client, err := newAutoMLClient(cCtx)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Combine(err, client.Close()) }()
	return client.getModelAction(cCtx, getModelArgs{ModelID: parsed[0]})
}

func (c *automlClient) getModelAction(cCtx *cli.Context, args getModelArgs) error {
	model, err := c.getModel(cCtx.Context, args.ModelID)
	if err != nil {
		return err
	}
	printModel(cCtx.App.Writer, model)
	return nil
}

func (c *automlClient) getModel(ctx context.Context, modelID string) (*automlpb.Model, error) {
	name := c.conf.modelName(modelID).String()
	c.logger.Debugw("getting model", "name", name)
	model, err := c.automl.GetModel(ctx, &automlpb.GetModelRequest{Name: name})
	if err != nil {
		return nil, errors.Wrap(err, "received error from server")
	}
	return model, nil
}

type deleteModelArgs struct {
	ModelID string
}

// DeleteModelAction is the corresponding action for 'delete_model'.
func DeleteModelAction(cCtx *cli.Context) (err error) {
	parsed, err := parseArgs(cCtx, []string{"modelId"}, nil)
	if err != nil {
		return usageFailure(cCtx, err)
	}
	client, err := newAutoMLClient(cCtx)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Combine(err, client.Close()) }()
	return client.deleteModelAction(cCtx, deleteModelArgs{ModelID: parsed[0]})
}

// deleteModelAction starts the deletion and blocks until the service
// reports the operation done, like the original sample's blocking delete.
func (c *automlClient) deleteModelAction(cCtx *cli.Context, args deleteModelArgs) error {
	name := c.conf.modelName(args.ModelID).String()
	c.logger.Debugw("deleting model", "name", name)
	op, err := c.automl.DeleteModel(cCtx.Context, &automlpb.DeleteModelRequest{Name: name})
	if err != nil {
		return errors.Wrap(err, "received error from server")
	}
	printf(cCtx.App.Writer, "Model deletion started...")

	op, err = c.waitForOperation(cCtx.Context, op.GetName())
	if err != nil {
		return err
	}
	if opErr := op.GetError(); opErr != nil {
		return errors.Errorf("model deletion failed: %s (code %d)", opErr.GetMessage(), opErr.GetCode())
	}
	printf(cCtx.App.Writer, "Model deleted.")
	return nil
}

func printModel(w io.Writer, model *automlpb.Model) {
	printf(w, "Model name: %s", model.GetName())
	printf(w, "Model Id: %s", modelID(model.GetName()))
	printf(w, "Model display name: %s", model.GetDisplayName())
	printf(w, "Dataset Id: %s", model.GetDatasetId())
	printf(w, "VideoClassificationModelMetadata: %v", model.GetVideoClassificationModelMetadata())
	printf(w, "Model create time: %s", formatTimestamp(model.GetCreateTime()))
	printf(w, "Model update time: %s", formatTimestamp(model.GetUpdateTime()))
	printf(w, "Model deployment state: %s", model.GetDeploymentState())
}
