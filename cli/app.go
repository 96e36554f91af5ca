package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

const (
	debugFlagName    = "debug"
	endpointFlagName = "endpoint"

	defaultEndpoint = "automl.googleapis.com:443"
)

var app = &cli.App{
	Name:            "automl-video",
	Usage:           "manage video classification models on the AutoML service",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:   endpointFlagName,
			Hidden: true,
			Value:  defaultEndpoint,
			Usage:  "service endpoint address",
		},
		&cli.BoolFlag{
			Name:    debugFlagName,
			Aliases: []string{"vvv"},
			Usage:   "enable debug logging",
		},
	},
	Commands: []*cli.Command{
		{
			Name:      "create_model",
			Usage:     "train a new model from a dataset",
			ArgsUsage: "<datasetId> <modelName>",
			Action:    CreateModelAction,
		},
		{
			Name:      "list_models",
			Usage:     "list models in the project location",
			ArgsUsage: "[filter]",
			Action:    ListModelsAction,
		},
		{
			Name:      "get_model",
			Usage:     "get model details",
			ArgsUsage: "<modelId>",
			Action:    GetModelAction,
		},
		{
			Name:      "list_model_evaluations",
			Usage:     "list evaluations of a model",
			ArgsUsage: "<modelId> [filter]",
			Action:    ListModelEvaluationsAction,
		},
		{
			Name:      "get_model_evaluation",
			Usage:     "get model evaluation details",
			ArgsUsage: "<modelId> <modelEvaluationId>",
			Action:    GetModelEvaluationAction,
		},
		{
			Name:      "display_evaluation",
			Usage:     "display the whole-model evaluation at the 0.5 confidence threshold",
			ArgsUsage: "<modelId> [filter]",
			Action:    DisplayEvaluationAction,
		},
		{
			Name:      "delete_model",
			Usage:     "delete a model and wait for the deletion to finish",
			ArgsUsage: "<modelId>",
			Action:    DeleteModelAction,
		},
		{
			Name:      "get_operation_status",
			Usage:     "get the status of a long-running operation",
			ArgsUsage: "<operationFullId>",
			Action:    GetOperationStatusAction,
		},
		{
			Name:      "list_operations_status",
			Usage:     "list long-running operations in the project location",
			ArgsUsage: "[filter]",
			Action:    ListOperationsStatusAction,
		},
	},
}

// NewApp returns a new app with the CLI API, Writer set to out, and
// ErrWriter set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	app.Writer = out
	app.ErrWriter = errOut
	return app
}
