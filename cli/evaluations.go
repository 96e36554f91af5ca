package cli

import (
	"context"
	"io"

	"cloud.google.com/go/automl/apiv1beta1/automlpb"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"github.com/mlvideo/automl-cli/names"
)

type listModelEvaluationsArgs struct {
	ModelID string
	Filter  string
}

// ListModelEvaluationsAction is the corresponding action for 'list_model_evaluations'.
func ListModelEvaluationsAction(cCtx *cli.Context) (err error) {
	parsed, err := parseArgs(cCtx, []string{"modelId"}, []string{""})
	if err != nil {
		return usageFailure(cCtx, err)
	}
	client, err := newAutoMLClient(cCtx)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Combine(err, client.Close()) }()
	return client.listModelEvaluationsAction(cCtx, listModelEvaluationsArgs{ModelID: parsed[0], Filter: parsed[1]})
}

func (c *automlClient) listModelEvaluationsAction(cCtx *cli.Context, args listModelEvaluationsArgs) error {
	first := true
	return c.listModelEvaluations(cCtx.Context, args.ModelID, args.Filter, func(eval *automlpb.ModelEvaluation) {
		if !first {
			printf(cCtx.App.Writer, "")
		}
		first = false
		printEvaluation(cCtx.App.Writer, eval)
	})
}

// listModelEvaluations pages through a model's evaluations, invoking fn
// for each record as its page arrives. The filter string is passed
// through to the service verbatim.
func (c *automlClient) listModelEvaluations(
	ctx context.Context, modelID, filter string, fn func(*automlpb.ModelEvaluation),
) error {
	parent := c.conf.modelName(modelID).String()
	var pageToken string
	for {
		resp, err := c.automl.ListModelEvaluations(ctx, &automlpb.ListModelEvaluationsRequest{
			Parent:    parent,
			Filter:    filter,
			PageToken: pageToken,
		})
		if err != nil {
			return errors.Wrap(err, "received error from server")
		}
		for _, eval := range resp.GetModelEvaluation() {
			fn(eval)
		}
		if resp.GetNextPageToken() == "" {
			return nil
		}
		pageToken = resp.GetNextPageToken()
	}
}

type getModelEvaluationArgs struct {
	ModelID      string
	EvaluationID string
}

// GetModelEvaluationAction is the corresponding action for 'get_model_evaluation'.
func GetModelEvaluationAction(cCtx *cli.Context) (err error) {
	parsed, err := parseArgs(cCtx, []string{"modelId", "modelEvaluationId"}, nil)
	if err != nil {
		return usageFailure(cCtx, err)
	}
	client, err := newAutoMLClient(cCtx)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Combine(err, client.Close()) }()
	return client.getModelEvaluationAction(cCtx, getModelEvaluationArgs{ModelID: parsed[0], EvaluationID: parsed[1]})
}

func (c *automlClient) getModelEvaluationAction(cCtx *cli.Context, args getModelEvaluationArgs) error {
	eval, err := c.getModelEvaluation(cCtx.Context, args.ModelID, args.EvaluationID)
	if err != nil {
		return err
	}
	printEvaluation(cCtx.App.Writer, eval)
	return nil
}

func (c *automlClient) getModelEvaluation(
	ctx context.Context, modelID, evaluationID string,
) (*automlpb.ModelEvaluation, error) {
	name := c.conf.evaluationName(modelID, evaluationID).String()
	c.logger.Debugw("getting model evaluation", "name", name)
	eval, err := c.automl.GetModelEvaluation(ctx, &automlpb.GetModelEvaluationRequest{Name: name})
	if err != nil {
		return nil, errors.Wrap(err, "received error from server")
	}
	return eval, nil
}

type displayEvaluationArgs struct {
	ModelID string
	Filter  string
}

// DisplayEvaluationAction is the corresponding action for 'display_evaluation'.
func DisplayEvaluationAction(cCtx *cli.Context) (err error) {
	parsed, err := parseArgs(cCtx, []string{"modelId"}, []string{""})
	if err != nil {
		return usageFailure(cCtx, err)
	}
	client, err := newAutoMLClient(cCtx)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Combine(err, client.Close()) }()
	return client.displayEvaluationAction(cCtx, displayEvaluationArgs{ModelID: parsed[0], Filter: parsed[1]})
}

// displayEvaluationAction summarizes the whole-model evaluation: it
// resolves the aggregate evaluation, fetches it, and prints the metrics
// of its 0.5-confidence-threshold entry.
func (c *automlClient) displayEvaluationAction(cCtx *cli.Context, args displayEvaluationArgs) error {
	evalID, err := c.findAggregateEvaluation(cCtx.Context, args.ModelID, args.Filter)
	if err != nil {
		return err
	}
	printf(cCtx.App.Writer, "Model Evaluation ID: %s", evalID)

	eval, err := c.getModelEvaluation(cCtx.Context, args.ModelID, evalID)
	if err != nil {
		return err
	}

	for _, entry := range eval.GetClassificationEvaluationMetrics().GetConfidenceMetricsEntry() {
		if !isSummaryThreshold(entry.GetConfidenceThreshold()) {
			continue
		}
		w := cCtx.App.Writer
		printf(w, "Precision and recall are based on a score threshold of %g", summaryThreshold)
		printf(w, "Model recall: %s", formatPercent(entry.GetRecall()))
		printf(w, "Model precision: %s", formatPercent(entry.GetPrecision()))
		printf(w, "Model f1 score: %s", formatPercent(entry.GetF1Score()))
		printf(w, "Model recall@1: %s", formatPercent(entry.GetRecallAt1()))
		printf(w, "Model precision@1: %s", formatPercent(entry.GetPrecisionAt1()))
		printf(w, "Model f1 score@1: %s", formatPercent(entry.GetF1ScoreAt1()))
		return nil
	}
	return notFoundErrorf("evaluation %s has no confidence metrics entry at threshold %g", evalID, summaryThreshold)
}

// findAggregateEvaluation scans the model's evaluations for the
// whole-model aggregate, the one with an empty annotation spec ID.
// Per-class evaluations carry their class's annotation spec ID.
func (c *automlClient) findAggregateEvaluation(ctx context.Context, modelID, filter string) (string, error) {
	var evalID string
	if err := c.listModelEvaluations(ctx, modelID, filter, func(eval *automlpb.ModelEvaluation) {
		if eval.GetAnnotationSpecId() != "" {
			return
		}
		parsed, err := names.ParseModelEvaluationName(eval.GetName())
		if err != nil {
			warningf(c.c.App.ErrWriter, "skipping evaluation with malformed name %q", eval.GetName())
			return
		}
		evalID = parsed.ID()
	}); err != nil {
		return "", err
	}
	if evalID == "" {
		return "", notFoundErrorf("model %s has no aggregate evaluation", modelID)
	}
	return evalID, nil
}

func printEvaluation(w io.Writer, eval *automlpb.ModelEvaluation) {
	printf(w, "Model evaluation name: %s", eval.GetName())
	printf(w, "Model evaluation Id: %s", evaluationID(eval.GetName()))
	printf(w, "Model evaluation annotation spec Id: %s", eval.GetAnnotationSpecId())
	printf(w, "Model evaluation example count: %d", eval.GetEvaluatedExampleCount())
	printf(w, "Model evaluation display name: %s", eval.GetDisplayName())
	printf(w, "Model evaluation create time: %s", formatTimestamp(eval.GetCreateTime()))

	metrics := eval.GetClassificationEvaluationMetrics()
	printf(w, "Video classification evaluation metrics:")
	printf(w, "\tModel au_prc: %f", metrics.GetAuPrc())
	printf(w, "\tConfidence metrics entries:")
	for _, entry := range metrics.GetConfidenceMetricsEntry() {
		printf(w, "\t\tModel confidence threshold: %f", entry.GetConfidenceThreshold())
		printf(w, "\t\tModel precision: %s", formatPercent(entry.GetPrecision()))
		printf(w, "\t\tModel recall: %s", formatPercent(entry.GetRecall()))
		printf(w, "\t\tModel f1 score: %s", formatPercent(entry.GetF1Score()))
		printf(w, "\t\tModel precision@1: %s", formatPercent(entry.GetPrecisionAt1()))
		printf(w, "\t\tModel recall@1: %s", formatPercent(entry.GetRecallAt1()))
		printf(w, "\t\tModel f1 score@1: %s", formatPercent(entry.GetF1ScoreAt1()))
	}
}
