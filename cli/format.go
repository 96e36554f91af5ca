package cli

import (
	"fmt"
	"math"
	"strings"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mlvideo/automl-cli/names"
)

// timestampLayout renders at millisecond precision with a numeric zone
// offset, e.g. "2021-01-01T00:00:00.000+0000".
const timestampLayout = "2006-01-02T15:04:05.000-0700"

const (
	// summaryThreshold is the confidence threshold whose metrics
	// display_evaluation reports.
	summaryThreshold = 0.5
	// thresholdTolerance bounds the comparison against summaryThreshold;
	// thresholds come back as float32, so an exact equality test is
	// brittle.
	thresholdTolerance = 1e-6
)

// formatTimestamp renders a proto timestamp in UTC. Sub-second precision
// is truncated to whole seconds, matching the original sample output.
func formatTimestamp(ts *timestamppb.Timestamp) string {
	return time.Unix(ts.GetSeconds(), 0).UTC().Format(timestampLayout)
}

// formatPercent renders a metric ratio in [0,1] as a percentage with two
// decimal digits.
func formatPercent(ratio float32) string {
	return fmt.Sprintf("%.2f%%", ratio*100)
}

// flattenValue renders a payload's raw bytes with newlines stripped so an
// operation always renders as one line per field.
func flattenValue(value []byte) string {
	return strings.ReplaceAll(string(value), "\n", "")
}

func isSummaryThreshold(threshold float32) bool {
	return math.Abs(float64(threshold)-summaryThreshold) <= thresholdTolerance
}

// modelID extracts the bare model ID from a full resource name the
// service returned. Unparseable names render as-is rather than failing a
// whole listing.
func modelID(name string) string {
	parsed, err := names.ParseModelName(name)
	if err != nil {
		return name
	}
	return parsed.ID()
}

// evaluationID is modelID's counterpart for model evaluation names.
func evaluationID(name string) string {
	parsed, err := names.ParseModelEvaluationName(name)
	if err != nil {
		return name
	}
	return parsed.ID()
}
