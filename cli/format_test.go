package cli

import (
	"testing"

	"go.viam.com/test"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestFormatTimestamp(t *testing.T) {
	ts := &timestamppb.Timestamp{Seconds: 1609459200}
	test.That(t, formatTimestamp(ts), test.ShouldEqual, "2021-01-01T00:00:00.000+0000")

	// Sub-second precision is dropped, not rounded.
	ts = &timestamppb.Timestamp{Seconds: 1609459200, Nanos: 999_000_000}
	test.That(t, formatTimestamp(ts), test.ShouldEqual, "2021-01-01T00:00:00.000+0000")

	test.That(t, formatTimestamp(nil), test.ShouldEqual, "1970-01-01T00:00:00.000+0000")
}

func TestFormatPercent(t *testing.T) {
	test.That(t, formatPercent(0), test.ShouldEqual, "0.00%")
	test.That(t, formatPercent(0.5), test.ShouldEqual, "50.00%")
	test.That(t, formatPercent(0.875), test.ShouldEqual, "87.50%")
	test.That(t, formatPercent(1), test.ShouldEqual, "100.00%")
}

func TestFlattenValue(t *testing.T) {
	test.That(t, flattenValue(nil), test.ShouldEqual, "")
	test.That(t, flattenValue([]byte("abc")), test.ShouldEqual, "abc")
	test.That(t, flattenValue([]byte("a\nb\nc\n")), test.ShouldEqual, "abc")
}

func TestIsSummaryThreshold(t *testing.T) {
	test.That(t, isSummaryThreshold(0.5), test.ShouldBeTrue)
	test.That(t, isSummaryThreshold(0.5000001), test.ShouldBeTrue)
	test.That(t, isSummaryThreshold(0.51), test.ShouldBeFalse)
	test.That(t, isSummaryThreshold(0.25), test.ShouldBeFalse)
	test.That(t, isSummaryThreshold(0), test.ShouldBeFalse)
}

func TestResourceIDExtraction(t *testing.T) {
	test.That(t,
		modelID("projects/p/locations/us-central1/models/VCN123"),
		test.ShouldEqual, "VCN123")
	test.That(t,
		evaluationID("projects/p/locations/us-central1/models/VCN123/modelEvaluations/eval1"),
		test.ShouldEqual, "eval1")

	// Unparseable names render verbatim.
	test.That(t, modelID("VCN123"), test.ShouldEqual, "VCN123")
	test.That(t, evaluationID("bogus/name"), test.ShouldEqual, "bogus/name")
}
