package names

import (
	"testing"

	"go.viam.com/test"
)

func TestLocationName(t *testing.T) {
	loc := LocationName{Project: "my-project", Region: "us-central1"}
	test.That(t, loc.String(), test.ShouldEqual, "projects/my-project/locations/us-central1")
}

func TestModelNameRoundTrip(t *testing.T) {
	name := ModelName{Project: "my-project", Region: "us-central1", Model: "VCN123"}
	test.That(t, name.String(), test.ShouldEqual, "projects/my-project/locations/us-central1/models/VCN123")

	parsed, err := ParseModelName(name.String())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, parsed, test.ShouldResemble, name)
	test.That(t, parsed.ID(), test.ShouldEqual, "VCN123")
}

func TestModelEvaluationNameRoundTrip(t *testing.T) {
	name := ModelEvaluationName{Project: "my-project", Region: "us-central1", Model: "VCN123", Evaluation: "114"}
	test.That(t, name.String(), test.ShouldEqual,
		"projects/my-project/locations/us-central1/models/VCN123/modelEvaluations/114")

	parsed, err := ParseModelEvaluationName(name.String())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, parsed, test.ShouldResemble, name)
	test.That(t, parsed.ID(), test.ShouldEqual, "114")
}

func TestParseModelNameErrors(t *testing.T) {
	for _, bad := range []string{
		"",
		"VCN123",
		"projects/my-project/locations/us-central1",
		"projects/my-project/locations/us-central1/models/",
		"projects/my-project/regions/us-central1/models/VCN123",
		"projects/my-project/locations/us-central1/models/VCN123/extra",
	} {
		_, err := ParseModelName(bad)
		test.That(t, err, test.ShouldNotBeNil)
	}
}

func TestParseModelEvaluationNameErrors(t *testing.T) {
	for _, bad := range []string{
		"",
		"projects/my-project/locations/us-central1/models/VCN123",
		"projects/my-project/locations/us-central1/models/VCN123/modelEvaluations/",
		"projects/my-project/locations/us-central1/models/VCN123/evaluations/114",
	} {
		_, err := ParseModelEvaluationName(bad)
		test.That(t, err, test.ShouldNotBeNil)
	}
}
