package cli

import (
	"errors"
	"testing"

	"go.viam.com/test"
)

func TestConfigFromEnv(t *testing.T) {
	t.Run("fully configured", func(t *testing.T) {
		t.Setenv(projectIDEnvVar, "my-project")
		t.Setenv(regionNameEnvVar, "us-central1")

		conf, err := configFromEnv()
		test.That(t, err, test.ShouldBeNil)
		test.That(t, conf.ProjectID, test.ShouldEqual, "my-project")
		test.That(t, conf.Region, test.ShouldEqual, "us-central1")
	})

	t.Run("missing region", func(t *testing.T) {
		t.Setenv(projectIDEnvVar, "my-project")
		t.Setenv(regionNameEnvVar, "")

		_, err := configFromEnv()
		var cErr *configError
		test.That(t, errors.As(err, &cErr), test.ShouldBeTrue)
		test.That(t, cErr.missing, test.ShouldResemble, []string{regionNameEnvVar})
		test.That(t, err.Error(), test.ShouldContainSubstring, regionNameEnvVar)
	})

	t.Run("nothing set", func(t *testing.T) {
		t.Setenv(projectIDEnvVar, "")
		t.Setenv(regionNameEnvVar, "")

		_, err := configFromEnv()
		var cErr *configError
		test.That(t, errors.As(err, &cErr), test.ShouldBeTrue)
		test.That(t, cErr.missing, test.ShouldResemble, []string{projectIDEnvVar, regionNameEnvVar})
	})
}

func TestConfigResourceNames(t *testing.T) {
	conf := &config{ProjectID: "my-project", Region: "us-central1"}
	test.That(t, conf.location().String(), test.ShouldEqual,
		"projects/my-project/locations/us-central1")
	test.That(t, conf.modelName("VCN123").String(), test.ShouldEqual,
		"projects/my-project/locations/us-central1/models/VCN123")
	test.That(t, conf.evaluationName("VCN123", "eval1").String(), test.ShouldEqual,
		"projects/my-project/locations/us-central1/models/VCN123/modelEvaluations/eval1")
}
