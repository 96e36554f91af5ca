package cli

import (
	"testing"

	"go.viam.com/test"

	"github.com/mlvideo/automl-cli/testutils/inject"
)

func TestParseArgs(t *testing.T) {
	for _, tc := range []struct {
		name             string
		cliArgs          []string
		required         []string
		optionalDefaults []string
		expected         []string
		errContains      string
	}{
		{
			name:     "required only",
			cliArgs:  []string{"VCN123", "eval1"},
			required: []string{"modelId", "modelEvaluationId"},
			expected: []string{"VCN123", "eval1"},
		},
		{
			name:             "optional defaulted",
			cliArgs:          []string{"VCN123"},
			required:         []string{"modelId"},
			optionalDefaults: []string{"video_classification_model_metadata:*"},
			expected:         []string{"VCN123", "video_classification_model_metadata:*"},
		},
		{
			name:             "optional provided",
			cliArgs:          []string{"VCN123", "annotation_spec_id:*"},
			required:         []string{"modelId"},
			optionalDefaults: []string{""},
			expected:         []string{"VCN123", "annotation_spec_id:*"},
		},
		{
			name:     "explicit empty string is provided",
			cliArgs:  []string{""},
			required: []string{"modelId"},
			expected: []string{""},
		},
		{
			name:        "missing required",
			cliArgs:     []string{"VCN123"},
			required:    []string{"modelId", "modelEvaluationId"},
			errContains: "missing required argument <modelEvaluationId>",
		},
		{
			name:        "too many",
			cliArgs:     []string{"VCN123", "surplus"},
			required:    []string{"modelId"},
			errContains: "too many arguments",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cCtx, _, _, _ := setup(t, &inject.AutoMLServiceClient{}, nil, tc.cliArgs...)
			parsed, err := parseArgs(cCtx, tc.required, tc.optionalDefaults)
			if tc.errContains == "" {
				test.That(t, err, test.ShouldBeNil)
				test.That(t, parsed, test.ShouldResemble, tc.expected)
			} else {
				test.That(t, err, test.ShouldNotBeNil)
				test.That(t, err.Error(), test.ShouldContainSubstring, tc.errContains)
			}
		})
	}
}
