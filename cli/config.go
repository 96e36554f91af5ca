package cli

import (
	"os"

	"github.com/mlvideo/automl-cli/names"
)

const (
	projectIDEnvVar  = "PROJECT_ID"
	regionNameEnvVar = "REGION_NAME"
)

// config carries the environment-derived project identity. It is read
// once at startup and read-only afterwards.
type config struct {
	ProjectID string
	Region    string
}

// configFromEnv reads PROJECT_ID and REGION_NAME, failing fast when
// either is unset so a malformed resource name never reaches the service.
func configFromEnv() (*config, error) {
	conf := &config{
		ProjectID: os.Getenv(projectIDEnvVar),
		Region:    os.Getenv(regionNameEnvVar),
	}
	var missing []string
	if conf.ProjectID == "" {
		missing = append(missing, projectIDEnvVar)
	}
	if conf.Region == "" {
		missing = append(missing, regionNameEnvVar)
	}
	if len(missing) > 0 {
		return nil, &configError{missing: missing}
	}
	return conf, nil
}

func (c *config) location() names.LocationName {
	return names.LocationName{Project: c.ProjectID, Region: c.Region}
}

func (c *config) modelName(modelID string) names.ModelName {
	return names.ModelName{Project: c.ProjectID, Region: c.Region, Model: modelID}
}

func (c *config) evaluationName(modelID, evaluationID string) names.ModelEvaluationName {
	return names.ModelEvaluationName{
		Project:    c.ProjectID,
		Region:     c.Region,
		Model:      modelID,
		Evaluation: evaluationID,
	}
}
