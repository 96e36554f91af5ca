// Package names provides typed resource names for the AutoML service.
//
// Every resource the CLI touches is addressed by a slash-delimited
// hierarchical name, e.g. "projects/P/locations/R/models/M". These types
// build and parse those names so callers never extract IDs by splitting
// strings by hand.
package names

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	projectsCollection    = "projects"
	locationsCollection   = "locations"
	modelsCollection      = "models"
	evaluationsCollection = "modelEvaluations"
)

// LocationName identifies a project location, the parent resource for
// models and operations within a region.
type LocationName struct {
	Project string
	Region  string
}

func (l LocationName) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", projectsCollection, l.Project, locationsCollection, l.Region)
}

// ModelName identifies a model within a project location.
type ModelName struct {
	Project string
	Region  string
	Model   string
}

func (m ModelName) String() string {
	return fmt.Sprintf("%s/%s/%s",
		LocationName{Project: m.Project, Region: m.Region}, modelsCollection, m.Model)
}

// ID returns the bare model identifier.
func (m ModelName) ID() string { return m.Model }

// ModelEvaluationName identifies a single evaluation of a model.
type ModelEvaluationName struct {
	Project    string
	Region     string
	Model      string
	Evaluation string
}

func (m ModelEvaluationName) String() string {
	return fmt.Sprintf("%s/%s/%s",
		ModelName{Project: m.Project, Region: m.Region, Model: m.Model}, evaluationsCollection, m.Evaluation)
}

// ID returns the bare evaluation identifier.
func (m ModelEvaluationName) ID() string { return m.Evaluation }

// ParseModelName parses a full model resource name. The name is only
// valid if every segment is non-empty, so the bare ID is always
// recoverable from the rendered form.
func ParseModelName(name string) (ModelName, error) {
	segments, err := splitName(name, projectsCollection, locationsCollection, modelsCollection)
	if err != nil {
		return ModelName{}, errors.Wrapf(err, "invalid model name %q", name)
	}
	return ModelName{Project: segments[0], Region: segments[1], Model: segments[2]}, nil
}

// ParseModelEvaluationName parses a full model evaluation resource name.
func ParseModelEvaluationName(name string) (ModelEvaluationName, error) {
	segments, err := splitName(name, projectsCollection, locationsCollection, modelsCollection, evaluationsCollection)
	if err != nil {
		return ModelEvaluationName{}, errors.Wrapf(err, "invalid model evaluation name %q", name)
	}
	return ModelEvaluationName{
		Project:    segments[0],
		Region:     segments[1],
		Model:      segments[2],
		Evaluation: segments[3],
	}, nil
}

// splitName checks that name alternates the given collection literals
// with non-empty ID segments and returns the IDs in order.
func splitName(name string, collections ...string) ([]string, error) {
	segments := strings.Split(name, "/")
	if len(segments) != 2*len(collections) {
		return nil, errors.Errorf("expected %d segments, got %d", 2*len(collections), len(segments))
	}
	ids := make([]string, 0, len(collections))
	for i, collection := range collections {
		if segments[2*i] != collection {
			return nil, errors.Errorf("expected collection %q, got %q", collection, segments[2*i])
		}
		id := segments[2*i+1]
		if id == "" {
			return nil, errors.Errorf("empty ID for collection %q", collection)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
