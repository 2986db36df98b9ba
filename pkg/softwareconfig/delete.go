package softwareconfig

import (
	"errors"
	"fmt"

	"github.com/openstack-go/heat-cli/pkg/heat"
)

// DeleteResult is the result of the deletion of a single software config.
type DeleteResult struct {
	ID string

	// Err is nil when the software config has been deleted.
	Err error
}

// NotFound returns whether the software config didn't exist.
func (r DeleteResult) NotFound() bool {
	return r.Err != nil && isNotFound(r.Err)
}

// DeleteOutcome is the outcome of a batch deletion, results are in the order of the IDs.
type DeleteOutcome struct {
	Results []DeleteResult
}

// Total returns the number of software configs which were attempted.
func (o *DeleteOutcome) Total() int {
	return len(o.Results)
}

// Failures returns the number of software configs which couldn't be deleted, including the ones not found.
func (o *DeleteOutcome) Failures() int {
	var failures int
	for _, result := range o.Results {
		if result.Err != nil {
			failures++
		}
	}
	return failures
}

// Err returns a *DeleteError when at least one deletion failed, nil otherwise.
func (o *DeleteOutcome) Err() error {
	if failures := o.Failures(); failures > 0 {
		return &DeleteError{Failures: failures, Total: o.Total()}
	}
	return nil
}

// DeleteError reports how many deletions failed in a batch.
type DeleteError struct {
	Failures int
	Total    int
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("Unable to delete %d of the %d software configs.", e.Failures, e.Total)
}

func isNotFound(err error) bool {
	return errors.Is(err, heat.ErrNotFound)
}
