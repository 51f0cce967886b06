package commands

import (
	"errors"

	"laundry/internal/pkg/errs"
)

// storageError classifies a repository failure. Not-found is translated by
// notFound, a lost version race becomes ConcurrentModification, and anything
// else (including rows that no longer restore) is an infrastructure fault.
func storageError(operation string, err error, notFound func() error) error {
	if err == nil {
		return nil
	}

	var wfErr *errs.WorkflowError
	switch {
	case errors.As(err, &wfErr):
		return err
	case notFound != nil && errors.Is(err, errs.ErrObjectNotFound):
		return notFound()
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return errs.NewConcurrentModificationError(err)
	}
	return errs.NewInfrastructureError(operation, err)
}
