package services

import (
	"errors"
	"fmt"
	"log"

	"job-marketplace-api/internal/models"
	"job-marketplace-api/internal/storage"
	"job-marketplace-api/internal/transport/dto"
)

// isValidJobStatusTransition defines the status changes allowed through ChangeStatus.
// Available -> In Progress only happens through SelectApplicant.
func isValidJobStatusTransition(from, to models.JobStatus) bool {
	switch from {
	case models.JobStatusAvailable:
		return to == models.JobStatusCancelled
	case models.JobStatusInProgress:
		return to == models.JobStatusCompleted || to == models.JobStatusCancelled
	case models.JobStatusCompleted, models.JobStatusCancelled:
		// Terminal states
		return false
	default:
		return false
	}
}

// canManageJob reports whether the actor may change a job's status or selection.
func canManageJob(actor dto.Actor, job *models.Job) bool {
	return job.PosterID == actor.ID || actor.Role.IsAdmin()
}

// mapRepoError maps storage errors to service errors
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return fmt.Errorf("%w: %s (email already registered)", ErrConflict, operation)
	}
	if errors.Is(err, storage.ErrDuplicatePhone) {
		return fmt.Errorf("%w: %s (phone number already registered)", ErrConflict, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}
