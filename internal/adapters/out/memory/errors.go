package memory

import (
	"fmt"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/pkg/errs"

	"github.com/google/uuid"
)

func uuidToKernel(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func errSessionExists(id uuid.UUID) error {
	return errs.NewValueIsInvalidErrorWithCause("session", fmt.Errorf("session %s already exists", id))
}

func errSessionNotFound(id uuid.UUID) error {
	return errs.NewObjectNotFoundError("session", id)
}

func errStaleVersion(id uuid.UUID, expected, actual int) error {
	return errs.NewVersionIsInvalidErrorWithCause(
		"session",
		fmt.Errorf("session %s was loaded at version %d but is at version %d", id, expected, actual),
	)
}
