package domain

import (
	"errors"
	"fmt"

	"absensi/internal/domain/entities"
)

// Domain errors.
var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrNIKTaken            = errors.New("nik already registered")
	ErrTokenTaken          = errors.New("check-in token already in use")
	ErrTokenExhausted      = errors.New("could not generate a unique check-in token")
)

// ValidationError rejects a malformed input field. No record is created or
// modified when it is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AlreadyCheckedInError reports a repeat check-in. Participant is the stored
// record, untouched by the call that produced this error.
type AlreadyCheckedInError struct {
	Participant *entities.Participant
}

func (e *AlreadyCheckedInError) Error() string {
	return "participant already checked in"
}
