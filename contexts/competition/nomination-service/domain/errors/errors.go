package errors

import "errors"

var (
	ErrInvalidNominationInput = errors.New("invalid nomination input")
	ErrNominationNotFound     = errors.New("nomination not found")
	ErrInvalidCategory        = errors.New("invalid award category")
	ErrInvalidStatus          = errors.New("invalid nomination status")
	ErrInvalidScore           = errors.New("score must be between 0 and 100")
	ErrStatusLocked           = errors.New("nomination status can no longer change")
	ErrForbidden              = errors.New("nomination belongs to another school")
	ErrConflict               = errors.New("nomination store conflict")
)
