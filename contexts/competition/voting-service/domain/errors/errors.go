package errors

import "errors"

var (
	ErrInvalidVoteInput      = errors.New("invalid vote input")
	ErrInvalidTokenBatch     = errors.New("token batch size must be between 1 and 1000")
	ErrTokenInvalid          = errors.New("voting token is invalid")
	ErrTokenAlreadyUsed      = errors.New("voting token has already been used")
	ErrTokenExpired          = errors.New("voting token has expired")
	ErrCodeCollision         = errors.New("voting code collision")
	ErrNominationNotFound    = errors.New("nomination not found")
	ErrNominationNotEligible = errors.New("nomination is not open for public voting")
	ErrVoteNotFound          = errors.New("vote not found")
	ErrConflict              = errors.New("voting store conflict")
)
