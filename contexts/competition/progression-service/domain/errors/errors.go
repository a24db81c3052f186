package errors

import "errors"

var (
	ErrInvalidRegistrationInput = errors.New("invalid participant registration input")
	ErrInvalidLevel             = errors.New("invalid competition level")
	ErrInvalidCategory          = errors.New("invalid drawing category")
	ErrInvalidWinners           = errors.New("invalid winner submission")
	ErrRegistrationNotFound     = errors.New("no participant registration for this category and level")
	ErrConflict                 = errors.New("participant store conflict")
)
