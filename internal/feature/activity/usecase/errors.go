// Package usecase implements the business logic for the activity feature.
package usecase

import "errors"

var (
	// ErrAlreadySubmittedToday is returned when an account attempts a second submission for the same calendar day.
	ErrAlreadySubmittedToday = errors.New("activity already submitted for today")

	// ErrInvalidInput is returned when a submission fails field validation.
	ErrInvalidInput = errors.New("invalid activity input")
)
