package application

import "errors"

var (
	// ErrInvalidInput signals the request violated an order invariant.
	ErrInvalidInput = errors.New("invalid order input")
	// ErrUserNotFound is returned when an order references a user the registry does not know.
	ErrUserNotFound = errors.New("referenced user not found")
)
