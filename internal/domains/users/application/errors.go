package application

import "errors"

// ErrInvalidInput signals the request is missing required data.
var ErrInvalidInput = errors.New("invalid user input")
