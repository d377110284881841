package exercise

import "errors"

// ErrInvalidArgument is returned when an input falls outside an operation's domain.
var ErrInvalidArgument = errors.New("invalid argument")
