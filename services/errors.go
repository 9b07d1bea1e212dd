package services

import "errors"

// Error taxonomy surfaced by controllers: ErrInvalidInput maps to 400,
// ErrNotFound to 404, anything else to 500. Wrap with fmt.Errorf("%w: ...")
// to attach detail.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)
