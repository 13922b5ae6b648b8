package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned when a grid is initialized with a negative size.
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrInvalidInput is returned when seed data or a step count cannot be applied to the grid.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotReady is returned by operations on a grid that was never initialized or was destroyed.
	ErrNotReady = errors.New("grid not initialized")
)
