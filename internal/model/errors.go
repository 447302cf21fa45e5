package model

import "errors"

// Validation failures detected before any computation begins. None are
// retryable; the boundary maps each to HTTP 400.
var (
	ErrInvalidJurisdiction = errors.New("invalid jurisdiction")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidRange        = errors.New("invalid range")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrRuleNotFound        = errors.New("rule not found")
)
