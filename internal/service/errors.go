package service

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrNotFound         = errors.New("not found")
	ErrSubmitInProgress = errors.New("submit already in progress")
)
