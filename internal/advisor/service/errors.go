package service

import (
	"crypto-advisor/internal/advisor/allocation"
	"crypto-advisor/internal/advisor/repository"
)

var (
	// ErrInvalidInput marks request validation failures. It is the same value
	// the allocation engine returns, so one errors.Is check covers both.
	ErrInvalidInput = allocation.ErrInvalidInput

	// ErrNotFound marks missing sessions, users, investments and assets.
	ErrNotFound = repository.ErrNotFound
)
