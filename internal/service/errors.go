package service

import "errors"

var (
	// ErrAnalyticsNotFound signals that a quiz has no analytics record.
	ErrAnalyticsNotFound = errors.New("analytics not found for quiz")

	// ErrEmailTaken signals a registration attempt with an email that is
	// already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown-email and wrong-password
	// login failures so the two are indistinguishable to clients.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
