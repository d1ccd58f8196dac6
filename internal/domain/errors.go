package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired, please log in again")
	ErrSecretNotFound  = errors.New("secret not found")
	ErrRunNotFound     = errors.New("analysis run not found")
	ErrPackNotFound    = errors.New("starter pack not found")
)

// ResolutionError reports that a handle, DID or hosting endpoint could not be found.
type ResolutionError struct {
	Subject string
	Err     error
}

func (e *ResolutionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("resolve %s", e.Subject)
	}
	return fmt.Sprintf("resolve %s: %v", e.Subject, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// DownloadError reports a repository transfer that did not start successfully.
type DownloadError struct {
	DID        string
	StatusCode int
	Err        error
}

func (e *DownloadError) Error() string {
	msg := fmt.Sprintf("download repository %s", e.DID)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": status %d", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DownloadError) Unwrap() error { return e.Err }

// APIError is a failure reported by an XRPC host.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	code := e.Code
	if code == "" {
		code = "Unknown"
	}
	if e.Message == "" {
		return fmt.Sprintf("xrpc %d %s", e.Status, code)
	}
	return fmt.Sprintf("xrpc %d %s: %s", e.Status, code, e.Message)
}

// AuthError marks an expired or invalid access credential. It is recoverable
// once through session renewal.
type AuthError struct {
	APIError
}

func (e *AuthError) Error() string {
	return "unauthorized: " + e.APIError.Error()
}

func (e *AuthError) Unwrap() error { return &e.APIError }

// SessionExpiredError is returned when renewal itself failed. The user must log in again.
type SessionExpiredError struct {
	Err error
}

func (e *SessionExpiredError) Error() string {
	return ErrSessionExpired.Error()
}

func (e *SessionExpiredError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSessionExpired}
	}
	return []error{ErrSessionExpired, e.Err}
}
