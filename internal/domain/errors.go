package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a profile retrieval failure. The kind, not the message
// text, decides whether the visitor has to sign in again.
type ErrorKind string

const (
	KindNoToken     ErrorKind = "no_token"
	KindAuthExpired ErrorKind = "auth_expired"
	KindForbidden   ErrorKind = "forbidden"
	KindUnavailable ErrorKind = "unavailable"
	KindGeneric     ErrorKind = "generic"
)

// Messages the profile API is known to produce. ClassifyMessage maps them to
// their kinds for backends that send nothing but a message.
const (
	MsgNoToken     = "No authentication token found"
	MsgAuthExpired = "Authentication expired"
	MsgForbidden   = "Failed to fetch profile: 403"
)

// ProfileError is the error returned by every ProfileGateway implementation.
type ProfileError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *ProfileError) Error() string {
	return e.Message
}

func (e *ProfileError) Unwrap() error {
	return e.Cause
}

// AuthFailure reports whether the error means the credential is unusable.
func (e *ProfileError) AuthFailure() bool {
	switch e.Kind {
	case KindNoToken, KindAuthExpired, KindForbidden:
		return true
	default:
		return false
	}
}

// NewProfileError builds a ProfileError with the given kind and message.
func NewProfileError(kind ErrorKind, message string, cause error) *ProfileError {
	return &ProfileError{Kind: kind, Message: message, Cause: cause}
}

// ErrNoToken is returned when a fetch is attempted without a credential.
var ErrNoToken = NewProfileError(KindNoToken, MsgNoToken, nil)

// ClassifyMessage builds a ProfileError from a bare message, recognizing the
// known authentication failures by exact text.
func ClassifyMessage(message string) *ProfileError {
	switch message {
	case MsgNoToken:
		return NewProfileError(KindNoToken, message, nil)
	case MsgAuthExpired:
		return NewProfileError(KindAuthExpired, message, nil)
	case MsgForbidden:
		return NewProfileError(KindForbidden, message, nil)
	default:
		return NewProfileError(KindGeneric, message, nil)
	}
}

// StatusError builds the error for a non-successful HTTP status from the
// profile API.
func StatusError(status int) *ProfileError {
	switch status {
	case 401:
		return NewProfileError(KindAuthExpired, MsgAuthExpired, nil)
	case 403:
		return NewProfileError(KindForbidden, MsgForbidden, nil)
	default:
		return NewProfileError(KindGeneric, fmt.Sprintf("Failed to fetch profile: %d", status), nil)
	}
}

// AsProfileError converts any error into a ProfileError. Errors that are not
// already ProfileErrors are generic failures carrying their own text.
func AsProfileError(err error) *ProfileError {
	if err == nil {
		return nil
	}
	var pe *ProfileError
	if errors.As(err, &pe) {
		return pe
	}
	return NewProfileError(KindGeneric, err.Error(), err)
}

// IsAuthFailure reports whether err requires the visitor to sign in again.
func IsAuthFailure(err error) bool {
	var pe *ProfileError
	return errors.As(err, &pe) && pe.AuthFailure()
}
