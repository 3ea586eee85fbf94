package domain

import "errors"

// Token verification failures. The distinction matters for logging and
// metrics; all of them map to 401 at the transport layer.
var ErrTokenMalformed = errors.New("token malformed")
var ErrTokenSignatureInvalid = errors.New("token signature invalid")
var ErrTokenExpired = errors.New("token expired")

// ErrUnknownSubject is returned when a well-signed, unexpired token refers
// to a user that no longer exists in the credential store.
var ErrUnknownSubject = errors.New("unknown subject")
