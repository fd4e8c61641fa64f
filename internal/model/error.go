package model

import "errors"

var (
	ErrValidation        = errors.New("validation error")            // rejected before any remote call
	ErrUnauthorized      = errors.New("unauthorized")                // missing/expired token, 401
	ErrForbidden         = errors.New("forbidden")                   // denied by policy or 403
	ErrNotFound          = errors.New("not found")                   // 404
	ErrConflict          = errors.New("conflict")                    // 409 or terminal-state violation
	ErrBadGateway        = errors.New("bad gateway")                 // transport failure, 5xx
	ErrInvalidResponse   = errors.New("structurally invalid response") // HTML where JSON was expected
	ErrUnknownStatus     = errors.New("unknown status")
	ErrPartialCompletion = errors.New("partially completed")
)
