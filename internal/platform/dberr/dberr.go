// Copyright (c) 2026 Ratematch. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ldelorme/ratematch/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// The action tag names the failed operation and is kept on the cause chain
// for server-side logging.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. SQLSTATE classification
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgerrcode.UniqueViolation:
			return apperr.Conflict("Resource already exists")
		case pgerrcode.IsConnectionException(pgErr.Code):
			return apperr.ServiceUnavailable("Database is unavailable")
		}
	}

	// 3. Failures before a query even runs (dial errors, pool acquisition)
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return apperr.ServiceUnavailable("Database is unavailable")
	}

	// 4. Unknown query errors become Internal Server Errors
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// IsUniqueViolation reports whether err is a unique-constraint violation
// (SQLSTATE 23505). Stores use it to attach a resource-specific message
// before falling back to [Wrap].
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
