package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrorKind classifies store failures so call sites can switch on a tag
// instead of string-matching driver messages.
type ErrorKind string

const (
	// KindRelationMissing means the schema has not been provisioned yet
	// (Postgres 42P01, "relation does not exist"). It is a configuration
	// state, not a data error.
	KindRelationMissing ErrorKind = "relation_missing"
	KindNotFound        ErrorKind = "not_found"
	KindUnavailable     ErrorKind = "unavailable"
	KindInternal        ErrorKind = "internal"
)

const pgUndefinedTable = "42P01"

// StoreError is the tagged result for every repository failure.
type StoreError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// KindOf extracts the kind from an error chain, KindInternal when the
// error is not a StoreError.
func KindOf(err error) ErrorKind {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

func wrapError(op string, err error) error {
	return &StoreError{Kind: classify(err), Op: op, Err: err}
}

func classify(err error) ErrorKind {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pgUndefinedTable {
		return KindRelationMissing
	}
	if errors.Is(err, sql.ErrNoRows) {
		return KindNotFound
	}
	if errors.Is(err, sql.ErrConnDone) {
		return KindUnavailable
	}
	return KindInternal
}
