package database

import (
	"context"
	"errors"

	"mentorhub/core/logger"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// WithinTransaction runs fn inside a transaction, rolling back on any error
// or panic. Multi-table writes (completion + monitoring session, student
// cascade delete) must go through here so partial state is never visible.
func (d *Database) WithinTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := d.sqlx.BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("Database:WithinTransaction:Begin:Error:", err)
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error("Database:WithinTransaction:Rollback:Error:", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.Error("Database:WithinTransaction:Commit:Error:", err)
		return err
	}
	return nil
}

// Postgres error codes the schema constraints raise as concurrency backstops
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// IsUniqueViolation reports whether err is a unique-index violation, e.g. the
// one-active-appointment-per-student partial index firing on a racing insert.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}

// IsExclusionViolation reports whether err is an exclusion-constraint
// violation, e.g. two overlapping appointment ranges for one faculty.
func IsExclusionViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgExclusionViolation
	}
	return false
}
