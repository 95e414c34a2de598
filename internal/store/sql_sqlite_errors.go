// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/sethvargo/go-retry"
)

// ErrorClassification tells whether a failed statement may succeed if run
// again.
type ErrorClassification int

const (
	// NonRetryable is the classification of every error not listed as
	// retryable, including non-SQLite errors.
	NonRetryable ErrorClassification = iota

	// Retryable marks lock contention: another connection or process held
	// the database.
	Retryable
)

const (
	maxWriteRetries = 3
	writeRetryBase  = 10 * time.Millisecond
)

// SQLiteErrorClassifier classifies errors returned by the go-sqlite3 driver.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return ClassifySQLiteError(sqliteErr)
	}

	return NonRetryable
}

// ClassifySQLiteError reports SQLITE_BUSY and SQLITE_LOCKED as retryable.
func ClassifySQLiteError(err sqlite3.Error) ErrorClassification {
	switch err.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}
	return NonRetryable
}

var writeErrorClassifier = NewSQLiteErrorClassifier()

// execRetrying runs a write statement, retrying with exponential backoff while
// the database is busy or locked.
func (db *DB) execRetrying(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var result sql.Result
	backoff := retry.WithMaxRetries(maxWriteRetries, retry.NewExponential(writeRetryBase))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		result, err = db.ExecContext(ctx, query, args...)
		if writeErrorClassifier.Classify(err) == Retryable {
			return retry.RetryableError(err)
		}
		return err
	})

	return result, err
}
