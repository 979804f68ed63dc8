package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	apperrors "github.com/louisbranch/lorekeeper/internal/platform/errors"
)

type sessionState int

const (
	stateOpen sessionState = iota
	stateCommitted
	stateRolledBack
)

// ErrSessionReuse indicates an attempt to use a session after it closed.
var ErrSessionReuse = apperrors.New(apperrors.CodeSessionReuse, "session has already been closed")

// Session is one unit of work over the content store.
//
// A session is owned by exactly one logical call chain and must never be
// shared across concurrent operations. Once committed or rolled back it is
// closed for good; reuse fails with SessionReuse.
type Session struct {
	tx    *sql.Tx
	state sessionState
}

// Begin opens a new session.
func (s *Store) Begin(ctx context.Context) (*Session, error) {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin session: %w", err)
	}
	return &Session{tx: tx}, nil
}

// Active reports whether the session can still accept work.
func (sess *Session) Active() bool {
	return sess != nil && sess.state == stateOpen
}

// Commit makes the session's accumulated writes durable and closes it.
func (sess *Session) Commit() error {
	if !sess.Active() {
		return ErrSessionReuse
	}
	sess.state = stateCommitted
	if err := sess.tx.Commit(); err != nil {
		return fmt.Errorf("commit session: %w", err)
	}
	return nil
}

// Rollback discards the session's accumulated writes and closes it.
func (sess *Session) Rollback() error {
	if !sess.Active() {
		return ErrSessionReuse
	}
	sess.state = stateRolledBack
	if err := sess.tx.Rollback(); err != nil {
		return fmt.Errorf("rollback session: %w", err)
	}
	return nil
}

// WithSession runs op inside a session, opening one when sess is nil.
//
// On success the session commits iff autoCommit is set; with autoCommit off
// the supplied session stays open and the caller owns the eventual commit.
// On any error the session rolls back whatever it has accumulated and the
// error propagates unchanged.
func (s *Store) WithSession(ctx context.Context, sess *Session, autoCommit bool, op func(*Session) error) error {
	if sess == nil {
		if !autoCommit {
			return fmt.Errorf("manual composition requires an explicit session")
		}
		opened, err := s.Begin(ctx)
		if err != nil {
			return err
		}
		sess = opened
	}
	if !sess.Active() {
		return ErrSessionReuse
	}
	if err := op(sess); err != nil {
		_ = sess.Rollback()
		return err
	}
	if autoCommit {
		return sess.Commit()
	}
	return nil
}

// Transaction runs fn with a dedicated session and commits exactly once on
// success. The session is rolled back and released on error, early return,
// or panic.
func (s *Store) Transaction(ctx context.Context, fn func(*Session) error) error {
	sess, err := s.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if sess.Active() {
			_ = sess.Rollback()
		}
	}()
	if err := fn(sess); err != nil {
		return err
	}
	return sess.Commit()
}
