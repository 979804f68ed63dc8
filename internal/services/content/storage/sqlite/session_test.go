package sqlite

import (
	"context"
	"errors"
	"testing"
)

func TestSessionCommitClosesForGood(t *testing.T) {
	store := openTestStore(t)
	sess, err := store.Begin(context.Background())
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := sess.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := sess.Commit(); !errors.Is(err, ErrSessionReuse) {
		t.Fatalf("expected ErrSessionReuse on second commit, got %v", err)
	}
	if err := sess.Rollback(); !errors.Is(err, ErrSessionReuse) {
		t.Fatalf("expected ErrSessionReuse on rollback after commit, got %v", err)
	}
	if sess.Active() {
		t.Fatalf("expected committed session to be inactive")
	}
}

func TestSessionRollbackClosesForGood(t *testing.T) {
	store := openTestStore(t)
	sess, err := store.Begin(context.Background())
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := sess.Rollback(); err != nil {
		t.Fatalf("rollback: %v", err)
	}
	if err := sess.Commit(); !errors.Is(err, ErrSessionReuse) {
		t.Fatalf("expected ErrSessionReuse on commit after rollback, got %v", err)
	}
}

func TestWithSessionAutoCommit(t *testing.T) {
	store := openTestStore(t)
	var seen *Session
	err := store.WithSession(context.Background(), nil, true, func(sess *Session) error {
		seen = sess
		return nil
	})
	if err != nil {
		t.Fatalf("with session: %v", err)
	}
	if seen.Active() {
		t.Fatalf("expected auto-commit to close the session")
	}
}

func TestWithSessionRequiresSessionForManualComposition(t *testing.T) {
	store := openTestStore(t)
	err := store.WithSession(context.Background(), nil, false, func(*Session) error {
		t.Fatalf("op should not run without a session")
		return nil
	})
	if err == nil {
		t.Fatalf("expected manual composition without a session to fail")
	}
}

func TestWithSessionKeepsCallerSessionOpen(t *testing.T) {
	store := openTestStore(t)
	sess, err := store.Begin(context.Background())
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := store.WithSession(context.Background(), sess, false, func(*Session) error {
		return nil
	}); err != nil {
		t.Fatalf("with session: %v", err)
	}
	if !sess.Active() {
		t.Fatalf("expected caller session to stay open")
	}
	if err := sess.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
}

func TestWithSessionRollsBackOnOpError(t *testing.T) {
	store := openTestStore(t)
	sess, err := store.Begin(context.Background())
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	boom := errors.New("boom")
	if err := store.WithSession(context.Background(), sess, false, func(*Session) error {
		return boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if sess.Active() {
		t.Fatalf("expected failed op to roll the session back")
	}
}

func TestWithSessionRejectsClosedSession(t *testing.T) {
	store := openTestStore(t)
	sess, err := store.Begin(context.Background())
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := sess.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	err = store.WithSession(context.Background(), sess, true, func(*Session) error {
		t.Fatalf("op should not run on a closed session")
		return nil
	})
	if !errors.Is(err, ErrSessionReuse) {
		t.Fatalf("expected ErrSessionReuse, got %v", err)
	}
}

func TestTransactionRollsBackOnPanic(t *testing.T) {
	store := openTestStore(t)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic to propagate")
		}
	}()
	_ = store.Transaction(context.Background(), func(*Session) error {
		panic("boom")
	})
}
