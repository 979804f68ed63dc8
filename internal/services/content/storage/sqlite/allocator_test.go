package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	apperrors "github.com/louisbranch/lorekeeper/internal/platform/errors"
	"github.com/louisbranch/lorekeeper/internal/services/content/domain"
	"github.com/louisbranch/lorekeeper/internal/services/content/domain/ident"
)

func allocate(t *testing.T, store *Store, prefix string, scope ident.Scope) int64 {
	t.Helper()
	var numeric int64
	err := store.Transaction(context.Background(), func(sess *Session) error {
		var err error
		numeric, err = store.AllocateID(context.Background(), sess, prefix, scope)
		return err
	})
	if err != nil {
		t.Fatalf("allocate %s: %v", prefix, err)
	}
	return numeric
}

func TestAllocateIDSequencesStartAtOne(t *testing.T) {
	store := openTestStore(t)

	for want := int64(1); want <= 3; want++ {
		if got := allocate(t, store, domain.PrefixRule, ident.Global); got != want {
			t.Fatalf("expected rule numeric %d, got %d", want, got)
		}
	}

	// A different prefix runs its own sequence from 1.
	if got := allocate(t, store, domain.PrefixCharacter, ident.Global); got != 1 {
		t.Fatalf("expected first character numeric 1, got %d", got)
	}
	if got := allocate(t, store, domain.PrefixCharacter, ident.Global); got != 2 {
		t.Fatalf("expected second character numeric 2, got %d", got)
	}
}

func TestAllocateIDSequencesAreScoped(t *testing.T) {
	store := openTestStore(t)

	if got := allocate(t, store, domain.PrefixRule, ident.Global); got != 1 {
		t.Fatalf("expected global numeric 1, got %d", got)
	}
	if got := allocate(t, store, domain.PrefixRule, ident.Scope(7)); got != 1 {
		t.Fatalf("expected scoped sequence to start at 1, got %d", got)
	}
	if got := allocate(t, store, domain.PrefixRule, ident.Global); got != 2 {
		t.Fatalf("expected global numeric 2, got %d", got)
	}
}

func TestAllocateIDSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if got := allocate(t, store, domain.PrefixItem, ident.Global); got != 1 {
		t.Fatalf("expected numeric 1, got %d", got)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer func() {
		if err := reopened.Close(); err != nil {
			t.Errorf("close reopened store: %v", err)
		}
	}()
	if got := allocate(t, reopened, domain.PrefixItem, ident.Global); got != 2 {
		t.Fatalf("expected sequence to continue at 2, got %d", got)
	}
}

func TestAllocateIDRollbackReleasesNumeric(t *testing.T) {
	store := openTestStore(t)
	boom := errors.New("boom")

	err := store.Transaction(context.Background(), func(sess *Session) error {
		if _, err := store.AllocateID(context.Background(), sess, domain.PrefixArc, ident.Global); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	// The counter increment rolled back with the transaction, so the next
	// allocation issues 1 again.
	if got := allocate(t, store, domain.PrefixArc, ident.Global); got != 1 {
		t.Fatalf("expected numeric 1 after rollback, got %d", got)
	}
}

func TestAllocateIDRejectsBadInput(t *testing.T) {
	store := openTestStore(t)

	err := store.Transaction(context.Background(), func(sess *Session) error {
		_, err := store.AllocateID(context.Background(), sess, "", ident.Global)
		return err
	})
	if !apperrors.IsCode(err, apperrors.CodeUnknownPrefix) {
		t.Fatalf("expected UnknownPrefix, got %v", err)
	}

	err = store.Transaction(context.Background(), func(sess *Session) error {
		_, err := store.AllocateID(context.Background(), sess, domain.PrefixRule, ident.Scope(-1))
		return err
	})
	if !apperrors.IsCode(err, apperrors.CodeInvalidScope) {
		t.Fatalf("expected InvalidScope, got %v", err)
	}
}

func TestAllocateIDRejectsClosedSession(t *testing.T) {
	store := openTestStore(t)
	sess, err := store.Begin(context.Background())
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := sess.Rollback(); err != nil {
		t.Fatalf("rollback: %v", err)
	}
	if _, err := store.AllocateID(context.Background(), sess, domain.PrefixRule, ident.Global); !errors.Is(err, ErrSessionReuse) {
		t.Fatalf("expected ErrSessionReuse, got %v", err)
	}
}
