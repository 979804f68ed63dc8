package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/louisbranch/lorekeeper/internal/services/content/domain"
	"github.com/louisbranch/lorekeeper/internal/services/content/domain/ident"
	"github.com/louisbranch/lorekeeper/internal/services/content/registry"
	"github.com/louisbranch/lorekeeper/internal/services/content/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "content.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

func mustResolve(t *testing.T, prefix string) registry.Registration {
	t.Helper()
	reg, err := registry.Default().Resolve(prefix)
	if err != nil {
		t.Fatalf("resolve %s: %v", prefix, err)
	}
	return reg
}

// seedEntity allocates an identifier and persists the entity in one unit of
// work, returning the assigned identifier.
func seedEntity(t *testing.T, store *Store, scope ident.Scope, prefix string, entity domain.Entity) ident.ID {
	t.Helper()
	reg := mustResolve(t, prefix)

	var id ident.ID
	err := store.Transaction(context.Background(), func(sess *Session) error {
		numeric, err := store.AllocateID(context.Background(), sess, reg.Prefix, scope)
		if err != nil {
			return err
		}
		id = ident.ID{Prefix: reg.Prefix, Numeric: numeric}
		rec, err := reg.ToRecord(reg.WithID(entity, id))
		if err != nil {
			return err
		}
		rec.Key.Scope = scope
		return store.InsertRecord(context.Background(), sess, reg, rec)
	})
	if err != nil {
		t.Fatalf("seed %s: %v", reg.Prefix, err)
	}
	return id
}

func getEntity(t *testing.T, store *Store, scope ident.Scope, id ident.ID) (domain.Entity, error) {
	t.Helper()
	reg := mustResolve(t, id.Prefix)
	rec, err := store.GetRecord(context.Background(), nil, reg, storage.Key{Prefix: id.Prefix, Numeric: id.Numeric, Scope: scope})
	if err != nil {
		return nil, err
	}
	return reg.FromRecord(rec)
}
