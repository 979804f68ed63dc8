package app

import (
	"context"
	"encoding/json"
	"strconv"

	apperrors "github.com/louisbranch/lorekeeper/internal/platform/errors"
	"github.com/louisbranch/lorekeeper/internal/services/content/domain"
	"github.com/louisbranch/lorekeeper/internal/services/content/domain/ident"
	"github.com/louisbranch/lorekeeper/internal/services/content/registry"
	"github.com/louisbranch/lorekeeper/internal/services/content/storage"
	"github.com/louisbranch/lorekeeper/internal/services/content/storage/sqlite"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Service exposes identity-aware CRUD over every registered entity type.
//
// Write operations accept an optional session. A nil session runs the
// operation in its own unit of work; a caller-supplied session joins the
// caller's unit of work and leaves commit ownership with the caller.
type Service struct {
	store    *sqlite.Store
	registry *registry.Registry
	tracer   trace.Tracer
}

// NewService wires a content service over a store and registry.
func NewService(store *sqlite.Store, reg *registry.Registry) *Service {
	if reg == nil {
		reg = registry.Default()
	}
	return &Service{
		store:    store,
		registry: reg,
		tracer:   otel.Tracer("lorekeeper/content"),
	}
}

// Registry returns the registry the service dispatches over.
func (s *Service) Registry() *registry.Registry {
	return s.registry
}

// Transaction runs fn inside one unit of work shared by every service call
// that receives the supplied session. The work commits only if fn returns
// nil; any error or panic discards all of it.
func (s *Service) Transaction(ctx context.Context, fn func(sess *sqlite.Session) error) error {
	ctx, span := s.tracer.Start(ctx, "content.Transaction")
	defer span.End()
	if err := s.store.Transaction(ctx, fn); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// Create validates a candidate payload, allocates the next identifier for the
// prefix under the scope, and persists the entity.
//
// Candidates must arrive without an identifier; identity is assigned here and
// never supplied by the caller.
func (s *Service) Create(ctx context.Context, sess *sqlite.Session, prefix string, scope ident.Scope, candidate json.RawMessage) (domain.Entity, error) {
	ctx, span := s.tracer.Start(ctx, "content.Create")
	defer span.End()

	entity, err := s.create(ctx, sess, prefix, scope, candidate)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return entity, nil
}

func (s *Service) create(ctx context.Context, sess *sqlite.Session, prefix string, scope ident.Scope, candidate json.RawMessage) (domain.Entity, error) {
	reg, err := s.registry.Resolve(prefix)
	if err != nil {
		return nil, err
	}
	if !scope.Valid() {
		return nil, invalidScope(scope)
	}

	entity, err := reg.Decode(candidate)
	if err != nil {
		return nil, err
	}
	if !entity.ObjectID().IsUnset() {
		return nil, apperrors.WithMetadata(apperrors.CodeImmutableIdentity,
			"candidates must not carry an identifier",
			map[string]string{"ID": entity.ObjectID().String()})
	}

	var created domain.Entity
	err = s.store.WithSession(ctx, sess, sess == nil, func(tx *sqlite.Session) error {
		numeric, err := s.store.AllocateID(ctx, tx, reg.Prefix, scope)
		if err != nil {
			return err
		}
		created = reg.WithID(entity, ident.ID{Prefix: reg.Prefix, Numeric: numeric})

		rec, err := reg.ToRecord(created)
		if err != nil {
			return err
		}
		rec.Key.Scope = scope
		return s.store.InsertRecord(ctx, tx, reg, rec)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Get loads one entity by identifier under a scope.
func (s *Service) Get(ctx context.Context, scope ident.Scope, id ident.ID) (domain.Entity, error) {
	ctx, span := s.tracer.Start(ctx, "content.Get")
	defer span.End()

	entity, err := s.get(ctx, scope, id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return entity, nil
}

func (s *Service) get(ctx context.Context, scope ident.Scope, id ident.ID) (domain.Entity, error) {
	reg, err := s.registry.Resolve(id.Prefix)
	if err != nil {
		return nil, err
	}
	if !scope.Valid() {
		return nil, invalidScope(scope)
	}

	rec, err := s.store.GetRecord(ctx, nil, reg, storage.Key{Prefix: reg.Prefix, Numeric: id.Numeric, Scope: scope})
	if err != nil {
		return nil, err
	}
	return reg.FromRecord(rec)
}

// List loads every entity of one type under a scope in identifier order.
func (s *Service) List(ctx context.Context, scope ident.Scope, prefix string) ([]domain.Entity, error) {
	ctx, span := s.tracer.Start(ctx, "content.List")
	defer span.End()

	entities, err := s.list(ctx, scope, prefix)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return entities, nil
}

func (s *Service) list(ctx context.Context, scope ident.Scope, prefix string) ([]domain.Entity, error) {
	reg, err := s.registry.Resolve(prefix)
	if err != nil {
		return nil, err
	}
	if !scope.Valid() {
		return nil, invalidScope(scope)
	}

	records, err := s.store.ListRecords(ctx, reg, scope)
	if err != nil {
		return nil, err
	}
	entities := make([]domain.Entity, 0, len(records))
	for _, rec := range records {
		entity, err := reg.FromRecord(rec)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// Update replaces the stored entity behind an identifier with a validated
// candidate. The candidate either omits its identifier or repeats the target
// one exactly; any other identifier fails with ImmutableIdentity.
func (s *Service) Update(ctx context.Context, sess *sqlite.Session, scope ident.Scope, id ident.ID, candidate json.RawMessage) (domain.Entity, error) {
	ctx, span := s.tracer.Start(ctx, "content.Update")
	defer span.End()

	entity, err := s.update(ctx, sess, scope, id, candidate)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return entity, nil
}

func (s *Service) update(ctx context.Context, sess *sqlite.Session, scope ident.Scope, id ident.ID, candidate json.RawMessage) (domain.Entity, error) {
	reg, err := s.registry.Resolve(id.Prefix)
	if err != nil {
		return nil, err
	}
	if !scope.Valid() {
		return nil, invalidScope(scope)
	}

	entity, err := reg.Decode(candidate)
	if err != nil {
		return nil, err
	}
	candidateID := entity.ObjectID()
	if !candidateID.IsUnset() && candidateID != (ident.ID{Prefix: reg.Prefix, Numeric: id.Numeric}) {
		return nil, apperrors.WithMetadata(apperrors.CodeImmutableIdentity,
			"stored identifiers cannot change",
			map[string]string{"ID": candidateID.String()})
	}

	updated := reg.WithID(entity, ident.ID{Prefix: reg.Prefix, Numeric: id.Numeric})
	err = s.store.WithSession(ctx, sess, sess == nil, func(tx *sqlite.Session) error {
		rec, err := reg.ToRecord(updated)
		if err != nil {
			return err
		}
		rec.Key.Scope = scope
		return s.store.UpdateRecord(ctx, tx, reg, rec)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the entity behind an identifier. The identifier is retired
// for good, and entities that referenced the deleted one keep their dangling
// references.
func (s *Service) Delete(ctx context.Context, sess *sqlite.Session, scope ident.Scope, id ident.ID) error {
	ctx, span := s.tracer.Start(ctx, "content.Delete")
	defer span.End()

	if err := s.delete(ctx, sess, scope, id); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (s *Service) delete(ctx context.Context, sess *sqlite.Session, scope ident.Scope, id ident.ID) error {
	reg, err := s.registry.Resolve(id.Prefix)
	if err != nil {
		return err
	}
	if !scope.Valid() {
		return invalidScope(scope)
	}

	return s.store.WithSession(ctx, sess, sess == nil, func(tx *sqlite.Session) error {
		return s.store.DeleteRecord(ctx, tx, reg, storage.Key{Prefix: reg.Prefix, Numeric: id.Numeric, Scope: scope})
	})
}

// Exists reports whether an entity row is present. Passing a session lets the
// check observe uncommitted writes in the same unit of work.
func (s *Service) Exists(ctx context.Context, sess *sqlite.Session, scope ident.Scope, id ident.ID) (bool, error) {
	reg, err := s.registry.Resolve(id.Prefix)
	if err != nil {
		return false, err
	}
	if !scope.Valid() {
		return false, invalidScope(scope)
	}
	return s.store.RecordExists(ctx, sess, reg, storage.Key{Prefix: reg.Prefix, Numeric: id.Numeric, Scope: scope})
}

func invalidScope(scope ident.Scope) error {
	return apperrors.WithMetadata(apperrors.CodeInvalidScope,
		"owner scope cannot be resolved",
		map[string]string{"Scope": strconv.FormatInt(int64(scope), 10)})
}
