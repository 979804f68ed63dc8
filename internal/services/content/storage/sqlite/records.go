package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/louisbranch/lorekeeper/internal/platform/errors"
	"github.com/louisbranch/lorekeeper/internal/services/content/domain/ident"
	"github.com/louisbranch/lorekeeper/internal/services/content/registry"
	"github.com/louisbranch/lorekeeper/internal/services/content/storage"
)

// InsertRecord persists a new entity row plus its association rows. The
// write joins the caller's session so identifier allocation and insert
// succeed or fail together.
func (s *Store) InsertRecord(ctx context.Context, sess *Session, reg registry.Registration, rec storage.Record) error {
	if !sess.Active() {
		return ErrSessionReuse
	}

	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = now
	}

	columns := append([]string{"numeric", "owner_scope"}, reg.Columns...)
	columns = append(columns, "created_at", "updated_at")
	args := make([]any, 0, len(columns))
	args = append(args, rec.Key.Numeric, int64(rec.Key.Scope))
	for _, column := range reg.Columns {
		value, ok := rec.Fields[column]
		if !ok {
			return fmt.Errorf("%s record is missing column %s", reg.Prefix, column)
		}
		args = append(args, value)
	}
	args = append(args, toMillis(rec.CreatedAt), toMillis(rec.UpdatedAt))

	query := "INSERT INTO " + reg.Table +
		" (" + strings.Join(columns, ", ") + ") VALUES (" + placeholders(len(columns)) + ")"
	if _, err := sess.tx.ExecContext(ctx, query, args...); err != nil {
		return apperrors.Wrap(apperrors.CodeStorageFailure, "insert "+reg.Table, err)
	}

	return s.replaceRefs(ctx, sess, reg, rec)
}

// GetRecord loads one entity row and its association rows. Reads outside a
// unit of work may pass a nil session.
func (s *Store) GetRecord(ctx context.Context, sess *Session, reg registry.Registration, key storage.Key) (storage.Record, error) {
	q := s.querier(sess)
	query := "SELECT " + strings.Join(reg.Columns, ", ") + selectSuffix(reg.Columns) +
		" FROM " + reg.Table + " WHERE numeric = ? AND owner_scope = ?"

	rec := storage.Record{Key: key, Fields: make(map[string]any, len(reg.Columns))}
	values := make([]any, len(reg.Columns))
	dests := make([]any, 0, len(reg.Columns)+2)
	for i := range values {
		dests = append(dests, &values[i])
	}
	var createdAt, updatedAt int64
	dests = append(dests, &createdAt, &updatedAt)

	if err := q.QueryRowContext(ctx, query, key.Numeric, int64(key.Scope)).Scan(dests...); err != nil {
		if err == sql.ErrNoRows {
			return storage.Record{}, storage.ErrNotFound
		}
		return storage.Record{}, apperrors.Wrap(apperrors.CodeStorageFailure, "get "+reg.Table, err)
	}
	for i, column := range reg.Columns {
		rec.Fields[column] = values[i]
	}
	rec.CreatedAt = fromMillis(createdAt)
	rec.UpdatedAt = fromMillis(updatedAt)

	if err := s.loadRefs(ctx, q, reg, &rec); err != nil {
		return storage.Record{}, err
	}
	return rec, nil
}

// ListRecords loads every entity row of one type under a scope in numeric order.
func (s *Store) ListRecords(ctx context.Context, reg registry.Registration, scope ident.Scope) ([]storage.Record, error) {
	query := "SELECT numeric, " + strings.Join(reg.Columns, ", ") + selectSuffix(reg.Columns) +
		" FROM " + reg.Table + " WHERE owner_scope = ? ORDER BY numeric"

	rows, err := s.sqlDB.QueryContext(ctx, query, int64(scope))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorageFailure, "list "+reg.Table, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []storage.Record
	for rows.Next() {
		rec := storage.Record{
			Key:    storage.Key{Prefix: reg.Prefix, Scope: scope},
			Fields: make(map[string]any, len(reg.Columns)),
		}
		values := make([]any, len(reg.Columns))
		dests := make([]any, 0, len(reg.Columns)+3)
		dests = append(dests, &rec.Key.Numeric)
		for i := range values {
			dests = append(dests, &values[i])
		}
		var createdAt, updatedAt int64
		dests = append(dests, &createdAt, &updatedAt)
		if err := rows.Scan(dests...); err != nil {
			return nil, apperrors.Wrap(apperrors.CodeStorageFailure, "scan "+reg.Table, err)
		}
		for i, column := range reg.Columns {
			rec.Fields[column] = values[i]
		}
		rec.CreatedAt = fromMillis(createdAt)
		rec.UpdatedAt = fromMillis(updatedAt)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorageFailure, "list "+reg.Table, err)
	}

	for i := range records {
		if err := s.loadRefs(ctx, s.sqlDB, reg, &records[i]); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// RecordExists reports whether an entity row exists. The check joins the
// caller's session when one is supplied.
func (s *Store) RecordExists(ctx context.Context, sess *Session, reg registry.Registration, key storage.Key) (bool, error) {
	q := s.querier(sess)
	var found int
	err := q.QueryRowContext(ctx,
		"SELECT 1 FROM "+reg.Table+" WHERE numeric = ? AND owner_scope = ?",
		key.Numeric, int64(key.Scope),
	).Scan(&found)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, apperrors.Wrap(apperrors.CodeStorageFailure, "probe "+reg.Table, err)
	}
	return true, nil
}

// UpdateRecord rewrites an entity row's scalar columns and association rows.
// The creation timestamp is preserved.
func (s *Store) UpdateRecord(ctx context.Context, sess *Session, reg registry.Registration, rec storage.Record) error {
	if !sess.Active() {
		return ErrSessionReuse
	}

	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = time.Now().UTC()
	}

	sets := make([]string, 0, len(reg.Columns)+1)
	args := make([]any, 0, len(reg.Columns)+3)
	for _, column := range reg.Columns {
		value, ok := rec.Fields[column]
		if !ok {
			return fmt.Errorf("%s record is missing column %s", reg.Prefix, column)
		}
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, toMillis(rec.UpdatedAt), rec.Key.Numeric, int64(rec.Key.Scope))

	query := "UPDATE " + reg.Table + " SET " + strings.Join(sets, ", ") +
		" WHERE numeric = ? AND owner_scope = ?"
	res, err := sess.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeStorageFailure, "update "+reg.Table, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.Wrap(apperrors.CodeStorageFailure, "update "+reg.Table, err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return s.replaceRefs(ctx, sess, reg, rec)
}

// DeleteRecord removes an entity row and its own association rows. The
// consumed numeric is never reissued, and association rows held by other
// entities that reference the deleted one are left in place.
func (s *Store) DeleteRecord(ctx context.Context, sess *Session, reg registry.Registration, key storage.Key) error {
	if !sess.Active() {
		return ErrSessionReuse
	}

	for _, spec := range reg.RefSets {
		if _, err := sess.tx.ExecContext(ctx,
			"DELETE FROM "+spec.Table+" WHERE owner_numeric = ? AND owner_scope = ?",
			key.Numeric, int64(key.Scope),
		); err != nil {
			return apperrors.Wrap(apperrors.CodeStorageFailure, "delete "+spec.Table, err)
		}
	}

	res, err := sess.tx.ExecContext(ctx,
		"DELETE FROM "+reg.Table+" WHERE numeric = ? AND owner_scope = ?",
		key.Numeric, int64(key.Scope),
	)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeStorageFailure, "delete "+reg.Table, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.Wrap(apperrors.CodeStorageFailure, "delete "+reg.Table, err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// replaceRefs rewrites every association row owned by the record.
func (s *Store) replaceRefs(ctx context.Context, sess *Session, reg registry.Registration, rec storage.Record) error {
	for _, spec := range reg.RefSets {
		if _, err := sess.tx.ExecContext(ctx,
			"DELETE FROM "+spec.Table+" WHERE owner_numeric = ? AND owner_scope = ?",
			rec.Key.Numeric, int64(rec.Key.Scope),
		); err != nil {
			return apperrors.Wrap(apperrors.CodeStorageFailure, "clear "+spec.Table, err)
		}
		for position, id := range rec.RefSetByName(spec.Name).IDs {
			if _, err := sess.tx.ExecContext(ctx,
				"INSERT INTO "+spec.Table+" (owner_numeric, owner_scope, position, ref_prefix, ref_numeric) VALUES (?, ?, ?, ?, ?)",
				rec.Key.Numeric, int64(rec.Key.Scope), position, id.Prefix, id.Numeric,
			); err != nil {
				return apperrors.Wrap(apperrors.CodeStorageFailure, "insert "+spec.Table, err)
			}
		}
	}
	return nil
}

// loadRefs reads every association row owned by the record in list order.
func (s *Store) loadRefs(ctx context.Context, q dbtx, reg registry.Registration, rec *storage.Record) error {
	for _, spec := range reg.RefSets {
		rows, err := q.QueryContext(ctx,
			"SELECT ref_prefix, ref_numeric FROM "+spec.Table+
				" WHERE owner_numeric = ? AND owner_scope = ? ORDER BY position",
			rec.Key.Numeric, int64(rec.Key.Scope),
		)
		if err != nil {
			return apperrors.Wrap(apperrors.CodeStorageFailure, "load "+spec.Table, err)
		}
		var ids []ident.ID
		for rows.Next() {
			var id ident.ID
			if err := rows.Scan(&id.Prefix, &id.Numeric); err != nil {
				_ = rows.Close()
				return storage.CorruptRow(spec.Table, err)
			}
			ids = append(ids, id)
		}
		if err := rows.Err(); err != nil {
			_ = rows.Close()
			return apperrors.Wrap(apperrors.CodeStorageFailure, "load "+spec.Table, err)
		}
		_ = rows.Close()
		rec.Refs = append(rec.Refs, storage.RefSet{Name: spec.Name, IDs: ids})
	}
	return nil
}

func placeholders(count int) string {
	marks := make([]string, count)
	for i := range marks {
		marks[i] = "?"
	}
	return strings.Join(marks, ", ")
}

// selectSuffix appends the bookkeeping columns to a scalar column list.
func selectSuffix(columns []string) string {
	if len(columns) == 0 {
		return "created_at, updated_at"
	}
	return ", created_at, updated_at"
}
