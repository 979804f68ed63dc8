package sqlite

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/lorekeeper/internal/platform/errors"
	"github.com/louisbranch/lorekeeper/internal/services/content/domain/ident"
)

// allocateSQL reserves the next numeric for a (prefix, scope) pair. The
// counter row stores the next unissued value, so the first allocation for a
// pair issues 1. The upsert runs inside the caller's transaction: an aborted
// create rolls the increment back together with the entity row.
const allocateSQL = `INSERT INTO id_counters (prefix, owner_scope, next_numeric)
 VALUES (?, ?, 2)
 ON CONFLICT (prefix, owner_scope) DO UPDATE SET next_numeric = next_numeric + 1
 RETURNING next_numeric - 1`

// AllocateID issues the lowest unused numeric for the (prefix, scope) pair.
//
// Issued values are unique and never reissued, even after the entity that
// consumed one is deleted. Concurrent allocations for the same pair serialize
// on the counter row rather than failing.
func (s *Store) AllocateID(ctx context.Context, sess *Session, prefix string, scope ident.Scope) (int64, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return 0, apperrors.New(apperrors.CodeUnknownPrefix, "allocation prefix is required")
	}
	if !scope.Valid() {
		return 0, apperrors.WithMetadata(apperrors.CodeInvalidScope,
			"owner scope cannot be resolved",
			map[string]string{"Scope": strconv.FormatInt(int64(scope), 10)})
	}
	if !sess.Active() {
		return 0, ErrSessionReuse
	}

	var numeric int64
	if err := sess.tx.QueryRowContext(ctx, allocateSQL, prefix, int64(scope)).Scan(&numeric); err != nil {
		return 0, apperrors.Wrap(apperrors.CodeStorageFailure, fmt.Sprintf("allocate %s id", prefix), err)
	}
	return numeric, nil
}
