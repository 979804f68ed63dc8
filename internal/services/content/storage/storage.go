// Package storage defines the storage-form representation of content
// entities: keyed records with scalar columns and ordered reference sets.
//
// Records are the relational half of the dual representation. They carry
// bookkeeping timestamps the business layer never sees, and they hold
// references as association entries rather than embedded values. Converters
// between the two forms live in the registry package; this package only
// defines the shapes and the typed field accessors that turn a malformed row
// into a CorruptStorageRow error instead of a silent default.
package storage

import (
	"fmt"
	"time"

	apperrors "github.com/louisbranch/lorekeeper/internal/platform/errors"
	"github.com/louisbranch/lorekeeper/internal/services/content/domain/ident"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// Key identifies one stored entity row.
type Key struct {
	Prefix  string
	Numeric int64
	Scope   ident.Scope
}

// ID returns the business identifier for the key.
func (k Key) ID() ident.ID {
	return ident.ID{Prefix: k.Prefix, Numeric: k.Numeric}
}

// RefSet is one ordered reference list persisted as association rows.
type RefSet struct {
	Name string
	IDs  []ident.ID
}

// Record is the storage form of one entity.
//
// Fields maps scalar column names to driver-compatible values (string, int64,
// bool). CreatedAt/UpdatedAt are storage bookkeeping and are not mapped into
// the business form.
type Record struct {
	Key       Key
	Fields    map[string]any
	Refs      []RefSet
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RefSetByName returns the named reference set, or an empty set when the
// record carries none under that name.
func (r Record) RefSetByName(name string) RefSet {
	for _, set := range r.Refs {
		if set.Name == name {
			return set
		}
	}
	return RefSet{Name: name}
}

// CorruptRow wraps a row-shape fault as a CorruptStorageRow error.
func CorruptRow(table string, cause error) error {
	return apperrors.Wrap(apperrors.CodeCorruptStorageRow, fmt.Sprintf("corrupt %s row", table), cause)
}

// StringField reads a required text column from the record.
func StringField(r Record, name string) (string, error) {
	raw, ok := r.Fields[name]
	if !ok {
		return "", CorruptRow(r.Key.Prefix, fmt.Errorf("missing column %s", name))
	}
	switch value := raw.(type) {
	case string:
		return value, nil
	case []byte:
		return string(value), nil
	}
	return "", CorruptRow(r.Key.Prefix, fmt.Errorf("column %s is not text", name))
}

// IntField reads a required integer column from the record.
func IntField(r Record, name string) (int64, error) {
	raw, ok := r.Fields[name]
	if !ok {
		return 0, CorruptRow(r.Key.Prefix, fmt.Errorf("missing column %s", name))
	}
	value, ok := raw.(int64)
	if !ok {
		return 0, CorruptRow(r.Key.Prefix, fmt.Errorf("column %s is not an integer", name))
	}
	return value, nil
}

// BoolField reads a required boolean column (persisted as 0/1) from the record.
func BoolField(r Record, name string) (bool, error) {
	raw, ok := r.Fields[name]
	if !ok {
		return false, CorruptRow(r.Key.Prefix, fmt.Errorf("missing column %s", name))
	}
	switch value := raw.(type) {
	case bool:
		return value, nil
	case int64:
		return value != 0, nil
	}
	return false, CorruptRow(r.Key.Prefix, fmt.Errorf("column %s is not a boolean", name))
}

// RefField reads an optional single reference persisted as a prefix/numeric
// column pair. An empty prefix with numeric zero reads back as unset.
func RefField(r Record, name string) (ident.ID, error) {
	prefix, err := StringField(r, name+"_prefix")
	if err != nil {
		return ident.ID{}, err
	}
	numeric, err := IntField(r, name+"_numeric")
	if err != nil {
		return ident.ID{}, err
	}
	id := ident.ID{Prefix: prefix, Numeric: numeric}
	if prefix == "" && numeric != 0 {
		return ident.ID{}, CorruptRow(r.Key.Prefix, fmt.Errorf("reference %s has numeric without prefix", name))
	}
	return id, nil
}

// RefColumns renders an optional single reference into its column pair.
func RefColumns(fields map[string]any, name string, id ident.ID) {
	fields[name+"_prefix"] = id.Prefix
	fields[name+"_numeric"] = id.Numeric
}
