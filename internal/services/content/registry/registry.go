// Package registry maps entity-type prefixes to their business and storage
// codecs so the content API can dispatch generically over an identifier.
package registry

import (
	"encoding/json"
	"sort"
	"strings"

	apperrors "github.com/louisbranch/lorekeeper/internal/platform/errors"
	"github.com/louisbranch/lorekeeper/internal/services/content/domain"
	"github.com/louisbranch/lorekeeper/internal/services/content/domain/ident"
	"github.com/louisbranch/lorekeeper/internal/services/content/storage"
)

// RefSetSpec names one ordered reference list and its association table.
type RefSetSpec struct {
	Name  string
	Table string
}

// Registration binds one prefix to its types, tables and converter pair.
//
// Decode validates a raw candidate payload into a business entity. ToRecord
// and FromRecord are the lossless converter pair between the business and
// storage forms; neither may drop a reference field.
type Registration struct {
	Prefix  string
	Table   string
	Columns []string
	RefSets []RefSetSpec

	Decode     func(raw json.RawMessage) (domain.Entity, error)
	WithID     func(entity domain.Entity, id ident.ID) domain.Entity
	ToRecord   func(entity domain.Entity) (storage.Record, error)
	FromRecord func(rec storage.Record) (domain.Entity, error)
}

// Registry stores entity type registrations keyed by prefix.
type Registry struct {
	registrations map[string]Registration
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{registrations: make(map[string]Registration)}
}

// Register adds an entity type registration. Registering a prefix twice is a
// programmer error and fails with DuplicatePrefix.
func (r *Registry) Register(reg Registration) error {
	reg.Prefix = strings.TrimSpace(reg.Prefix)
	if reg.Prefix == "" {
		return apperrors.New(apperrors.CodeUnknownPrefix, "registration prefix is required")
	}
	if reg.Table == "" || reg.Decode == nil || reg.WithID == nil || reg.ToRecord == nil || reg.FromRecord == nil {
		return apperrors.New(apperrors.CodeUnknownPrefix, "registration for "+reg.Prefix+" is incomplete")
	}
	if r.registrations == nil {
		r.registrations = make(map[string]Registration)
	}
	if _, exists := r.registrations[reg.Prefix]; exists {
		return apperrors.WithMetadata(apperrors.CodeDuplicatePrefix,
			"prefix already registered: "+reg.Prefix,
			map[string]string{"Prefix": reg.Prefix})
	}
	r.registrations[reg.Prefix] = reg
	return nil
}

// Resolve returns the registration for a prefix.
func (r *Registry) Resolve(prefix string) (Registration, error) {
	reg, ok := r.registrations[strings.TrimSpace(prefix)]
	if !ok {
		return Registration{}, apperrors.WithMetadata(apperrors.CodeUnknownPrefix,
			"unknown entity prefix: "+prefix,
			map[string]string{"Prefix": prefix})
	}
	return reg, nil
}

// Prefixes lists the registered prefixes in sorted order.
func (r *Registry) Prefixes() []string {
	prefixes := make([]string, 0, len(r.registrations))
	for prefix := range r.registrations {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)
	return prefixes
}
