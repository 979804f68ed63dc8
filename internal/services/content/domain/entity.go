package domain

import (
	"strings"

	"github.com/louisbranch/lorekeeper/internal/services/content/domain/ident"
)

// Entity type prefixes. Each prefix names exactly one business type and keys
// an independent identifier sequence per owner scope.
const (
	PrefixRule         = "R"
	PrefixObjective    = "Obj"
	PrefixPoint        = "Pt"
	PrefixSegment      = "Seg"
	PrefixArc          = "Arc"
	PrefixItem         = "It"
	PrefixCharacter    = "Char"
	PrefixLocation     = "Loc"
	PrefixCampaignPlan = "CampPlan"
)

// DefaultDescription fills empty description fields during validation.
const DefaultDescription = "No description provided."

// Entity is the common surface of every business entity.
type Entity interface {
	// ObjectID returns the entity identity, or the unset sentinel for
	// entities that have not been through allocation yet.
	ObjectID() ident.ID
}

// validateIdentity checks an entity's own identifier: either unset (fresh
// candidates before allocation) or a positive numeric under the given prefix.
func validateIdentity(id ident.ID, prefix string, invalid error) error {
	if id.IsUnset() {
		return nil
	}
	if id.Prefix != prefix || id.Numeric <= 0 {
		return invalid
	}
	return nil
}

// validateOptionalRef checks a reference field that may be unset.
func validateOptionalRef(id ident.ID, prefix string, invalid error) error {
	if id.IsUnset() {
		return nil
	}
	if id.Prefix != prefix || id.Numeric <= 0 {
		return invalid
	}
	return nil
}

// validateRefList checks every entry of a reference list against the
// required target prefix. Unset entries are never valid inside a list.
func validateRefList(ids []ident.ID, prefix string, invalid error) error {
	for _, id := range ids {
		if id.Prefix != prefix || id.Numeric <= 0 {
			return invalid
		}
	}
	return nil
}

func normalizeDescription(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultDescription
	}
	return value
}
