package domain

import (
	"strings"

	apperrors "github.com/louisbranch/lorekeeper/internal/platform/errors"
	"github.com/louisbranch/lorekeeper/internal/services/content/domain/ident"
)

var (
	// ErrLocationNameEmpty indicates a missing location name.
	ErrLocationNameEmpty = apperrors.New(apperrors.CodeLocationNameEmpty, "location name is required")
	// ErrLocationInvalidObjectID indicates an identifier under the wrong prefix.
	ErrLocationInvalidObjectID = apperrors.New(apperrors.CodeLocationInvalidObjectID, "location identifier must use the location prefix")
	// ErrLocationInvalidOccupantRef indicates an occupant entry that does not reference a character.
	ErrLocationInvalidOccupantRef = apperrors.New(apperrors.CodeLocationInvalidOccupantRef, "location occupants must reference characters")
)

// Location is a place in the campaign world.
//
// Occupants reference characters present at the location. A character can in
// turn reference its location; both sides stay identifier-only, so the cycle
// never materializes in memory.
type Location struct {
	ObjID       ident.ID   `json:"obj_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Region      string     `json:"region"`
	Occupants   []ident.ID `json:"occupants"`
}

// ObjectID implements Entity.
func (l Location) ObjectID() ident.ID {
	return l.ObjID
}

// ValidateLocation normalizes a candidate location and applies defaults.
func ValidateLocation(l Location) (Location, error) {
	if err := validateIdentity(l.ObjID, PrefixLocation, ErrLocationInvalidObjectID); err != nil {
		return Location{}, err
	}
	l.Name = strings.TrimSpace(l.Name)
	if l.Name == "" {
		return Location{}, ErrLocationNameEmpty
	}
	l.Description = normalizeDescription(l.Description)
	l.Region = strings.TrimSpace(l.Region)
	if err := validateRefList(l.Occupants, PrefixCharacter, ErrLocationInvalidOccupantRef); err != nil {
		return Location{}, err
	}
	return l, nil
}
