package domain

import (
	"strings"

	apperrors "github.com/louisbranch/lorekeeper/internal/platform/errors"
	"github.com/louisbranch/lorekeeper/internal/services/content/domain/ident"
)

var (
	// ErrArcTitleEmpty indicates a missing arc title.
	ErrArcTitleEmpty = apperrors.New(apperrors.CodeArcTitleEmpty, "arc title is required")
	// ErrArcInvalidObjectID indicates an identifier under the wrong prefix.
	ErrArcInvalidObjectID = apperrors.New(apperrors.CodeArcInvalidObjectID, "arc identifier must use the arc prefix")
	// ErrArcInvalidSegmentRef indicates a segment list entry that does not reference a segment.
	ErrArcInvalidSegmentRef = apperrors.New(apperrors.CodeArcInvalidSegmentRef, "arc entries must reference segments")
	// ErrArcInvalidCombatantRef indicates a combatant entry that does not reference a character.
	ErrArcInvalidCombatantRef = apperrors.New(apperrors.CodeArcInvalidCombatantRef, "arc combatants must reference characters")
)

// Arc is a narrative arc: ordered segments plus the characters expected to
// appear as combatants. Characters are referenced, never owned, which keeps
// character/arc relationships acyclic.
type Arc struct {
	ObjID       ident.ID   `json:"obj_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Segments    []ident.ID `json:"segments"`
	Combatants  []ident.ID `json:"combatants"`
}

// ObjectID implements Entity.
func (a Arc) ObjectID() ident.ID {
	return a.ObjID
}

// ValidateArc normalizes a candidate arc and applies defaults.
func ValidateArc(a Arc) (Arc, error) {
	if err := validateIdentity(a.ObjID, PrefixArc, ErrArcInvalidObjectID); err != nil {
		return Arc{}, err
	}
	a.Title = strings.TrimSpace(a.Title)
	if a.Title == "" {
		return Arc{}, ErrArcTitleEmpty
	}
	a.Description = normalizeDescription(a.Description)
	if err := validateRefList(a.Segments, PrefixSegment, ErrArcInvalidSegmentRef); err != nil {
		return Arc{}, err
	}
	if err := validateRefList(a.Combatants, PrefixCharacter, ErrArcInvalidCombatantRef); err != nil {
		return Arc{}, err
	}
	return a, nil
}
