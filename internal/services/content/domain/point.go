package domain

import (
	"strings"

	apperrors "github.com/louisbranch/lorekeeper/internal/platform/errors"
	"github.com/louisbranch/lorekeeper/internal/services/content/domain/ident"
)

var (
	// ErrPointTitleEmpty indicates a missing point title.
	ErrPointTitleEmpty = apperrors.New(apperrors.CodePointTitleEmpty, "point title is required")
	// ErrPointInvalidObjectID indicates an identifier under the wrong prefix.
	ErrPointInvalidObjectID = apperrors.New(apperrors.CodePointInvalidObjectID, "point identifier must use the point prefix")
	// ErrPointInvalidObjectiveRef indicates an objective reference that does not point at an objective.
	ErrPointInvalidObjectiveRef = apperrors.New(apperrors.CodePointInvalidObjectiveRef, "point objective must reference an objective")
)

// Point is a single narrative beat inside a segment.
//
// Objective is an optional reference; the unset sentinel means the point is
// not tied to any objective. The target is never loaded eagerly, and a
// dangling objective reference reads back as unset at the caller's choice.
type Point struct {
	ObjID       ident.ID `json:"obj_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Objective   ident.ID `json:"objective"`
}

// ObjectID implements Entity.
func (p Point) ObjectID() ident.ID {
	return p.ObjID
}

// ValidatePoint normalizes a candidate point and applies defaults.
func ValidatePoint(p Point) (Point, error) {
	if err := validateIdentity(p.ObjID, PrefixPoint, ErrPointInvalidObjectID); err != nil {
		return Point{}, err
	}
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return Point{}, ErrPointTitleEmpty
	}
	p.Description = normalizeDescription(p.Description)
	if err := validateOptionalRef(p.Objective, PrefixObjective, ErrPointInvalidObjectiveRef); err != nil {
		return Point{}, err
	}
	return p, nil
}
