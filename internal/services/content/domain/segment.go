package domain

import (
	"strings"

	apperrors "github.com/louisbranch/lorekeeper/internal/platform/errors"
	"github.com/louisbranch/lorekeeper/internal/services/content/domain/ident"
)

var (
	// ErrSegmentTitleEmpty indicates a missing segment title.
	ErrSegmentTitleEmpty = apperrors.New(apperrors.CodeSegmentTitleEmpty, "segment title is required")
	// ErrSegmentInvalidObjectID indicates an identifier under the wrong prefix.
	ErrSegmentInvalidObjectID = apperrors.New(apperrors.CodeSegmentInvalidObjectID, "segment identifier must use the segment prefix")
	// ErrSegmentInvalidPointRef indicates a point list entry that does not reference a point.
	ErrSegmentInvalidPointRef = apperrors.New(apperrors.CodeSegmentInvalidPointRef, "segment entries must reference points")
)

// Segment is an ordered run of points inside an arc.
//
// Points may reference entities created in the same unit of work; existence
// of the targets is not checked here.
type Segment struct {
	ObjID       ident.ID   `json:"obj_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Points      []ident.ID `json:"points"`
}

// ObjectID implements Entity.
func (s Segment) ObjectID() ident.ID {
	return s.ObjID
}

// ValidateSegment normalizes a candidate segment and applies defaults.
func ValidateSegment(s Segment) (Segment, error) {
	if err := validateIdentity(s.ObjID, PrefixSegment, ErrSegmentInvalidObjectID); err != nil {
		return Segment{}, err
	}
	s.Title = strings.TrimSpace(s.Title)
	if s.Title == "" {
		return Segment{}, ErrSegmentTitleEmpty
	}
	s.Description = normalizeDescription(s.Description)
	if err := validateRefList(s.Points, PrefixPoint, ErrSegmentInvalidPointRef); err != nil {
		return Segment{}, err
	}
	return s, nil
}
