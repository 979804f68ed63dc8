package domain

import (
	"strings"

	apperrors "github.com/louisbranch/lorekeeper/internal/platform/errors"
	"github.com/louisbranch/lorekeeper/internal/services/content/domain/ident"
)

var (
	// ErrObjectiveNameEmpty indicates a missing objective name.
	ErrObjectiveNameEmpty = apperrors.New(apperrors.CodeObjectiveNameEmpty, "objective name is required")
	// ErrObjectiveInvalidObjectID indicates an identifier under the wrong prefix.
	ErrObjectiveInvalidObjectID = apperrors.New(apperrors.CodeObjectiveInvalidObjectID, "objective identifier must use the objective prefix")
)

// Objective is a goal the party can pursue and complete.
type Objective struct {
	ObjID       ident.ID `json:"obj_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Completed   bool     `json:"completed"`
}

// ObjectID implements Entity.
func (o Objective) ObjectID() ident.ID {
	return o.ObjID
}

// ValidateObjective normalizes a candidate objective and applies defaults.
func ValidateObjective(o Objective) (Objective, error) {
	if err := validateIdentity(o.ObjID, PrefixObjective, ErrObjectiveInvalidObjectID); err != nil {
		return Objective{}, err
	}
	o.Name = strings.TrimSpace(o.Name)
	if o.Name == "" {
		return Objective{}, ErrObjectiveNameEmpty
	}
	o.Description = normalizeDescription(o.Description)
	return o, nil
}
