package domain

import (
	"strings"

	apperrors "github.com/louisbranch/lorekeeper/internal/platform/errors"
	"github.com/louisbranch/lorekeeper/internal/services/content/domain/ident"
)

var (
	// ErrRuleNameEmpty indicates a missing rule name.
	ErrRuleNameEmpty = apperrors.New(apperrors.CodeRuleNameEmpty, "rule name is required")
	// ErrRuleInvalidObjectID indicates an identifier under the wrong prefix.
	ErrRuleInvalidObjectID = apperrors.New(apperrors.CodeRuleInvalidObjectID, "rule identifier must use the rule prefix")
)

// Rule captures a house rule or mechanic note for the campaign.
type Rule struct {
	ObjID       ident.ID `json:"obj_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Mechanics   string   `json:"mechanics"`
}

// ObjectID implements Entity.
func (r Rule) ObjectID() ident.ID {
	return r.ObjID
}

// ValidateRule normalizes a candidate rule and applies defaults.
func ValidateRule(r Rule) (Rule, error) {
	if err := validateIdentity(r.ObjID, PrefixRule, ErrRuleInvalidObjectID); err != nil {
		return Rule{}, err
	}
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return Rule{}, ErrRuleNameEmpty
	}
	r.Description = normalizeDescription(r.Description)
	r.Mechanics = strings.TrimSpace(r.Mechanics)
	return r, nil
}
