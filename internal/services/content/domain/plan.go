package domain

import (
	"strings"

	apperrors "github.com/louisbranch/lorekeeper/internal/platform/errors"
	"github.com/louisbranch/lorekeeper/internal/services/content/domain/ident"
)

var (
	// ErrPlanNameEmpty indicates a missing campaign plan name.
	ErrPlanNameEmpty = apperrors.New(apperrors.CodePlanNameEmpty, "campaign plan name is required")
	// ErrPlanInvalidObjectID indicates an identifier under the wrong prefix.
	ErrPlanInvalidObjectID = apperrors.New(apperrors.CodePlanInvalidObjectID, "campaign plan identifier must use the plan prefix")
	// ErrPlanInvalidArcRef indicates an arc entry that does not reference an arc.
	ErrPlanInvalidArcRef = apperrors.New(apperrors.CodePlanInvalidArcRef, "campaign plan arcs must reference arcs")
	// ErrPlanInvalidCharacterRef indicates a character entry that does not reference a character.
	ErrPlanInvalidCharacterRef = apperrors.New(apperrors.CodePlanInvalidCharacterRef, "campaign plan characters must reference characters")
	// ErrPlanInvalidLocationRef indicates a location entry that does not reference a location.
	ErrPlanInvalidLocationRef = apperrors.New(apperrors.CodePlanInvalidLocationRef, "campaign plan locations must reference locations")
	// ErrPlanInvalidRuleRef indicates a rule entry that does not reference a rule.
	ErrPlanInvalidRuleRef = apperrors.New(apperrors.CodePlanInvalidRuleRef, "campaign plan rules must reference rules")
)

// CampaignPlan is the top-level planning document tying a campaign together.
// Everything it lists is held by reference.
type CampaignPlan struct {
	ObjID       ident.ID   `json:"obj_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Arcs        []ident.ID `json:"arcs"`
	Characters  []ident.ID `json:"characters"`
	Locations   []ident.ID `json:"locations"`
	Rules       []ident.ID `json:"rules"`
}

// ObjectID implements Entity.
func (p CampaignPlan) ObjectID() ident.ID {
	return p.ObjID
}

// ValidateCampaignPlan normalizes a candidate campaign plan and applies defaults.
func ValidateCampaignPlan(p CampaignPlan) (CampaignPlan, error) {
	if err := validateIdentity(p.ObjID, PrefixCampaignPlan, ErrPlanInvalidObjectID); err != nil {
		return CampaignPlan{}, err
	}
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return CampaignPlan{}, ErrPlanNameEmpty
	}
	p.Description = normalizeDescription(p.Description)
	if err := validateRefList(p.Arcs, PrefixArc, ErrPlanInvalidArcRef); err != nil {
		return CampaignPlan{}, err
	}
	if err := validateRefList(p.Characters, PrefixCharacter, ErrPlanInvalidCharacterRef); err != nil {
		return CampaignPlan{}, err
	}
	if err := validateRefList(p.Locations, PrefixLocation, ErrPlanInvalidLocationRef); err != nil {
		return CampaignPlan{}, err
	}
	if err := validateRefList(p.Rules, PrefixRule, ErrPlanInvalidRuleRef); err != nil {
		return CampaignPlan{}, err
	}
	return p, nil
}
