package domain

import (
	"strings"

	apperrors "github.com/louisbranch/lorekeeper/internal/platform/errors"
	"github.com/louisbranch/lorekeeper/internal/services/content/domain/ident"
)

// Role describes how a character participates in the campaign.
type Role string

const (
	// RolePlayer marks a player character.
	RolePlayer Role = "player"
	// RoleNPC marks a neutral non-player character.
	RoleNPC Role = "npc"
	// RoleAlly marks a friendly non-player character.
	RoleAlly Role = "ally"
	// RoleAdversary marks an opposing character.
	RoleAdversary Role = "adversary"
)

var (
	// ErrCharacterNameEmpty indicates a missing character name.
	ErrCharacterNameEmpty = apperrors.New(apperrors.CodeCharacterNameEmpty, "character name is required")
	// ErrCharacterInvalidObjectID indicates an identifier under the wrong prefix.
	ErrCharacterInvalidObjectID = apperrors.New(apperrors.CodeCharacterInvalidObjectID, "character identifier must use the character prefix")
	// ErrCharacterInvalidRole indicates an unknown role value.
	ErrCharacterInvalidRole = apperrors.New(apperrors.CodeCharacterInvalidRole, "character role is not recognized")
	// ErrCharacterInvalidInventoryRef indicates an inventory entry that does not reference an item.
	ErrCharacterInvalidInventoryRef = apperrors.New(apperrors.CodeCharacterInvalidInventoryRef, "character inventory must reference items")
	// ErrCharacterInvalidLocationRef indicates a location reference that does not point at a location.
	ErrCharacterInvalidLocationRef = apperrors.New(apperrors.CodeCharacterInvalidLocationRef, "character location must reference a location")
)

// Character is a player character or NPC in the campaign plan.
//
// Inventory entries reference items; Location optionally references where the
// character currently is. Neither reference is dereferenced here.
type Character struct {
	ObjID       ident.ID   `json:"obj_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Role        Role       `json:"role"`
	Inventory   []ident.ID `json:"inventory"`
	Location    ident.ID   `json:"location"`
}

// ObjectID implements Entity.
func (c Character) ObjectID() ident.ID {
	return c.ObjID
}

// ValidateCharacter normalizes a candidate character and applies defaults.
func ValidateCharacter(c Character) (Character, error) {
	if err := validateIdentity(c.ObjID, PrefixCharacter, ErrCharacterInvalidObjectID); err != nil {
		return Character{}, err
	}
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return Character{}, ErrCharacterNameEmpty
	}
	c.Description = normalizeDescription(c.Description)
	c.Role = Role(strings.ToLower(strings.TrimSpace(string(c.Role))))
	switch c.Role {
	case "":
		c.Role = RoleNPC
	case RolePlayer, RoleNPC, RoleAlly, RoleAdversary:
		// allowed
	default:
		return Character{}, ErrCharacterInvalidRole
	}
	if err := validateRefList(c.Inventory, PrefixItem, ErrCharacterInvalidInventoryRef); err != nil {
		return Character{}, err
	}
	if err := validateOptionalRef(c.Location, PrefixLocation, ErrCharacterInvalidLocationRef); err != nil {
		return Character{}, err
	}
	return c, nil
}
