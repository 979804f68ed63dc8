package domain

import (
	"strings"

	apperrors "github.com/louisbranch/lorekeeper/internal/platform/errors"
	"github.com/louisbranch/lorekeeper/internal/services/content/domain/ident"
)

var (
	// ErrItemNameEmpty indicates a missing item name.
	ErrItemNameEmpty = apperrors.New(apperrors.CodeItemNameEmpty, "item name is required")
	// ErrItemInvalidObjectID indicates an identifier under the wrong prefix.
	ErrItemInvalidObjectID = apperrors.New(apperrors.CodeItemInvalidObjectID, "item identifier must use the item prefix")
	// ErrItemNegativeValue indicates a negative item value.
	ErrItemNegativeValue = apperrors.New(apperrors.CodeItemNegativeValue, "item value must be non-negative")
)

// Item is a piece of loot or equipment characters can carry.
type Item struct {
	ObjID       ident.ID `json:"obj_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Rarity      string   `json:"rarity"`
	Value       int64    `json:"value"`
}

// ObjectID implements Entity.
func (i Item) ObjectID() ident.ID {
	return i.ObjID
}

// ValidateItem normalizes a candidate item and applies defaults.
func ValidateItem(i Item) (Item, error) {
	if err := validateIdentity(i.ObjID, PrefixItem, ErrItemInvalidObjectID); err != nil {
		return Item{}, err
	}
	i.Name = strings.TrimSpace(i.Name)
	if i.Name == "" {
		return Item{}, ErrItemNameEmpty
	}
	i.Description = normalizeDescription(i.Description)
	i.Rarity = strings.TrimSpace(i.Rarity)
	if i.Value < 0 {
		return Item{}, ErrItemNegativeValue
	}
	return i, nil
}
