package i18n

// Error codes must match the codes defined in platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeCandidateMalformed = "CANDIDATE_MALFORMED"

	CodeRuleNameEmpty       = "RULE_NAME_EMPTY"
	CodeRuleInvalidObjectID = "RULE_INVALID_OBJECT_ID"

	CodeObjectiveNameEmpty       = "OBJECTIVE_NAME_EMPTY"
	CodeObjectiveInvalidObjectID = "OBJECTIVE_INVALID_OBJECT_ID"

	CodePointTitleEmpty          = "POINT_TITLE_EMPTY"
	CodePointInvalidObjectID     = "POINT_INVALID_OBJECT_ID"
	CodePointInvalidObjectiveRef = "POINT_INVALID_OBJECTIVE_REF"

	CodeSegmentTitleEmpty      = "SEGMENT_TITLE_EMPTY"
	CodeSegmentInvalidObjectID = "SEGMENT_INVALID_OBJECT_ID"
	CodeSegmentInvalidPointRef = "SEGMENT_INVALID_POINT_REF"

	CodeArcTitleEmpty          = "ARC_TITLE_EMPTY"
	CodeArcInvalidObjectID     = "ARC_INVALID_OBJECT_ID"
	CodeArcInvalidSegmentRef   = "ARC_INVALID_SEGMENT_REF"
	CodeArcInvalidCombatantRef = "ARC_INVALID_COMBATANT_REF"

	CodeItemNameEmpty       = "ITEM_NAME_EMPTY"
	CodeItemInvalidObjectID = "ITEM_INVALID_OBJECT_ID"
	CodeItemNegativeValue   = "ITEM_NEGATIVE_VALUE"

	CodeCharacterNameEmpty           = "CHARACTER_NAME_EMPTY"
	CodeCharacterInvalidObjectID     = "CHARACTER_INVALID_OBJECT_ID"
	CodeCharacterInvalidRole         = "CHARACTER_INVALID_ROLE"
	CodeCharacterInvalidInventoryRef = "CHARACTER_INVALID_INVENTORY_REF"
	CodeCharacterInvalidLocationRef  = "CHARACTER_INVALID_LOCATION_REF"

	CodeLocationNameEmpty          = "LOCATION_NAME_EMPTY"
	CodeLocationInvalidObjectID    = "LOCATION_INVALID_OBJECT_ID"
	CodeLocationInvalidOccupantRef = "LOCATION_INVALID_OCCUPANT_REF"

	CodePlanNameEmpty           = "PLAN_NAME_EMPTY"
	CodePlanInvalidObjectID     = "PLAN_INVALID_OBJECT_ID"
	CodePlanInvalidArcRef       = "PLAN_INVALID_ARC_REF"
	CodePlanInvalidCharacterRef = "PLAN_INVALID_CHARACTER_REF"
	CodePlanInvalidLocationRef  = "PLAN_INVALID_LOCATION_REF"
	CodePlanInvalidRuleRef      = "PLAN_INVALID_RULE_REF"

	CodeInvalidScope      = "INVALID_SCOPE"
	CodeUnknownPrefix     = "UNKNOWN_PREFIX"
	CodeDuplicatePrefix   = "DUPLICATE_PREFIX"
	CodeImmutableIdentity = "IMMUTABLE_IDENTITY"

	CodeSessionReuse = "SESSION_REUSE"

	CodeNotFound          = "NOT_FOUND"
	CodeCorruptStorageRow = "CORRUPT_STORAGE_ROW"
	CodeStorageFailure    = "STORAGE_FAILURE"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		CodeCandidateMalformed: "The submitted payload could not be parsed",

		// Rule errors
		CodeRuleNameEmpty:       "Rule name cannot be empty",
		CodeRuleInvalidObjectID: "Rule identifier must use the rule prefix",

		// Objective errors
		CodeObjectiveNameEmpty:       "Objective name cannot be empty",
		CodeObjectiveInvalidObjectID: "Objective identifier must use the objective prefix",

		// Point errors
		CodePointTitleEmpty:          "Point title cannot be empty",
		CodePointInvalidObjectID:     "Point identifier must use the point prefix",
		CodePointInvalidObjectiveRef: "Point objective must reference an objective",

		// Segment errors
		CodeSegmentTitleEmpty:      "Segment title cannot be empty",
		CodeSegmentInvalidObjectID: "Segment identifier must use the segment prefix",
		CodeSegmentInvalidPointRef: "Segment entries must reference points",

		// Arc errors
		CodeArcTitleEmpty:          "Arc title cannot be empty",
		CodeArcInvalidObjectID:     "Arc identifier must use the arc prefix",
		CodeArcInvalidSegmentRef:   "Arc entries must reference segments",
		CodeArcInvalidCombatantRef: "Arc combatants must reference characters",

		// Item errors
		CodeItemNameEmpty:       "Item name cannot be empty",
		CodeItemInvalidObjectID: "Item identifier must use the item prefix",
		CodeItemNegativeValue:   "Item value must be non-negative",

		// Character errors
		CodeCharacterNameEmpty:           "Character name cannot be empty",
		CodeCharacterInvalidObjectID:     "Character identifier must use the character prefix",
		CodeCharacterInvalidRole:         "Invalid character role specified",
		CodeCharacterInvalidInventoryRef: "Character inventory must reference items",
		CodeCharacterInvalidLocationRef:  "Character location must reference a location",

		// Location errors
		CodeLocationNameEmpty:          "Location name cannot be empty",
		CodeLocationInvalidObjectID:    "Location identifier must use the location prefix",
		CodeLocationInvalidOccupantRef: "Location occupants must reference characters",

		// Campaign plan errors
		CodePlanNameEmpty:           "Campaign plan name cannot be empty",
		CodePlanInvalidObjectID:     "Campaign plan identifier must use the plan prefix",
		CodePlanInvalidArcRef:       "Campaign plan arcs must reference arcs",
		CodePlanInvalidCharacterRef: "Campaign plan characters must reference characters",
		CodePlanInvalidLocationRef:  "Campaign plan locations must reference locations",
		CodePlanInvalidRuleRef:      "Campaign plan rules must reference rules",

		// Identity and scope errors
		CodeInvalidScope:      "Owner scope {{.Scope}} cannot be resolved",
		CodeUnknownPrefix:     "Unknown entity type: {{.Prefix}}",
		CodeDuplicatePrefix:   "Entity type {{.Prefix}} is already registered",
		CodeImmutableIdentity: "Entity identifiers cannot be changed",

		// Session errors
		CodeSessionReuse: "The persistence session has already been closed",

		// Storage errors
		CodeNotFound:          "The requested resource was not found",
		CodeCorruptStorageRow: "A stored record could not be read",
		CodeStorageFailure:    "The request could not be completed",
	},
}
