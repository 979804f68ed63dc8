// Package errors provides structured error handling with i18n support.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Candidate errors
	CodeCandidateMalformed Code = "CANDIDATE_MALFORMED"

	// Rule errors
	CodeRuleNameEmpty       Code = "RULE_NAME_EMPTY"
	CodeRuleInvalidObjectID Code = "RULE_INVALID_OBJECT_ID"

	// Objective errors
	CodeObjectiveNameEmpty       Code = "OBJECTIVE_NAME_EMPTY"
	CodeObjectiveInvalidObjectID Code = "OBJECTIVE_INVALID_OBJECT_ID"

	// Point errors
	CodePointTitleEmpty          Code = "POINT_TITLE_EMPTY"
	CodePointInvalidObjectID     Code = "POINT_INVALID_OBJECT_ID"
	CodePointInvalidObjectiveRef Code = "POINT_INVALID_OBJECTIVE_REF"

	// Segment errors
	CodeSegmentTitleEmpty      Code = "SEGMENT_TITLE_EMPTY"
	CodeSegmentInvalidObjectID Code = "SEGMENT_INVALID_OBJECT_ID"
	CodeSegmentInvalidPointRef Code = "SEGMENT_INVALID_POINT_REF"

	// Arc errors
	CodeArcTitleEmpty          Code = "ARC_TITLE_EMPTY"
	CodeArcInvalidObjectID     Code = "ARC_INVALID_OBJECT_ID"
	CodeArcInvalidSegmentRef   Code = "ARC_INVALID_SEGMENT_REF"
	CodeArcInvalidCombatantRef Code = "ARC_INVALID_COMBATANT_REF"

	// Item errors
	CodeItemNameEmpty       Code = "ITEM_NAME_EMPTY"
	CodeItemInvalidObjectID Code = "ITEM_INVALID_OBJECT_ID"
	CodeItemNegativeValue   Code = "ITEM_NEGATIVE_VALUE"

	// Character errors
	CodeCharacterNameEmpty           Code = "CHARACTER_NAME_EMPTY"
	CodeCharacterInvalidObjectID     Code = "CHARACTER_INVALID_OBJECT_ID"
	CodeCharacterInvalidRole         Code = "CHARACTER_INVALID_ROLE"
	CodeCharacterInvalidInventoryRef Code = "CHARACTER_INVALID_INVENTORY_REF"
	CodeCharacterInvalidLocationRef  Code = "CHARACTER_INVALID_LOCATION_REF"

	// Location errors
	CodeLocationNameEmpty          Code = "LOCATION_NAME_EMPTY"
	CodeLocationInvalidObjectID    Code = "LOCATION_INVALID_OBJECT_ID"
	CodeLocationInvalidOccupantRef Code = "LOCATION_INVALID_OCCUPANT_REF"

	// Campaign plan errors
	CodePlanNameEmpty           Code = "PLAN_NAME_EMPTY"
	CodePlanInvalidObjectID     Code = "PLAN_INVALID_OBJECT_ID"
	CodePlanInvalidArcRef       Code = "PLAN_INVALID_ARC_REF"
	CodePlanInvalidCharacterRef Code = "PLAN_INVALID_CHARACTER_REF"
	CodePlanInvalidLocationRef  Code = "PLAN_INVALID_LOCATION_REF"
	CodePlanInvalidRuleRef      Code = "PLAN_INVALID_RULE_REF"

	// Identity and scope errors
	CodeInvalidScope      Code = "INVALID_SCOPE"
	CodeUnknownPrefix     Code = "UNKNOWN_PREFIX"
	CodeDuplicatePrefix   Code = "DUPLICATE_PREFIX"
	CodeImmutableIdentity Code = "IMMUTABLE_IDENTITY"

	// Session errors
	CodeSessionReuse Code = "SESSION_REUSE"

	// Storage errors
	CodeNotFound          Code = "NOT_FOUND"
	CodeCorruptStorageRow Code = "CORRUPT_STORAGE_ROW"
	CodeStorageFailure    Code = "STORAGE_FAILURE"
)

// IsValidation reports whether the code describes a field-level validation
// failure the caller can fix and retry.
func (c Code) IsValidation() bool {
	switch c {
	case CodeCandidateMalformed,
		CodeRuleNameEmpty,
		CodeRuleInvalidObjectID,
		CodeObjectiveNameEmpty,
		CodeObjectiveInvalidObjectID,
		CodePointTitleEmpty,
		CodePointInvalidObjectID,
		CodePointInvalidObjectiveRef,
		CodeSegmentTitleEmpty,
		CodeSegmentInvalidObjectID,
		CodeSegmentInvalidPointRef,
		CodeArcTitleEmpty,
		CodeArcInvalidObjectID,
		CodeArcInvalidSegmentRef,
		CodeArcInvalidCombatantRef,
		CodeItemNameEmpty,
		CodeItemInvalidObjectID,
		CodeItemNegativeValue,
		CodeCharacterNameEmpty,
		CodeCharacterInvalidObjectID,
		CodeCharacterInvalidRole,
		CodeCharacterInvalidInventoryRef,
		CodeCharacterInvalidLocationRef,
		CodeLocationNameEmpty,
		CodeLocationInvalidObjectID,
		CodeLocationInvalidOccupantRef,
		CodePlanNameEmpty,
		CodePlanInvalidObjectID,
		CodePlanInvalidArcRef,
		CodePlanInvalidCharacterRef,
		CodePlanInvalidLocationRef,
		CodePlanInvalidRuleRef:
		return true
	}
	return false
}

// HTTPStatus maps domain codes to HTTP status codes for the API boundary.
func (c Code) HTTPStatus() int {
	if c.IsValidation() {
		return http.StatusBadRequest
	}
	switch c {
	case CodeInvalidScope, CodeImmutableIdentity:
		return http.StatusBadRequest
	case CodeNotFound, CodeUnknownPrefix:
		return http.StatusNotFound
	case CodeDuplicatePrefix, CodeSessionReuse, CodeCorruptStorageRow, CodeStorageFailure, CodeUnknown:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}
