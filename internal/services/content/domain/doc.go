// Package domain holds the validated business representations of campaign
// planning entities.
//
// Entities reference each other by identifier only. A reference field is a
// plain ident.ID; it never embeds the target entity and is resolved on demand
// through the content API. Validation is all-or-nothing: a Validate call
// either returns a fully normalized entity with defaults applied or a
// field-level validation error, and nothing in this package touches storage.
package domain
