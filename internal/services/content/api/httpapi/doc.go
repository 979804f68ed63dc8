// Package httpapi exposes the content service over a JSON HTTP surface.
//
// Routes dispatch on entity prefixes through the registry, so adding an
// entity type to the registry adds its routes without handler changes. Error
// responses carry the machine-readable code plus a localized message.
package httpapi
