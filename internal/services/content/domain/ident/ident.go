// Package ident defines the identifier value types shared by the content core.
//
// An ID is a (prefix, numeric) pair naming exactly one entity. IDs are plain
// values: holding one never implies the target exists, and resolving one is
// always a separate lookup through the content API.
package ident

import (
	"fmt"
	"strconv"
	"strings"
)

// Scope partitions identifier sequences and stored data by owning user.
// Scope 0 is the global scope used by single-user deployments.
type Scope int64

// Global is the conventional unscoped owner.
const Global Scope = 0

// Valid reports whether the scope key can be resolved.
func (s Scope) Valid() bool {
	return s >= 0
}

// ID identifies an entity by its type prefix and sequence numeric.
// The zero value is the unset sentinel.
type ID struct {
	Prefix  string `json:"prefix"`
	Numeric int64  `json:"numeric"`
}

// Unset returns the sentinel identifier carried by entities that have not
// been through allocation yet.
func Unset() ID {
	return ID{}
}

// IsUnset reports whether the identifier is the unset sentinel.
func (id ID) IsUnset() bool {
	return id.Prefix == "" && id.Numeric == 0
}

// String renders the identifier as "<prefix>-<numeric>".
func (id ID) String() string {
	return id.Prefix + "-" + strconv.FormatInt(id.Numeric, 10)
}

// Parse reads an identifier in "<prefix>-<numeric>" form.
func Parse(value string) (ID, error) {
	value = strings.TrimSpace(value)
	sep := strings.LastIndex(value, "-")
	if sep <= 0 || sep == len(value)-1 {
		return ID{}, fmt.Errorf("malformed identifier %q", value)
	}
	numeric, err := strconv.ParseInt(value[sep+1:], 10, 64)
	if err != nil {
		return ID{}, fmt.Errorf("malformed identifier %q: %w", value, err)
	}
	if numeric < 0 {
		return ID{}, fmt.Errorf("malformed identifier %q: negative numeric", value)
	}
	return ID{Prefix: value[:sep], Numeric: numeric}, nil
}
