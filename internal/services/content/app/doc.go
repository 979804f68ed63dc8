// Package app orchestrates content operations: identity allocation, candidate
// decoding, conversion between business and storage forms, and session
// composition over the SQLite store.
package app
