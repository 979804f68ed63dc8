// Package sqlite implements content persistence: identifier allocation,
// record storage, and unit-of-work sessions over a single SQLite database.
//
// Why this package exists:
// - It owns the counter table that makes identifier issuance transactional with entity writes.
// - It executes registry-described records generically, so entity types add no SQL of their own.
// - It is the only package that translates storage records into concrete rows and transactions.
//
// The backend uses embedded migrations and hand-written SQL driven by the
// table and column metadata each registration carries.
package sqlite
