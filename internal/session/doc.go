// Package session keeps one payback.ResultState per browser session.
//
// Sessions live in memory and expire after a period of inactivity. Every
// successful lookup extends the expiry by the store's TTL. Each entry
// serializes access to its state, so concurrent requests from one browser
// see calculations applied one at a time.
//
// Session identifiers are random UUIDs. Identifiers that do not parse as a
// UUID are rejected before the map is consulted.
package session
