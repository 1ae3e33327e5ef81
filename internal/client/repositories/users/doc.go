// Package users persists the user collection as a single JSON snapshot in a
// key-value store.
//
// The envelope written under StorageKey is:
//
//	{
//	  "users": [ { "id", "name", "email", "createdAt", "updatedAt" }, ... ],
//	  "version": "1.0.0",
//	  "lastUpdated": "2026-08-31T10:00:00Z"
//	}
//
// Timestamps use RFC 3339. Loading tolerates a missing key and corrupt
// payloads by returning an empty collection, so a bad snapshot can never
// keep the application from starting.
package users
