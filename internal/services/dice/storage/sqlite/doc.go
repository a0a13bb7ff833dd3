// Package sqlite persists dice service rolls in SQLite.
package sqlite
