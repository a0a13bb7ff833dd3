// Package app runs the Discord bot: it owns the gateway session, routes
// slash command interactions to the command registry and tracks how each
// interaction has been answered.
package app
