// Package server composes the dice service runtime: roll store, gRPC server,
// health reporting, and graceful shutdown.
package server
