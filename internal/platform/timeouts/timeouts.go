// Package timeouts defines shared timeout constants used across services.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing a gRPC peer.
const GRPCDial = 2 * time.Second

// GRPCRequest caps the time allowed for a single call from the bot to the
// dice service.
const GRPCRequest = 2 * time.Second

// HTTPRequest caps a single call to the emojify service.
const HTTPRequest = 5 * time.Second

// DiscordRegister caps the bulk overwrite of application commands.
const DiscordRegister = 30 * time.Second

// Shutdown limits how long servers wait for in-flight requests during
// graceful shutdown.
const Shutdown = 5 * time.Second
