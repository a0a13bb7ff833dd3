// Package integration holds the bot's clients for the services it calls:
// the dice roll service over gRPC and the emojify service over HTTP.
//
// Every failure these clients return is a *ServiceError so commands can
// collapse transport, status and payload problems into one reply.
package integration
