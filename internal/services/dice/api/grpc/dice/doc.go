// Package dice implements the dice.v1.DiceService gRPC handlers.
//
// RollDice validates the requested groups against the configured limits,
// rolls them with a fresh seed and records the roll before answering, so
// every answer can later be fetched (and replayed) with GetRoll.
package dice
