// Package dicev1 declares the dice.v1.DiceService gRPC API.
//
// Messages are plain Go structs carried by the "json" codec registered in
// this package; clients built with NewDiceServiceClient select it through the
// gRPC content subtype, so requests travel as application/grpc+json.
package dicev1
