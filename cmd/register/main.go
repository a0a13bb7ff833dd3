package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	registercmd "github.com/louisbranch/dicebot/internal/cmd/register"
)

func main() {
	cfg, err := registercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[REGISTER] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := registercmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to register commands: %v", err)
	}
}
