package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	contentcmd "github.com/louisbranch/lorekeeper/internal/cmd/content"
	"github.com/louisbranch/lorekeeper/internal/platform/config"
)

func main() {
	cfg, err := contentcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[CONTENT] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := contentcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
