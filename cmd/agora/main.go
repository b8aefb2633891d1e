package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/agoramujeres/agora-client/internal/buildinfo"
	"github.com/agoramujeres/agora-client/internal/client/cli"
	"github.com/agoramujeres/agora-client/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
