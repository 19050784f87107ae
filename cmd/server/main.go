package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/retailhub/internal/buildinfo"
	"github.com/dmitrijs2005/retailhub/internal/server"
	"github.com/dmitrijs2005/retailhub/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.Load(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
