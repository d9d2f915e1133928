package main

import (
	"context"
	"log"

	"github.com/avoronin/cityride/internal/cli"
	"github.com/avoronin/cityride/internal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
