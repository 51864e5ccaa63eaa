package main

import (
	"context"

	"github.com/mkuznetsov/ssocore/internal/gateway"
	"github.com/mkuznetsov/ssocore/internal/gateway/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := gateway.NewApp(cfg)

	app.Run(ctx)

}
