package main

import (
	"context"
	"os"

	"tfrrs-backend/lib/configutil"
	"tfrrs-backend/lib/scrapers/tfrrs"
	"tfrrs-backend/lib/serviceutil"
	"tfrrs-backend/lib/telemetry"
	"tfrrs-backend/services/results"
)

type Config struct {
	Port    int    `json:"port"`
	BaseUrl string `json:"base_url"`
	Verbose bool   `json:"verbose"`
}

func main() {
	ctx := serviceutil.SignalContext()

	config, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("failed to load configuration", err)
	}
	if config.Port == 0 {
		config.Port = 8200
	}

	telemetry.InitSlog(config.Verbose)

	tel, err := telemetry.SetupFromEnv(ctx, "tfrrs-server")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer tel.Shutdown(context.Background())

	scraper := tfrrs.NewClient(tfrrs.ClientOptions{BaseUrl: config.BaseUrl})
	server := results.NewServer(results.NewService(scraper))

	serviceutil.StartHttpServer(ctx, config.Port, server)
}
