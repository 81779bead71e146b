package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"pageview-analytics/internal/app"
	"pageview-analytics/internal/shared/configs"
)

func main() {
	configPath := flag.String("config", "./configs/configs.yml", "path to configuration file")
	flag.Parse()

	cfg, err := configs.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	if svcErr := application.RunTrending(context.Background()); svcErr != nil {
		fmt.Fprintf(os.Stderr, "Trending run failed: %v\n", svcErr)
		os.Exit(1)
	}
}
