package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"pageview-analytics/internal/app"
	"pageview-analytics/internal/shared/configs"
)

func main() {
	configPath := flag.String("config", "./configs/configs.yml", "path to configuration file")
	countriesFlag := flag.String("countries", "", "comma-separated country codes (default: configured countries)")
	debug := flag.Bool("debug", false, "dump sample documents instead of today's summary")
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

	countries := application.Countries()
	if requested := parseCountries(*countriesFlag); len(requested) > 0 {
		countries = requested
	}

	inspector := application.Inspector()
	ctx := context.Background()
	if *debug {
		err = inspector.DebugCollections(ctx, countries)
	} else {
		err = inspector.CheckToday(ctx, countries)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Inspection failed: %v\n", err)
		os.Exit(1)
	}
}

// parseCountries splits a comma-separated country list, tolerating spaces
// around the codes.
func parseCountries(flagValue string) []string {
	var countries []string
	for _, code := range strings.Split(flagValue, ",") {
		if code = strings.TrimSpace(code); code != "" {
			countries = append(countries, code)
		}
	}
	return countries
}
