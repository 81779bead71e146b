package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"pageview-analytics/internal/app"
	"pageview-analytics/internal/shared/configs"
)

func main() {
	configPath := flag.String("config", "./configs/configs.yml", "path to configuration file")
	serve := flag.Bool("serve", false, "run the HTTP trigger server instead of a one-shot run")
	countriesFlag := flag.String("countries", "", "comma-separated country codes (default: configured countries)")
	days := flag.Int("days", 0, "processing window in days (default: configured window)")
	flag.Parse()

	// Load configuration
	cfg, err := configs.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize application
	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	if !*serve {
		runOnce(application, *countriesFlag, *days)
		return
	}

	// Start server in goroutine
	go func() {
		if err := application.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
			os.Exit(1)
		}
	}()

	fmt.Println("Server started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
	}
}

func runOnce(application *app.App, countriesFlag string, days int) {
	if svcErr := application.RunAnalytics(context.Background(), parseCountries(countriesFlag), days); svcErr != nil {
		fmt.Fprintf(os.Stderr, "Run failed: %v\n", svcErr)
		os.Exit(1)
	}
}

// parseCountries splits a comma-separated country list, tolerating spaces
// around the codes. Returns nil for an empty flag so config defaults apply.
func parseCountries(flagValue string) []string {
	var countries []string
	for _, code := range strings.Split(flagValue, ",") {
		if code = strings.TrimSpace(code); code != "" {
			countries = append(countries, code)
		}
	}
	return countries
}
