package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"cf_dns_manager/internal/cli"
	"cf_dns_manager/internal/config"
	"cf_dns_manager/internal/dns/providers/cloudflare"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// 2. Diagnostic logger on stderr; the UI itself writes to stdout
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	provider := cloudflare.New(cfg.Email, cfg.APIKey, cfg.APIBase, cfg.HTTPTimeout, logger)

	// 3. Resolve the zone once; no operation is possible without it
	ctx := context.Background()
	zone, err := provider.ResolveZone(ctx, cfg.Domain)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// 4. Run the interactive menu loop
	app := cli.NewApp(zone, provider, os.Stdin, os.Stdout, logger)
	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
