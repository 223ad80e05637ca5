// Command seeder fills an empty store with the demo listings and persists it
// through the configured storage backend.
//
// Flags:
//
//	--dry-run        report what would be seeded without writing
//	--reset          drop existing listings before seeding
//	--owner          owner id for the seeded listings (default: store default owner)
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/hearthhub/internal/app"
	"github.com/heartmarshall/hearthhub/internal/config"
	"github.com/heartmarshall/hearthhub/internal/seed"
)

func main() {
	dryRunFlag := flag.Bool("dry-run", false, "report what would be seeded without writing")
	resetFlag := flag.Bool("reset", false, "drop existing listings before seeding")
	ownerFlag := flag.String("owner", "", "owner id for the seeded listings")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seed.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if *resetFlag {
		seederCfg.Reset = true
	}
	if *ownerFlag != "" {
		seederCfg.OwnerID = *ownerFlag
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	logger.Info("starting seeder",
		slog.String("version", app.BuildVersion()),
		slog.String("driver", appCfg.Storage.Driver),
	)

	a, err := app.Open(ctx, appCfg, logger)
	if err != nil {
		logger.Error("open store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	added, err := seed.New(logger, a.Store, *seederCfg).Run(ctx)
	if closeErr := a.Close(ctx); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding completed", slog.Int("added", added))
}
