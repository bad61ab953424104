package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/idilsaglam/inventory/internal/cli"
	"github.com/idilsaglam/inventory/internal/config"
	"github.com/idilsaglam/inventory/internal/inventory"
	"github.com/idilsaglam/inventory/internal/logging"
	"github.com/idilsaglam/inventory/internal/model"
	"github.com/idilsaglam/inventory/internal/ui"
)

func main() {
	// .env is optional; real environment variables win over it
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Root flags (apply to every subcommand)
	dataFile := flag.String("file", cfg.Store.DataFile, "inventory JSON file")
	theme := flag.String("theme", cfg.UI.Theme, "color theme: classic, neon, mono")
	noColor := flag.Bool("no-color", cfg.UI.NoColor, "disable colors")
	group := flag.Bool("group", false, "group search and low-stock output by category")
	flag.Parse()

	logger := logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	if envErr == nil {
		logger.Debug("loaded .env file")
	}
	ui.SetTheme(*theme)
	ui.SetColorForcing(false, *noColor)

	st, err := inventory.Open(*dataFile, inventory.Options{
		LowStockThreshold: cfg.Store.LowStockThreshold,
		ExportPath:        cfg.Store.ExportFile,
		Logger:            logger,
	})
	if err != nil {
		if errors.Is(err, model.ErrCorruptFile) {
			logger.Error("cannot start with a corrupt inventory file", "path", *dataFile, "err", err)
		}
		ui.Fail("load: " + err.Error())
		os.Exit(1)
	}

	// Hand the remaining args to the CLI runner.
	os.Exit(cli.Run(flag.Args(), st, cli.Options{Group: *group}))
}
