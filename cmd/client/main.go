package main

import (
	"flag"
	"fmt"

	"github.com/MKhiriev/go-campus-login/internal/adapter"
	"github.com/MKhiriev/go-campus-login/internal/client"
	"github.com/MKhiriev/go-campus-login/internal/config"
	"github.com/MKhiriev/go-campus-login/internal/crypto"
	"github.com/MKhiriev/go-campus-login/internal/logger"
	"github.com/MKhiriev/go-campus-login/internal/service"
	"github.com/MKhiriev/go-campus-login/internal/store"
	"github.com/MKhiriev/go-campus-login/internal/tui"
	"github.com/MKhiriev/go-campus-login/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// Registered before config.GetClientConfig so the shared flag set
	// parses it together with the config flags.
	versionFlag := flag.Bool("version", false, "Print build information and exit")

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("campus-login").Fatal().Err(err).Msg("error getting configs")
	}

	if *versionFlag {
		printBuildInfo()
		return
	}

	// The TUI owns the terminal, so logs go to a file.
	log := logger.NewClientLogger("campus-login", cfg.App.LogFile)

	keychain := crypto.NewKeyChainService()

	storages, err := store.NewClientStorages(cfg.Storage, keychain, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	authenticator, err := adapter.NewPortalAuthenticator(cfg.Portal, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create portal authenticator")
	}

	services := service.NewClientServices(storages, authenticator, cfg.Journal, log)

	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
