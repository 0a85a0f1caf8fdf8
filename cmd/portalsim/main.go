package main

import (
	"flag"
	"fmt"

	"github.com/MKhiriev/go-campus-login/internal/logger"
	"github.com/MKhiriev/go-campus-login/internal/portalsim"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg := parseFlags()

	log := logger.NewLogger("portalsim")
	log.Debug().
		Str("addr", cfg.Addr).
		Str("username", cfg.Username).
		Dur("delay", cfg.ResponseDelay).
		Int("fail_status", cfg.FailStatus).
		Msg("received configs")

	handler := portalsim.NewHandler(cfg, log)
	server := portalsim.NewServer(handler, cfg, log)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("portal simulator run error")
	}
}

func parseFlags() portalsim.Config {
	var cfg portalsim.Config

	flag.StringVar(&cfg.Addr, "addr", portalsim.DefaultAddr, "Listen address host:port")
	flag.StringVar(&cfg.Username, "username", portalsim.DefaultUsername, "Accepted portal username")
	flag.StringVar(&cfg.Password, "password", portalsim.DefaultPassword, "Accepted portal password")
	flag.DurationVar(&cfg.ResponseDelay, "delay", 0, "Artificial delay before every response (e.g., 15s)")
	flag.IntVar(&cfg.FailStatus, "fail-status", 0, "Answer every request with this bare HTTP status (0 disables)")
	flag.Parse()

	return cfg
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
