package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-portal portal gateway address in format [host]:[port]
//	-portal-path portal login endpoint path
//	-mode portal "mode" form field constant
//	-producttype portal "producttype" form field constant
//	-timeout portal request timeout (e.g., "10s")
//	-insecure-skip-verify disable TLS certificate validation (reduces security)
//	-markers comma-separated failure marker substrings
//	-d journal database DSN (SQLite file path)
//	-key-file vault key file path
//	-blob-file vault credential blob path
//	-log-file client log file path
//	-retention journal retention window (e.g., "720h")
//	-prune-interval journal prune job interval (e.g., "6h")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var portalAddress NetAddress
	var portalPath string
	var mode string
	var productType string
	var requestTimeout time.Duration
	var insecureSkipVerify bool
	var markers string
	var journalDSN string
	var keyFile string
	var blobFile string
	var logFile string
	var retention time.Duration
	var pruneInterval time.Duration
	var jsonConfigPath string

	flag.Var(&portalAddress, "portal", "Portal gateway address host:port")
	flag.StringVar(&portalPath, "portal-path", "", "Portal login endpoint path")
	flag.StringVar(&mode, "mode", "", "Portal mode form field constant")
	flag.StringVar(&productType, "producttype", "", "Portal producttype form field constant")
	flag.DurationVar(&requestTimeout, "timeout", 0, "Portal request timeout (e.g., 10s)")
	flag.BoolVar(&insecureSkipVerify, "insecure-skip-verify", false,
		"Skip TLS certificate validation for the portal endpoint (reduces security)")
	flag.StringVar(&markers, "markers", "", "Comma-separated failure marker substrings")
	flag.StringVar(&journalDSN, "d", "", "Journal database DSN")
	flag.StringVar(&keyFile, "key-file", "", "Vault key file path")
	flag.StringVar(&blobFile, "blob-file", "", "Vault credential blob path")
	flag.StringVar(&logFile, "log-file", "", "Client log file path")
	flag.DurationVar(&retention, "retention", 0, "Journal retention window (e.g., 720h)")
	flag.DurationVar(&pruneInterval, "prune-interval", 0, "Journal prune interval (e.g., 6h)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Portal: Portal{
			Host:               portalAddress.Host,
			Port:               portalAddress.Port,
			Path:               portalPath,
			Mode:               mode,
			ProductType:        productType,
			RequestTimeout:     requestTimeout,
			InsecureSkipVerify: insecureSkipVerify,
			FailureMarkers:     splitMarkers(markers),
		},
		Storage: Storage{
			DB: DB{
				DSN: journalDSN,
			},
			Files: Files{
				KeyFile:  keyFile,
				BlobFile: blobFile,
			},
		},
		Journal: Journal{
			Retention:     retention,
			PruneInterval: pruneInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// splitMarkers turns the -markers flag value into a marker list, dropping
// empty segments so trailing commas are harmless.
func splitMarkers(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	markers := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			markers = append(markers, trimmed)
		}
	}

	if len(markers) == 0 {
		return nil
	}
	return markers
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be an IP address or a DNS name (campus gateways are reachable
// both ways); the port must be in the valid TCP range.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	if host == "" {
		return errors.New("host must not be empty")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	a.Host = host
	a.Port = port
	return nil
}
