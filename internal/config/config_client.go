package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the application version string shown in the TUI.
	Version string
	// LogFile is the client log file path.
	LogFile string
}

// ClientPortal holds the portal endpoint and protocol settings used by the
// client transport layer.
type ClientPortal struct {
	// Host is the portal gateway host.
	Host string
	// Port is the portal gateway TCP port.
	Port int
	// Path is the login endpoint path.
	Path string
	// Mode is the constant "mode" form field value.
	Mode string
	// ProductType is the constant "producttype" form field value.
	ProductType string
	// RequestTimeout bounds one login round trip.
	RequestTimeout time.Duration
	// InsecureSkipVerify disables TLS certificate validation (explicit,
	// security-reducing opt-out).
	InsecureSkipVerify bool
	// FailureMarkers flag a rejected login inside an HTTP 200 body.
	FailureMarkers []string
}

// ClientDB contains local journal database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// KeyFile is the vault key file path.
	KeyFile string
	// BlobFile is the vault credential blob path.
	BlobFile string
}

// ClientJournal contains journal retention settings.
type ClientJournal struct {
	// Retention is how long journaled attempts are kept.
	Retention time.Duration
	// PruneInterval defines how often the prune job runs.
	PruneInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Portal contains the captive-portal endpoint settings.
	Portal ClientPortal
	// Storage contains client storage settings.
	Storage ClientStorage
	// Journal contains journal housekeeping settings.
	Journal ClientJournal
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
			LogFile: cfg.App.LogFile,
		},
		Portal: ClientPortal{
			Host:               cfg.Portal.Host,
			Port:               cfg.Portal.Port,
			Path:               cfg.Portal.Path,
			Mode:               cfg.Portal.Mode,
			ProductType:        cfg.Portal.ProductType,
			RequestTimeout:     cfg.Portal.RequestTimeout,
			InsecureSkipVerify: cfg.Portal.InsecureSkipVerify,
			FailureMarkers:     cfg.Portal.FailureMarkers,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			KeyFile:  cfg.Storage.Files.KeyFile,
			BlobFile: cfg.Storage.Files.BlobFile,
		},
		Journal: ClientJournal{
			Retention:     cfg.Journal.Retention,
			PruneInterval: cfg.Journal.PruneInterval,
		},
	}

	return clientCfg, clientCfg.validate()
}
