package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations, so a config file can say "10s" instead of
// nanosecond integers.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
		LogFile string `json:"log_file"`
	} `json:"app,omitempty"`

	Portal struct {
		Host               string   `json:"host"`
		Port               int      `json:"port"`
		Path               string   `json:"path"`
		Mode               string   `json:"mode"`
		ProductType        string   `json:"producttype"`
		RequestTimeout     Duration `json:"request_timeout"`
		InsecureSkipVerify bool     `json:"insecure_skip_verify"`
		FailureMarkers     []string `json:"failure_markers"`
	} `json:"portal,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			KeyFile  string `json:"key_file"`
			BlobFile string `json:"blob_file"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Journal struct {
		Retention     Duration `json:"retention"`
		PruneInterval Duration `json:"prune_interval"`
	} `json:"journal,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
			LogFile: jsonCfg.App.LogFile,
		},
		Portal: Portal{
			Host:               jsonCfg.Portal.Host,
			Port:               jsonCfg.Portal.Port,
			Path:               jsonCfg.Portal.Path,
			Mode:               jsonCfg.Portal.Mode,
			ProductType:        jsonCfg.Portal.ProductType,
			RequestTimeout:     time.Duration(jsonCfg.Portal.RequestTimeout),
			InsecureSkipVerify: jsonCfg.Portal.InsecureSkipVerify,
			FailureMarkers:     jsonCfg.Portal.FailureMarkers,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				KeyFile:  jsonCfg.Storage.Files.KeyFile,
				BlobFile: jsonCfg.Storage.Files.BlobFile,
			},
		},
		Journal: Journal{
			Retention:     time.Duration(jsonCfg.Journal.Retention),
			PruneInterval: time.Duration(jsonCfg.Journal.PruneInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
