package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/dmitrijs2005/taskmanager/internal/flagx"
	"github.com/dmitrijs2005/taskmanager/internal/timex"
)

// FileConfig is a DTO used exclusively for decoding the config file.
// The durations rely on timex.Duration, so they may be a string like "5s"
// or integer nanoseconds.
type FileConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr" toml:"server_endpoint_addr"`
	DataDir             string         `json:"data_dir" toml:"data_dir"`
	Storage             string         `json:"storage" toml:"storage"`
	DatabaseDSN         string         `json:"database_dsn" toml:"database_dsn"`
	ReportDir           string         `json:"report_dir" toml:"report_dir"`
	RequestTimeout      timex.Duration `json:"request_timeout" toml:"request_timeout"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval" toml:"online_check_interval"`
	LogLevel            string         `json:"log_level" toml:"log_level"`
}

// parseFile overlays config with the file named by -c/-config.
// It panics on read or decode errors.
func parseFile(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}
	if err := loadFile(config, path); err != nil {
		panic(err)
	}
}

func loadFile(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	fc := &FileConfig{}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, fc)
	} else {
		err = json.Unmarshal(data, fc)
	}
	if err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	if fc.ServerEndpointAddr != "" {
		config.ServerEndpointAddr = fc.ServerEndpointAddr
	}
	if fc.DataDir != "" {
		config.DataDir = fc.DataDir
	}
	if fc.Storage != "" {
		config.Storage = fc.Storage
	}
	if fc.DatabaseDSN != "" {
		config.DatabaseDSN = fc.DatabaseDSN
	}
	if fc.ReportDir != "" {
		config.ReportDir = fc.ReportDir
	}
	if fc.RequestTimeout.Duration != 0 {
		config.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.OnlineCheckInterval.Duration != 0 {
		config.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
	if fc.LogLevel != "" {
		config.LogLevel = fc.LogLevel
	}
	return nil
}
