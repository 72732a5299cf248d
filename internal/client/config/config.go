package config

import "time"

// Config holds runtime settings for the task manager CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the gRPC API. When empty the client
//     works in local mode, directly on the store below.
//   - DataDir, Storage, DatabaseDSN, ReportDir: the local store and report
//     directory, same meaning as on the server.
//   - RequestTimeout: deadline of every remote call.
//   - OnlineCheckInterval: how often a remote client probes the server.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerEndpointAddr  string
	DataDir             string
	Storage             string
	DatabaseDSN         string
	ReportDir           string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	LogLevel            string
}

// LoadDefaults populates c with local-mode defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = ""
	c.DataDir = "."
	c.Storage = "file"
	c.DatabaseDSN = ""
	c.ReportDir = ""
	c.RequestTimeout = 12 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.LogLevel = "warn"
}

// Remote reports whether the client talks to a server.
func (c *Config) Remote() bool {
	return c.ServerEndpointAddr != ""
}

// ReportDirectory returns where local reports are written.
func (c *Config) ReportDirectory() string {
	if c.ReportDir != "" {
		return c.ReportDir
	}
	return c.DataDir
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
