// Package config handles configuration for the server component: defaults,
// an optional JSON or TOML config file, the environment and command-line
// flags, applied in that order.
package config

import (
	"os"
	"time"
)

// SecretKeyEnv names the environment variable holding the session secret.
const SecretKeyEnv = "TM_SECRET_KEY"

// Report sinks.
const (
	ReportSinkFile = "file"
	ReportSinkS3   = "s3"
)

// Config holds runtime settings for the task manager server.
//
// Fields:
//   - HTTPAddr / GRPCAddr: bind addresses of the web front end and the API.
//   - Storage: "file" (flat files in DataDir) or "postgres", "sqlite", "mysql" (DatabaseDSN).
//   - SecretKey: HMAC secret for session tokens (HS256).
//   - SessionValidityDuration: lifetime of a login.
//   - ReportSink: "file" (ReportDir, defaults to DataDir) or "s3" (the S3* settings).
//   - LogLevel: debug, info, warn or error.
type Config struct {
	HTTPAddr                string
	GRPCAddr                string
	DataDir                 string
	Storage                 string
	DatabaseDSN             string
	SecretKey               string
	SessionValidityDuration time.Duration
	ReportSink              string
	ReportDir               string
	S3AccessKey             string
	S3SecretKey             string
	S3Bucket                string
	S3Region                string
	S3BaseEndpoint          string
	S3Prefix                string
	S3Archive               bool
	LogLevel                string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the default secret key is public and must be overridden in production.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":5000"
	c.GRPCAddr = ":50051"
	c.DataDir = "."
	c.Storage = "file"
	c.DatabaseDSN = ""
	c.SecretKey = "change_this_to_a_secure_key"
	c.SessionValidityDuration = 24 * time.Hour
	c.ReportSink = ReportSinkFile
	c.ReportDir = ""
	c.S3AccessKey = "admin"
	c.S3SecretKey = "secretpassword"
	c.S3Bucket = "taskmanager"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.S3Prefix = "reports"
	c.S3Archive = false
	c.LogLevel = "info"
}

// ReportDirectory returns where the file report sink writes.
func (c *Config) ReportDirectory() string {
	if c.ReportDir != "" {
		return c.ReportDir
	}
	return c.DataDir
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional config file, the environment and finally command-line
// flags. It panics when the config file or the flags are invalid.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv(SecretKeyEnv); ok && v != "" {
		cfg.SecretKey = v
	}
}
