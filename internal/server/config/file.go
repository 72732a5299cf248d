package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/dmitrijs2005/taskmanager/internal/flagx"
	"github.com/dmitrijs2005/taskmanager/internal/timex"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "taskmanager://server-config.schema.json"

// FileConfig is the on-disk shape of the config file. Durations accept a
// Go duration string such as "12h" or integer nanoseconds. Zero values
// leave the current setting untouched.
type FileConfig struct {
	HTTPAddr                string         `json:"http_addr" toml:"http_addr"`
	GRPCAddr                string         `json:"grpc_addr" toml:"grpc_addr"`
	DataDir                 string         `json:"data_dir" toml:"data_dir"`
	Storage                 string         `json:"storage" toml:"storage"`
	DatabaseDSN             string         `json:"database_dsn" toml:"database_dsn"`
	SecretKey               string         `json:"secret_key" toml:"secret_key"`
	SessionValidityDuration timex.Duration `json:"session_validity_duration" toml:"session_validity_duration"`
	ReportSink              string         `json:"report_sink" toml:"report_sink"`
	ReportDir               string         `json:"report_dir" toml:"report_dir"`
	S3AccessKey             string         `json:"s3_access_key" toml:"s3_access_key"`
	S3SecretKey             string         `json:"s3_secret_key" toml:"s3_secret_key"`
	S3Bucket                string         `json:"s3_bucket" toml:"s3_bucket"`
	S3Region                string         `json:"s3_region" toml:"s3_region"`
	S3BaseEndpoint          string         `json:"s3_base_endpoint" toml:"s3_base_endpoint"`
	S3Prefix                string         `json:"s3_prefix" toml:"s3_prefix"`
	S3Archive               *bool          `json:"s3_archive" toml:"s3_archive"`
	LogLevel                string         `json:"log_level" toml:"log_level"`
}

// parseFile loads the file named by -c/-config, if any, into config.
// It panics when the file cannot be read or is invalid.
func parseFile(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}
	if err := loadFile(config, path); err != nil {
		panic(err)
	}
}

// loadFile decodes path as TOML when it ends in .toml and as JSON otherwise.
// JSON files are validated against the embedded schema first.
func loadFile(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	fc := &FileConfig{}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), fc); err != nil {
			return fmt.Errorf("decode toml config %s: %w", path, err)
		}
	} else {
		if err := validateJSON(data); err != nil {
			return fmt.Errorf("invalid config %s: %w", path, err)
		}
		if err := json.Unmarshal(data, fc); err != nil {
			return fmt.Errorf("decode json config %s: %w", path, err)
		}
	}

	fc.apply(config)
	return nil
}

func validateJSON(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	return schema.Validate(doc)
}

func (fc *FileConfig) apply(c *Config) {
	setString(&c.HTTPAddr, fc.HTTPAddr)
	setString(&c.GRPCAddr, fc.GRPCAddr)
	setString(&c.DataDir, fc.DataDir)
	setString(&c.Storage, fc.Storage)
	setString(&c.DatabaseDSN, fc.DatabaseDSN)
	setString(&c.SecretKey, fc.SecretKey)
	if fc.SessionValidityDuration.Duration != 0 {
		c.SessionValidityDuration = fc.SessionValidityDuration.Duration
	}
	setString(&c.ReportSink, fc.ReportSink)
	setString(&c.ReportDir, fc.ReportDir)
	setString(&c.S3AccessKey, fc.S3AccessKey)
	setString(&c.S3SecretKey, fc.S3SecretKey)
	setString(&c.S3Bucket, fc.S3Bucket)
	setString(&c.S3Region, fc.S3Region)
	setString(&c.S3BaseEndpoint, fc.S3BaseEndpoint)
	setString(&c.S3Prefix, fc.S3Prefix)
	if fc.S3Archive != nil {
		c.S3Archive = *fc.S3Archive
	}
	setString(&c.LogLevel, fc.LogLevel)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
