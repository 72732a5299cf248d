// Package config loads runtime configuration for the task manager terminal
// client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .toml are decoded as TOML, anything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the gRPC API; empty means local mode
//	-D string   data directory of the flat-file store (local mode)
//	-S string   storage backend (local mode)
//	-d string   database DSN (local mode)
//	-o string   report directory (local mode)
//	-t int      request timeout (seconds)
//	-i int      online status check interval (seconds)
//	-v string   log level
//
// Example JSON file:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "5s",
//	  "online_check_interval": "3s"
//	}
package config
