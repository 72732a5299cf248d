package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/taskmanager/internal/flagx"
)

// serverFlags lists the flags handled by parseFlags.
var serverFlags = []string{
	"-l", "-a", "-D", "-S", "-d", "-s", "-t", "-R", "-o",
	"-u", "-p", "-b", "-g", "-e", "-P", "-A", "-v",
}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-l string   HTTP bind address (e.g., ":5000")
//	-a string   gRPC bind address (e.g., ":50051")
//	-D string   data directory of the flat-file store and file reports
//	-S string   storage backend: file, postgres, sqlite or mysql
//	-d string   database DSN for SQL storage
//	-s string   session HMAC secret key
//	-t int      session validity, minutes
//	-R string   report sink: file or s3
//	-o string   report directory of the file sink
//	-u string   S3 access key
//	-p string   S3 secret key
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-P string   S3 key prefix
//	-A bool     keep archived copies of every generated report in S3
//	-v string   log level
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with -c/-config.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], serverFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "l", config.HTTPAddr, "address and port of the web server")
	fs.StringVar(&config.GRPCAddr, "a", config.GRPCAddr, "address and port of the gRPC server")
	fs.StringVar(&config.DataDir, "D", config.DataDir, "data directory")
	fs.StringVar(&config.Storage, "S", config.Storage, "storage backend")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionValidity := fs.Int("t", int(config.SessionValidityDuration.Minutes()), "session_validity_duration (in minutes)")

	fs.StringVar(&config.ReportSink, "R", config.ReportSink, "report sink")
	fs.StringVar(&config.ReportDir, "o", config.ReportDir, "report directory")
	fs.StringVar(&config.S3AccessKey, "u", config.S3AccessKey, "S3 access key")
	fs.StringVar(&config.S3SecretKey, "p", config.S3SecretKey, "S3 secret key")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3Prefix, "P", config.S3Prefix, "S3 key prefix")
	fs.BoolVar(&config.S3Archive, "A", config.S3Archive, "archive generated reports in S3")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionValidityDuration = time.Duration(*sessionValidity) * time.Minute
}
