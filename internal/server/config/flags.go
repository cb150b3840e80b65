package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/todocards/internal/flagx"
)

// parseFlags applies the short flags below. Unknown arguments are filtered
// out first so other flag sets can share os.Args.
//
//	-a  HTTP listen address        -g  gRPC listen address
//	-d  PostgreSQL DSN             -s  JWT secret key
//	-t  token TTL in minutes       -l  log level
//	-o  allowed CORS origin
//	-u  S3 user  -p  S3 password  -b  S3 bucket  -n  S3 region  -e  S3 endpoint
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-g", "-d", "-s", "-t", "-l", "-o", "-u", "-p", "-b", "-n", "-e"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "HTTP listen address")
	fs.StringVar(&config.GRPCAddr, "g", config.GRPCAddr, "gRPC listen address")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	ttl := fs.Int("t", int(config.TokenTTL.Minutes()), "token validity in minutes, 0 for no expiry")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.CORSOrigin, "o", config.CORSOrigin, "allowed CORS origin")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "n", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		return err
	}

	tokenTTLSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			tokenTTLSet = true
		}
	})
	if tokenTTLSet {
		config.TokenTTL = time.Duration(*ttl) * time.Minute
	}
	return nil
}
