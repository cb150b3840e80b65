// Package config loads runtime configuration for the todocards CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string   base URL of the HTTP API
//	-g string   address:port of the gRPC endpoint
//	-t string   transport to use: http or grpc
//	-f string   path of the local SQLite database
//	-i int      online status check interval (seconds)
//	-r int      per-request timeout (seconds)
//
// # JSON schema
//
// Intervals use timex.Duration, so values can be strings like "3s" or
// integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:8080",
//	  "grpc_addr": "127.0.0.1:50051",
//	  "transport": "grpc",
//	  "database_path": "todocards.db",
//	  "online_check_interval": "3s",
//	  "request_timeout": "5s"
//	}
package config
