// Package config loads runtime configuration for the RetailHub client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   base URL of the user-storage service
//	-d string   path of the local session database file
//	-r          preserve the attempted destination on login redirects
//
// # JSON schema
//
//	{
//	  "server_base_url": "http://localhost:3001",
//	  "session_db_path": "retailhub.db",
//	  "preserve_return_url": false
//	}
//
// Note: this package does not read environment variables; use the JSON file
// or flags to configure values.
package config
