package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/retailhub/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-u string   base URL of the user-storage service (default from Config)
//	-d string   path of the local session database file
//	-r          preserve the attempted destination on login redirects
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-d", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "u", cfg.ServerBaseURL, "base URL of the user-storage service")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "path of the local session database")
	fs.BoolVar(&cfg.PreserveReturnURL, "r", cfg.PreserveReturnURL, "preserve return URL on login redirects")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
