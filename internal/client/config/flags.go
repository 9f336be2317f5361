package config

import (
	"flag"
	"os"

	"github.com/chenjq/photofolio/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   base URL of the portfolio backend (default from Config)
//	-v string   API version segment (default from Config)
//	-d string   path of the local sqlite database file (default from Config)
//	-p int      gallery page size for the public listing (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-v", "-d", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "base URL of the portfolio backend")
	fs.StringVar(&cfg.APIVersion, "v", cfg.APIVersion, "API version segment")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local sqlite database file")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "gallery page size for the public listing")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
