package config

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
)

// Flags holds the command line options. set records the flags given
// explicitly so they can win over the config file and environment.
type Flags struct {
	Dev        bool
	LogPath    string
	ServerURL  string
	ConfigFile string

	set map[string]bool
}

var Args *Flags

func Init() {
	// A missing .env is normal; the process environment is used as is.
	_ = godotenv.Load()

	args, err := ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		// flag.CommandLine exits on error, so this is unreachable in practice.
		panic(err)
	}
	Args = args
}

func ParseFlags(fs *flag.FlagSet, arguments []string) (*Flags, error) {
	f := &Flags{set: make(map[string]bool)}
	fs.BoolVar(&f.Dev, "dev", false, "Development mode")
	fs.StringVar(&f.LogPath, "logPath", "", "Path to save the log file")
	fs.StringVar(&f.ServerURL, "server", DefaultServerURL, "Base URL of the text processing server")
	fs.StringVar(&f.ConfigFile, "config", "", "Path to the config file")

	if err := fs.Parse(arguments); err != nil {
		return nil, err
	}
	fs.Visit(func(fl *flag.Flag) {
		f.set[fl.Name] = true
	})
	return f, nil
}
