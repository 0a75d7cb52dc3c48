package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ontoproxy/ontoproxy/pkg/codec"
	"github.com/ontoproxy/ontoproxy/pkg/orchestrator"
)

// version is stamped at release time; left as a placeholder for local builds.
const version = "0.0.0-dev"

// Config is the fully-resolved set of values the server runs with, after
// config-file defaulting and flag parsing.
type Config struct {
	Port       int
	Address    string
	CacheDir   string
	Preference orchestrator.Preference
	Verbose    bool
	Quiet      bool
}

// fileConfig is the shape of the optional on-disk override file (JSON,
// YAML, or TOML, selected by extension). Every field is optional: only
// keys present in the file override the built-in default, and a flag on
// the command line always wins over either.
type fileConfig struct {
	Port              *int    `config:"port"`
	Address           *string `config:"address"`
	CacheDir          *string `config:"cache_dir"`
	PrefereConversion *bool   `config:"prefere_conversion"`
	Verbose           *bool   `config:"verbose"`
	Quiet             *bool   `config:"quiet"`
}

// loadFileConfig reads path (if non-empty) with [codec.DecodeFile].
func loadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	if path == "" {
		return fc, nil
	}
	if _, err := codec.DecodeFile(path, "config", &fc); err != nil {
		return fileConfig{}, fmt.Errorf("failed to load config file %q: %w", path, err)
	}
	return fc, nil
}

// extractConfigPath scans args for "--config"/"-config" ahead of the real
// flag.Parse pass, since a config file's contents must seed flag defaults
// before the flag set describing those same flags is built.
func extractConfigPath(args []string) string {
	for i, a := range args {
		switch {
		case a == "--config" || a == "-config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config=")
		case strings.HasPrefix(a, "-config="):
			return strings.TrimPrefix(a, "-config=")
		}
	}
	return ""
}

// parseConfig parses args (normally os.Args[1:]) into a [Config]. It prints
// usage or version text and returns ok == false when the caller should exit
// immediately without starting the server.
func parseConfig(args []string, stderr *os.File) (cfg Config, ok bool, err error) {
	fc, err := loadFileConfig(extractConfigPath(args))
	if err != nil {
		return Config{}, false, err
	}

	defaultCacheDir, cacheErr := os.UserCacheDir()
	if cacheErr != nil {
		defaultCacheDir = "."
	}

	defaultPort := 3000
	defaultAddress := "127.0.0.1"
	defaultPrefereConversion := false
	defaultVerbose := false
	defaultQuiet := false
	if fc.Port != nil {
		defaultPort = *fc.Port
	}
	if fc.Address != nil {
		defaultAddress = *fc.Address
	}
	if fc.CacheDir != nil {
		defaultCacheDir = *fc.CacheDir
	}
	if fc.PrefereConversion != nil {
		defaultPrefereConversion = *fc.PrefereConversion
	}
	if fc.Verbose != nil {
		defaultVerbose = *fc.Verbose
	}
	if fc.Quiet != nil {
		defaultQuiet = *fc.Quiet
	}

	fs := flag.NewFlagSet("ontoproxy", flag.ContinueOnError)
	fs.SetOutput(stderr)

	port := fs.Int("port", defaultPort, "port to listen on")
	address := fs.String("address", defaultAddress, "address to bind to")
	cacheDir := fs.String("cache-dir", defaultCacheDir, "directory used to cache downloaded and converted ontologies")
	prefereConversion := fs.Bool("prefere-conversion", defaultPrefereConversion, "prefer converting from an already-cached format over downloading again")
	verbose := fs.Bool("verbose", defaultVerbose, "enable debug-level logging")
	quiet := fs.Bool("quiet", defaultQuiet, "suppress all logging below warning level")
	showVersion := fs.Bool("version", false, "print the version and exit")
	fs.String("config", "", "optional JSON/YAML/TOML file overriding the defaults above")

	if err := fs.Parse(args); err != nil {
		return Config{}, false, nil // flag already printed the usage/error text
	}

	if *showVersion {
		fmt.Fprintln(stderr, "ontoproxy", version)
		return Config{}, false, nil
	}

	preference := orchestrator.PreferDownload
	if *prefereConversion {
		preference = orchestrator.PreferConvert
	}

	return Config{
		Port:       *port,
		Address:    *address,
		CacheDir:   *cacheDir,
		Preference: preference,
		Verbose:    *verbose,
		Quiet:      *quiet,
	}, true, nil
}
