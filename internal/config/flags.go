package config

import (
	"os"

	"github.com/spf13/pflag"
)

// Names of the flags that select configuration sources.
const (
	FlagConfig  = "config"
	FlagEnvFile = "env-file"
)

// BindFlags registers every configuration flag on fs, with defaults shown
// from Defaults.
func BindFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.StringP(FlagConfig, "c", "", "path to a JSON config file")
	fs.String(FlagEnvFile, ".env", "dotenv file with SKILLVERSE_* variables")
	for _, f := range d.fields() {
		fs.String(f.flag, *f.dst, f.usage)
	}
}

// Load builds the configuration from defaults, the JSON file, the
// environment and finally the explicitly set flags of fs. fs must have been
// prepared with BindFlags and parsed.
func Load(fs *pflag.FlagSet, lookup LookupFunc) (*Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg := Defaults()

	if path, _ := fs.GetString(FlagConfig); path != "" {
		if err := cfg.LoadJSON(path); err != nil {
			return nil, err
		}
	}

	envFile, _ := fs.GetString(FlagEnvFile)
	if err := cfg.LoadEnv(envFile, fs.Changed(FlagEnvFile), lookup); err != nil {
		return nil, err
	}

	for _, f := range cfg.fields() {
		if fs.Changed(f.flag) {
			v, err := fs.GetString(f.flag)
			if err != nil {
				return nil, err
			}
			*f.dst = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
