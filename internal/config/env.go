package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable read by LoadEnv.
const EnvPrefix = "SKILLVERSE_"

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadEnv overlays c with SKILLVERSE_* variables. Values come from lookup
// first and then from the dotenv file, when envFile is set. A missing
// dotenv file is an error only when required.
func (c *Config) LoadEnv(envFile string, required bool, lookup LookupFunc) error {
	var file map[string]string
	if envFile != "" {
		vals, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			file = vals
		case errors.Is(err, fs.ErrNotExist) && !required:
		default:
			return fmt.Errorf("config: read env file %s: %w", envFile, err)
		}
	}

	for _, f := range c.fields() {
		key := EnvPrefix + f.env
		if v, ok := lookup(key); ok {
			*f.dst = v
			continue
		}
		if v, ok := file[key]; ok {
			*f.dst = v
		}
	}
	return nil
}
