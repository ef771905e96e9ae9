package argon2

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// configKeys lists the configuration keys in reporting order.
var configKeys = []string{KeyTimeCost, KeyMemoryCost, KeyParallelism, KeyHashLen, KeySaltLen, KeyEncoding}

// ConfigFromEnv reads a Config from environment variables named prefix
// followed by the upper-cased key, e.g. ARGON2_TIME_COST for prefix
// "ARGON2_".  Unset variables keep their defaults.  Values that are not
// integers are reported together in one [*ConfigurationError].
func ConfigFromEnv(prefix string) (Config, error) {
	return configFromLookup(prefix, os.LookupEnv)
}

// LoadConfig is [ConfigFromEnv] with dotenv files as a fallback: a key is
// taken from the process environment if set there, otherwise from the files.
// With no files, ".env" in the working directory is read.
func LoadConfig(prefix string, files ...string) (Config, error) {
	values, err := godotenv.Read(files...)
	if err != nil {
		return Config{}, fmt.Errorf("argon2: read dotenv: %w", err)
	}
	return configFromLookup(prefix, func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	})
}

// configFromLookup turns string settings into the loosely typed map accepted
// by ConfigFromMap.  Strings that do not parse as integers stay strings so
// that ConfigFromMap reports them.
func configFromLookup(prefix string, lookup func(string) (string, bool)) (Config, error) {
	raw := make(map[string]any, len(configKeys))
	for _, key := range configKeys {
		v, ok := lookup(prefix + strings.ToUpper(key))
		if !ok {
			continue
		}
		if key == KeyEncoding {
			raw[key] = v
			continue
		}
		raw[key] = parseIntSetting(v)
	}
	return ConfigFromMap(raw)
}

func parseIntSetting(v string) any {
	s := strings.TrimSpace(v)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return n
	}
	return v
}
