package argon2

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
)

// ──────────────────────────────────────────────────────────────────────────────
// Defaults
// ──────────────────────────────────────────────────────────────────────────────

const (
	// DefaultTimeCost is the default number of iterations.
	DefaultTimeCost uint32 = 2

	// DefaultMemoryCost is the default memory usage in KiB.
	DefaultMemoryCost uint32 = 512

	// DefaultParallelism is the default number of lanes.
	DefaultParallelism uint8 = 2

	// DefaultHashLen is the default hash length in bytes.
	DefaultHashLen uint32 = 16

	// DefaultSaltLen is the default random salt length in bytes.
	DefaultSaltLen uint32 = 16

	// DefaultEncoding is the default text encoding for textual secrets.
	DefaultEncoding = "utf-8"
)

// Configuration keys, as used by [ConfigFromMap] and in error messages.
const (
	KeyTimeCost    = "time_cost"
	KeyMemoryCost  = "memory_cost"
	KeyParallelism = "parallelism"
	KeyHashLen     = "hash_len"
	KeySaltLen     = "salt_len"
	KeyEncoding    = "encoding"
)

// Config holds the tunable parameters of a [PasswordHasher].
//
// Ranges are not checked here.  The primitive rejects unusable values (time
// cost below 1, memory below 8 KiB per lane, hash shorter than 4 bytes, salt
// shorter than 8 bytes) when hashing, which surfaces as a [*HashingError].
type Config struct {
	// TimeCost is the number of iterations.
	TimeCost uint32 `json:"time_cost"`

	// MemoryCost is the memory usage in KiB.
	MemoryCost uint32 `json:"memory_cost"`

	// Parallelism is the number of lanes.  Changing it changes the hash.
	Parallelism uint8 `json:"parallelism"`

	// HashLen is the length of the hash in bytes.
	HashLen uint32 `json:"hash_len"`

	// SaltLen is the length of the random salt generated for each hash.
	SaltLen uint32 `json:"salt_len"`

	// Encoding names the text encoding used to turn string secrets into
	// bytes, e.g. "utf-8", "ascii" or "ISO-8859-1".
	Encoding string `json:"encoding"`
}

// DefaultConfig returns the default parameters.
func DefaultConfig() Config {
	return Config{
		TimeCost:    DefaultTimeCost,
		MemoryCost:  DefaultMemoryCost,
		Parallelism: DefaultParallelism,
		HashLen:     DefaultHashLen,
		SaltLen:     DefaultSaltLen,
		Encoding:    DefaultEncoding,
	}
}

// Validate checks c the way [NewPasswordHasher] does.
func (c Config) Validate() error {
	_, err := c.resolve()
	return err
}

// resolve validates c and returns its text encoding.  The numeric fields are
// typed, so only the encoding label can be of the wrong kind.
func (c Config) resolve() (textEncoding, error) {
	enc, err := resolveEncoding(c.Encoding)
	if err != nil {
		return textEncoding{}, &ConfigurationError{Fields: []FieldError{
			encodingFieldError(c.Encoding),
		}}
	}
	return enc, nil
}

func encodingFieldError(label string) FieldError {
	return FieldError{Field: KeyEncoding, Want: "a known text encoding", Got: strconv.Quote(label)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Loosely typed input
// ──────────────────────────────────────────────────────────────────────────────

// intField describes an integer field of Config.
type intField struct {
	key   string
	limit uint64
	set   func(*Config, uint64)
}

var intFields = []intField{
	{KeyTimeCost, math.MaxUint32, func(c *Config, v uint64) { c.TimeCost = uint32(v) }},
	{KeyMemoryCost, math.MaxUint32, func(c *Config, v uint64) { c.MemoryCost = uint32(v) }},
	{KeyParallelism, math.MaxUint8, func(c *Config, v uint64) { c.Parallelism = uint8(v) }},
	{KeyHashLen, math.MaxUint32, func(c *Config, v uint64) { c.HashLen = uint32(v) }},
	{KeySaltLen, math.MaxUint32, func(c *Config, v uint64) { c.SaltLen = uint32(v) }},
}

// ConfigFromMap builds a Config from loosely typed values, such as a decoded
// JSON or YAML document.  Missing keys keep their defaults.
//
// Integer fields accept any Go integer type, integral floats and
// [json.Number]; "encoding" accepts only a string naming a known encoding.
// Every offending key, unknown keys included, is reported in one
// [*ConfigurationError]:
//
//	_, err := argon2.ConfigFromMap(map[string]any{"time_cost": "2", "encoding": 8})
//	// argon2: invalid configuration: 'time_cost' must be an integer (got string),
//	// 'encoding' must be a string (got int).
func ConfigFromMap(raw map[string]any) (Config, error) {
	cfg := DefaultConfig()
	var offenders []FieldError

	for _, f := range intFields {
		v, ok := raw[f.key]
		if !ok {
			continue
		}
		n, fe, ok := toUint(f.key, v, f.limit)
		if !ok {
			offenders = append(offenders, fe)
			continue
		}
		f.set(&cfg, n)
	}

	if v, ok := raw[KeyEncoding]; ok {
		if s, isString := v.(string); !isString {
			offenders = append(offenders, FieldError{Field: KeyEncoding, Want: "a string", Got: typeName(v)})
		} else if _, err := resolveEncoding(s); err != nil {
			offenders = append(offenders, encodingFieldError(s))
		} else {
			cfg.Encoding = s
		}
	}

	for _, key := range slices.Sorted(maps.Keys(raw)) {
		if !isConfigKey(key) {
			offenders = append(offenders, FieldError{Field: key, Want: "a known configuration key", Got: "unknown key"})
		}
	}

	if len(offenders) > 0 {
		return Config{}, &ConfigurationError{Fields: offenders}
	}
	return cfg, nil
}

func isConfigKey(key string) bool {
	if key == KeyEncoding {
		return true
	}
	return slices.ContainsFunc(intFields, func(f intField) bool { return f.key == key })
}

// toUint converts v to an unsigned integer no larger than limit.
func toUint(key string, v any, limit uint64) (uint64, FieldError, bool) {
	wrongType := FieldError{Field: key, Want: "an integer", Got: typeName(v)}
	outOfRange := FieldError{Field: key, Want: fmt.Sprintf("an integer between 0 and %d", limit)}

	var (
		n        uint64
		negative bool
	)
	switch x := v.(type) {
	case int:
		n, negative = uint64(x), x < 0
	case int8:
		n, negative = uint64(x), x < 0
	case int16:
		n, negative = uint64(x), x < 0
	case int32:
		n, negative = uint64(x), x < 0
	case int64:
		n, negative = uint64(x), x < 0
	case uint:
		n = uint64(x)
	case uint8:
		n = uint64(x)
	case uint16:
		n = uint64(x)
	case uint32:
		n = uint64(x)
	case uint64:
		n = x
	case float32:
		return floatToUint(float64(x), wrongType, outOfRange, limit)
	case float64:
		return floatToUint(x, wrongType, outOfRange, limit)
	case json.Number:
		i, err := x.Int64()
		if err != nil {
			return 0, wrongType, false
		}
		n, negative = uint64(i), i < 0
	default:
		return 0, wrongType, false
	}

	if negative || n > limit {
		outOfRange.Got = fmt.Sprint(v)
		return 0, outOfRange, false
	}
	return n, FieldError{}, true
}

func floatToUint(f float64, wrongType, outOfRange FieldError, limit uint64) (uint64, FieldError, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, wrongType, false
	}
	if f < 0 || f > float64(limit) {
		outOfRange.Got = strconv.FormatFloat(f, 'f', -1, 64)
		return 0, outOfRange, false
	}
	return uint64(f), FieldError{}, true
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
