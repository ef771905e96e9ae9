package lowlevel

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// legacyVersion is assumed for hashes without a "v=" segment, which were
// produced by Argon2 1.0.
const legacyVersion uint32 = 0x10

// Parameters describes how an encoded hash was produced.
type Parameters struct {
	Type        Type
	Version     uint32
	SaltLen     uint32
	HashLen     uint32
	TimeCost    uint32
	MemoryCost  uint32
	Parallelism uint8
}

// phcHash is an encoded hash split into its parameters and raw values.
type phcHash struct {
	params Parameters
	salt   []byte
	hash   []byte
}

// encodePHC serialises an Argon2 hash in PHC string format:
//
//	$argon2id$v=19$m=512,t=2,p=2$<salt>$<hash>
//
// Salt and hash use standard base64 without padding, as the reference
// implementation does.
func encodePHC(t Type, timeCost, memoryCost uint32, parallelism uint8, salt, hash []byte) []byte {
	return []byte(fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		t.String(),
		Version,
		memoryCost,
		timeCost,
		parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	))
}

// decodePHC parses an encoded hash.  The version segment is optional; the
// parameter segment must list m, t and p in that order.
func decodePHC(encoded []byte) (*phcHash, error) {
	parts := strings.Split(string(encoded), "$")
	if len(parts) != 5 && len(parts) != 6 {
		return nil, newError(DecodingFail, "unexpected number of segments")
	}
	if parts[0] != "" {
		return nil, newError(DecodingFail, "missing leading '$'")
	}

	t, ok := typeFromName(parts[1])
	if !ok {
		return nil, newError(DecodingFail, "unknown variant")
	}
	parts = parts[2:]

	version := legacyVersion
	if len(parts) == 4 {
		v, err := parseKV(parts[0], "v", 32)
		if err != nil {
			return nil, err
		}
		version = uint32(v)
		parts = parts[1:]
	}

	fields := strings.Split(parts[0], ",")
	if len(fields) != 3 {
		return nil, newError(DecodingFail, "expected m, t and p parameters")
	}
	memory, err := parseKV(fields[0], "m", 32)
	if err != nil {
		return nil, err
	}
	time, err := parseKV(fields[1], "t", 32)
	if err != nil {
		return nil, err
	}
	threads, err := parseKV(fields[2], "p", 8)
	if err != nil {
		return nil, err
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, newError(DecodingFail, "salt is not valid base64")
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, newError(DecodingFail, "hash is not valid base64")
	}

	p := &phcHash{
		params: Parameters{
			Type:        t,
			Version:     version,
			SaltLen:     uint32(len(salt)),
			HashLen:     uint32(len(hash)),
			TimeCost:    uint32(time),
			MemoryCost:  uint32(memory),
			Parallelism: uint8(threads),
		},
		salt: salt,
		hash: hash,
	}
	if err := validateInputs(len(salt), p.params.TimeCost, p.params.MemoryCost, p.params.Parallelism, p.params.HashLen, t); err != nil {
		return nil, err
	}
	return p, nil
}

// parseKV parses "key=value" into an unsigned integer of the given bit size.
func parseKV(s, key string, bitSize int) (uint64, error) {
	prefix := key + "="
	if !strings.HasPrefix(s, prefix) {
		return 0, newError(DecodingFail, fmt.Sprintf("expected %q parameter", key))
	}
	digits := s[len(prefix):]
	// Reject signs and leading zeros so that every hash has one encoding.
	if digits == "" || digits[0] < '0' || digits[0] > '9' || (digits[0] == '0' && len(digits) > 1) {
		return 0, newError(DecodingFail, fmt.Sprintf("malformed %q parameter", key))
	}
	v, err := strconv.ParseUint(digits, 10, bitSize)
	if err != nil {
		return 0, newError(DecodingLengthFail, fmt.Sprintf("%q parameter out of range", key))
	}
	return v, nil
}
