package lowlevel

import (
	"crypto/subtle"
	"math"
)

const (
	minSaltLen  = 8
	minHashLen  = 4
	minTimeCost = 1
	minLanes    = 1
	// syncPoints is the number of memory blocks per lane required by the
	// algorithm; memory must be at least syncPoints * parallelism KiB.
	syncPoints = 8
)

// MaxMemoryCost is the largest memory cost, in KiB, accepted for hashing or
// verification.  Larger values fail with MemoryAllocationError instead of
// exhausting the process; the Go runtime cannot recover from a failed
// allocation.  Raise it before use on hosts that need more than 4 GiB per hash.
var MaxMemoryCost uint32 = 4 << 20

// HashSecret hashes secret and returns the PHC encoded hash, which can be
// passed straight to [VerifySecret] because it carries the parameters and the
// salt.
//
// salt should be random and unique per secret.
func HashSecret(secret, salt []byte, timeCost, memoryCost uint32, parallelism uint8, hashLen uint32, t Type) ([]byte, error) {
	raw, err := HashSecretRaw(secret, salt, timeCost, memoryCost, parallelism, hashLen, t)
	if err != nil {
		return nil, err
	}
	return encodePHC(t, timeCost, memoryCost, parallelism, salt, raw), nil
}

// HashSecretRaw hashes secret like [HashSecret] but returns only the hashLen
// raw hash bytes.
func HashSecretRaw(secret, salt []byte, timeCost, memoryCost uint32, parallelism uint8, hashLen uint32, t Type) ([]byte, error) {
	if uint64(len(secret)) > math.MaxUint32 {
		return nil, newError(PwdTooLong, "")
	}
	if err := validateInputs(len(salt), timeCost, memoryCost, parallelism, hashLen, t); err != nil {
		return nil, err
	}
	return t.deriveKey(secret, salt, timeCost, memoryCost, parallelism, hashLen), nil
}

// VerifySecret reports whether secret matches the encoded hash of variant t.
//
// It returns (true, nil) on a match.  A mismatch returns [ErrVerifyMismatch];
// an undecodable hash, a hash of another variant or an unsupported version
// returns an [*Error] with the matching code.
func VerifySecret(encoded, secret []byte, t Type) (bool, error) {
	if !t.Valid() {
		return false, newError(IncorrectType, "")
	}
	p, err := decodePHC(encoded)
	if err != nil {
		return false, err
	}
	if p.params.Type != t {
		return false, newError(DecodingFail, "hash was produced by "+p.params.Type.String())
	}
	if p.params.Version != Version {
		return false, newError(IncorrectParameter, "unsupported version")
	}
	if uint64(len(secret)) > math.MaxUint32 {
		return false, newError(PwdTooLong, "")
	}

	computed := t.deriveKey(secret, p.salt, p.params.TimeCost, p.params.MemoryCost, p.params.Parallelism, p.params.HashLen)
	if subtle.ConstantTimeCompare(computed, p.hash) != 1 {
		return false, ErrVerifyMismatch
	}
	return true, nil
}

// ExtractParameters decodes the parameters of an encoded hash without
// verifying anything.
func ExtractParameters(encoded []byte) (Parameters, error) {
	p, err := decodePHC(encoded)
	if err != nil {
		return Parameters{}, err
	}
	return p.params, nil
}

func validateInputs(saltLen int, timeCost, memoryCost uint32, parallelism uint8, hashLen uint32, t Type) error {
	switch {
	case !t.Valid():
		return newError(IncorrectType, "")
	case hashLen < minHashLen:
		return newError(OutputTooShort, "")
	case saltLen < minSaltLen:
		return newError(SaltTooShort, "")
	case timeCost < minTimeCost:
		return newError(TimeTooSmall, "")
	case parallelism < minLanes:
		return newError(LanesTooFew, "")
	case uint64(memoryCost) < syncPoints*uint64(parallelism):
		return newError(MemoryTooLittle, "")
	case memoryCost > MaxMemoryCost:
		return newError(MemoryAllocationError, "memory cost exceeds MaxMemoryCost")
	}
	return nil
}
