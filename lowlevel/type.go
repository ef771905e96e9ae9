package lowlevel

import (
	"fmt"

	cryptargon2 "github.com/go-crypt/crypt/algorithm/argon2"
	"golang.org/x/crypto/argon2"
)

// Version is the Argon2 version computed and encoded by this package (0x13).
const Version uint32 = argon2.Version

// Type selects an Argon2 variant.  The values match the reference C library.
type Type int

const (
	// TypeD uses data-dependent memory access.  It is the fastest variant and
	// the weakest against side-channel attacks; avoid it for passwords.
	TypeD Type = 0

	// TypeI uses data-independent memory access and makes more passes to
	// resist tradeoff attacks.
	TypeI Type = 1

	// TypeID mixes both access patterns.  It is the recommended variant for
	// password hashing (RFC 9106).
	TypeID Type = 2
)

// String returns the variant identifier used in encoded hashes.
func (t Type) String() string {
	switch t {
	case TypeD:
		return "argon2d"
	case TypeI:
		return "argon2i"
	case TypeID:
		return "argon2id"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Prefix returns the leading "$<variant>$" segment of an encoded hash.
func (t Type) Prefix() string { return "$" + t.String() + "$" }

// Valid reports whether t is one of the three Argon2 variants.
func (t Type) Valid() bool { return t == TypeD || t == TypeI || t == TypeID }

func typeFromName(name string) (Type, bool) {
	switch name {
	case "argon2d":
		return TypeD, true
	case "argon2i":
		return TypeI, true
	case "argon2id":
		return TypeID, true
	default:
		return 0, false
	}
}

// deriveKey runs the variant's key derivation.  Inputs must already have
// passed validateInputs: x/crypto panics on zero time or parallelism.
func (t Type) deriveKey(secret, salt []byte, timeCost, memoryCost uint32, parallelism uint8, hashLen uint32) []byte {
	switch t {
	case TypeI:
		return argon2.Key(secret, salt, timeCost, memoryCost, parallelism, hashLen)
	case TypeID:
		return argon2.IDKey(secret, salt, timeCost, memoryCost, parallelism, hashLen)
	default:
		return cryptargon2.VariantD.KeyFunc()(secret, salt, timeCost, memoryCost, uint32(parallelism), hashLen)
	}
}
