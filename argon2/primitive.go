package argon2

import "github.com/hasbyte1/go-argon2-utils/lowlevel"

// Primitive computes and checks Argon2 hashes on behalf of a
// [PasswordHasher].  Implementations must be safe for concurrent use if the
// hasher is shared between goroutines.
//
// HashSecret returns the encoded hash of secret.
//
// VerifySecret returns (true, nil) on a match.  A mismatch is reported either
// as (false, nil) or as an error matching [lowlevel.ErrVerifyMismatch] or
// [ErrVerifyMismatch]; any other error is a verification failure.
type Primitive interface {
	HashSecret(secret, salt []byte, timeCost, memoryCost uint32, parallelism uint8, hashLen uint32, t Type) ([]byte, error)
	VerifySecret(encoded, secret []byte, t Type) (bool, error)
}

// lowlevelPrimitive is the default Primitive.
type lowlevelPrimitive struct{}

func (lowlevelPrimitive) HashSecret(secret, salt []byte, timeCost, memoryCost uint32, parallelism uint8, hashLen uint32, t Type) ([]byte, error) {
	return lowlevel.HashSecret(secret, salt, timeCost, memoryCost, parallelism, hashLen, t)
}

func (lowlevelPrimitive) VerifySecret(encoded, secret []byte, t Type) (bool, error) {
	return lowlevel.VerifySecret(encoded, secret, t)
}
