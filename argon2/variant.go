package argon2

import (
	"fmt"

	"github.com/hasbyte1/go-argon2-utils/lowlevel"
)

// Type selects an Argon2 variant.
type Type = lowlevel.Type

// Argon2 variants.  [PasswordHasher] always hashes with TypeID and verifies
// whichever variant an encoded hash announces.
const (
	TypeD  = lowlevel.TypeD
	TypeI  = lowlevel.TypeI
	TypeID = lowlevel.TypeID
)

// headerLen is the number of leading bytes inspected to detect the variant.
const headerLen = 9

// headerToType maps the first headerLen bytes of an encoded hash to its
// variant.  "$argon2id" has no trailing '$' because it is already 9 bytes.
var headerToType = map[string]Type{
	"$argon2i$": TypeI,
	"$argon2d$": TypeD,
	"$argon2id": TypeID,
}

// DetectType reports which Argon2 variant produced hash by looking at its
// first 9 bytes and nothing else.  Hashes shorter than that, or with an
// unknown prefix, fail with [ErrInvalidHash].
func DetectType(hash []byte) (Type, error) {
	if len(hash) < headerLen {
		return 0, fmt.Errorf("%w: shorter than %d bytes", ErrInvalidHash, headerLen)
	}
	t, ok := headerToType[string(hash[:headerLen])]
	if !ok {
		return 0, fmt.Errorf("%w: unknown variant prefix", ErrInvalidHash)
	}
	return t, nil
}
