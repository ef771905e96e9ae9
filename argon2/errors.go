package argon2

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the facade.
//
// Every failure matches exactly one of them under [errors.Is], so callers can
// tell a wrong password apart from a broken setup:
//
//	ok, err := h.Verify(stored, password)
//	switch {
//	case err == nil:
//	    // ok is true
//	case errors.Is(err, argon2.ErrVerifyMismatch):
//	    // wrong password
//	case errors.Is(err, argon2.ErrInvalidHash):
//	    // stored value is not an Argon2 hash
//	default:
//	    // ErrVerification or ErrEncoding: the check could not be carried out
//	}
var (
	// ErrConfiguration is matched by [*ConfigurationError], returned only
	// while building a [Config] or a [PasswordHasher].
	ErrConfiguration = errors.New("argon2: invalid configuration")

	// ErrInvalidHash is returned when an encoded hash is so clearly invalid
	// (too short, unknown variant prefix, non-ASCII) that it is never handed
	// to the primitive.
	ErrInvalidHash = errors.New("argon2: invalid hash")

	// ErrHashing is matched by [*HashingError].
	ErrHashing = errors.New("argon2: hashing failed")

	// ErrVerifyMismatch is returned when verification completed and the
	// password does not match the hash.
	ErrVerifyMismatch = errors.New("argon2: the password does not match the supplied hash")

	// ErrVerification is matched by [*VerificationError].
	ErrVerification = errors.New("argon2: verification failed")

	// ErrEncoding is returned when a textual secret cannot be converted to
	// bytes with the configured text encoding.
	ErrEncoding = errors.New("argon2: cannot encode secret")
)

// FieldError describes one rejected configuration field.
type FieldError struct {
	// Field is the configuration key, e.g. "time_cost".
	Field string
	// Want describes the accepted type, e.g. "an integer".
	Want string
	// Got describes what was supplied, e.g. "string".
	Got string
}

func (f FieldError) String() string {
	return fmt.Sprintf("'%s' must be %s (got %s)", f.Field, f.Want, f.Got)
}

// ConfigurationError lists every configuration field that failed validation.
type ConfigurationError struct {
	Fields []FieldError
}

func (e *ConfigurationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.String()
	}
	return "argon2: invalid configuration: " + strings.Join(msgs, ", ") + "."
}

// Is makes errors.Is(err, ErrConfiguration) succeed.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// Has reports whether field is among the offenders.
func (e *ConfigurationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// HashingError wraps the reason the primitive could not produce a hash.
type HashingError struct {
	Err error
}

func (e *HashingError) Error() string { return "argon2: hashing failed: " + e.Err.Error() }

func (e *HashingError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrHashing) succeed.
func (e *HashingError) Is(target error) bool { return target == ErrHashing }

// VerificationError wraps a verification failure other than a mismatch, such
// as a hash that passed prefix detection but that the primitive rejected.
type VerificationError struct {
	Err error
}

func (e *VerificationError) Error() string { return "argon2: verification failed: " + e.Err.Error() }

func (e *VerificationError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrVerification) succeed.
func (e *VerificationError) Is(target error) bool { return target == ErrVerification }
