package lowlevel

import "fmt"

// ErrorCode is a primitive status code.  The numbering matches the reference
// C library so codes can be compared across implementations.
type ErrorCode int

const (
	OK                    ErrorCode = 0
	OutputTooShort        ErrorCode = -2
	PwdTooLong            ErrorCode = -5
	SaltTooShort          ErrorCode = -6
	TimeTooSmall          ErrorCode = -12
	MemoryTooLittle       ErrorCode = -14
	LanesTooFew           ErrorCode = -16
	MemoryAllocationError ErrorCode = -22
	IncorrectParameter    ErrorCode = -25
	IncorrectType         ErrorCode = -26
	// ThreadsTooFew is never returned; lanes are scheduled by the Go runtime.
	// It is kept so the numbering matches the C library.
	ThreadsTooFew         ErrorCode = -28
	DecodingFail          ErrorCode = -32
	DecodingLengthFail    ErrorCode = -34
	VerifyMismatch        ErrorCode = -35
)

var errorMessages = map[ErrorCode]string{
	OK:                    "OK",
	OutputTooShort:        "Output is too short",
	PwdTooLong:            "Password is too long",
	SaltTooShort:          "Salt is too short",
	TimeTooSmall:          "Time cost is too small",
	MemoryTooLittle:       "Memory cost is too small",
	LanesTooFew:           "Too few lanes",
	MemoryAllocationError: "Memory allocation error",
	IncorrectParameter:    "Parameter is not valid",
	IncorrectType:         "There is no such version of Argon2",
	ThreadsTooFew:         "Not enough threads",
	DecodingFail:          "Decoding failed",
	DecodingLengthFail:    "Some of encoded parameters are too long or too short",
	VerifyMismatch:        "The password does not match the supplied hash",
}

// String returns the human readable message for c.
func (c ErrorCode) String() string {
	if msg, ok := errorMessages[c]; ok {
		return msg
	}
	return fmt.Sprintf("Unknown error code %d", int(c))
}

// Error is returned by every failing primitive call.
//
// Detail is an optional, secret-free hint about which part of the input was
// rejected (for example "salt is not valid base64").
type Error struct {
	Code   ErrorCode
	Detail string
}

func newError(code ErrorCode, detail string) *Error {
	return &Error{Code: code, Detail: detail}
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return "argon2: " + e.Code.String()
	}
	return fmt.Sprintf("argon2: %s (%s)", e.Code.String(), e.Detail)
}

// Is reports whether target is an *Error with the same code, so sentinel
// comparisons ignore Detail.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// ErrVerifyMismatch is returned by [VerifySecret] when the hash was decoded
// and recomputed successfully but does not match the secret.
var ErrVerifyMismatch error = &Error{Code: VerifyMismatch}
