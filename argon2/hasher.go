package argon2

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/hasbyte1/go-argon2-utils/lowlevel"
)

// PasswordHasher hashes passwords with sensible defaults.
//
// It always hashes with Argon2id and a fresh random salt, but verifies any
// Argon2 variant as long as the hash is correctly encoded.
//
// Parameters are validated once, in the constructor, and never again: any
// per-call overhead is time a brute-force attacker does not have to spend.
//
// # Thread safety
//
// PasswordHasher is immutable after construction and safe for concurrent use,
// provided the [Primitive] and random source it was given are.  The defaults
// are.  Hash and Verify are CPU and memory bound and run to completion;
// callers that must not block should run them on their own goroutine.
type PasswordHasher struct {
	cfg       Config
	enc       textEncoding
	primitive Primitive
	random    io.Reader
	logger    zerolog.Logger
}

// Option customises the collaborators of a PasswordHasher.
type Option func(*PasswordHasher)

// WithLogger sets the logger.  Events are logged at debug level on success
// and warn level on primitive failures, without passwords, salts or hashes.
// The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(h *PasswordHasher) { h.logger = l }
}

// WithRandom sets the salt source.  The default is crypto/rand.Reader; only
// tests should need anything else.
func WithRandom(r io.Reader) Option {
	return func(h *PasswordHasher) {
		if r != nil {
			h.random = r
		}
	}
}

// WithPrimitive replaces the Argon2 implementation, which defaults to package
// lowlevel.
func WithPrimitive(p Primitive) Option {
	return func(h *PasswordHasher) {
		if p != nil {
			h.primitive = p
		}
	}
}

// New returns a PasswordHasher using [DefaultConfig].
func New(opts ...Option) (*PasswordHasher, error) {
	return NewPasswordHasher(DefaultConfig(), opts...)
}

// NewPasswordHasher validates cfg and returns a PasswordHasher that uses it
// for its whole lifetime.  Invalid configuration fails with a
// [*ConfigurationError].
func NewPasswordHasher(cfg Config, opts ...Option) (*PasswordHasher, error) {
	enc, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	h := &PasswordHasher{
		cfg:       cfg,
		enc:       enc,
		primitive: lowlevelPrimitive{},
		random:    rand.Reader,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// NewFromParameters returns a PasswordHasher whose cost and length settings
// match p, for instance those read from an existing hash with
// [lowlevel.ExtractParameters].  New hashes still use Argon2id and the
// default text encoding.
func NewFromParameters(p lowlevel.Parameters, opts ...Option) (*PasswordHasher, error) {
	return NewPasswordHasher(Config{
		TimeCost:    p.TimeCost,
		MemoryCost:  p.MemoryCost,
		Parallelism: p.Parallelism,
		HashLen:     p.HashLen,
		SaltLen:     p.SaltLen,
		Encoding:    DefaultEncoding,
	}, opts...)
}

// Config returns a copy of the configuration.
func (h *PasswordHasher) Config() Config { return h.cfg }

// Parameters returns the parameters new hashes are produced with.
func (h *PasswordHasher) Parameters() lowlevel.Parameters {
	return lowlevel.Parameters{
		Type:        TypeID,
		Version:     lowlevel.Version,
		SaltLen:     h.cfg.SaltLen,
		HashLen:     h.cfg.HashLen,
		TimeCost:    h.cfg.TimeCost,
		MemoryCost:  h.cfg.MemoryCost,
		Parallelism: h.cfg.Parallelism,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Hashing
// ──────────────────────────────────────────────────────────────────────────────

// Hash encodes password with the configured text encoding, hashes it and
// returns the encoded hash.
//
// It fails with [ErrEncoding] if password cannot be encoded and with a
// [*HashingError] if no hash could be produced.
func (h *PasswordHasher) Hash(password string) (string, error) {
	secret, err := h.enc.encode(password)
	if err != nil {
		return "", err
	}
	return h.hash(secret)
}

// HashBytes hashes password as is.  See [PasswordHasher.Hash].
func (h *PasswordHasher) HashBytes(password []byte) (string, error) {
	return h.hash(password)
}

func (h *PasswordHasher) hash(secret []byte) (string, error) {
	salt := make([]byte, h.cfg.SaltLen)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return "", &HashingError{Err: fmt.Errorf("generate salt: %w", err)}
	}

	encoded, err := h.primitive.HashSecret(secret, salt,
		h.cfg.TimeCost, h.cfg.MemoryCost, h.cfg.Parallelism, h.cfg.HashLen, TypeID)
	if err != nil {
		h.logger.Warn().Err(err).Stringer("type", TypeID).Msg("argon2_hash_failed")
		return "", &HashingError{Err: err}
	}

	h.logger.Debug().
		Stringer("type", TypeID).
		Uint32("time_cost", h.cfg.TimeCost).
		Uint32("memory_cost", h.cfg.MemoryCost).
		Uint8("parallelism", h.cfg.Parallelism).
		Msg("argon2_hash")
	return string(encoded), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Verification
// ──────────────────────────────────────────────────────────────────────────────

// Verify checks password against an encoded hash of any Argon2 variant.
//
// It returns (true, nil) on success and (false, err) otherwise; it never
// returns (false, nil).  err matches:
//
//   - [ErrVerifyMismatch] if hash is not valid for password;
//   - [ErrInvalidHash] if hash is too short or has an unknown prefix;
//   - [ErrVerification] if verification failed for other reasons;
//   - [ErrEncoding] if password cannot be encoded.
//
// Only the variant prefix of hash is inspected here.  It is assumed that the
// caller is in full control of hash, e.g. because it comes from the caller's
// own credential store.
func (h *PasswordHasher) Verify(hash, password string) (bool, error) {
	encoded, err := asciiHash(hash)
	if err != nil {
		return false, err
	}
	secret, err := h.enc.encode(password)
	if err != nil {
		return false, err
	}
	return h.verify(encoded, secret)
}

// VerifyBytes is [PasswordHasher.Verify] for byte inputs, which are used as is.
func (h *PasswordHasher) VerifyBytes(hash, password []byte) (bool, error) {
	return h.verify(hash, password)
}

func (h *PasswordHasher) verify(encoded, secret []byte) (bool, error) {
	t, err := DetectType(encoded)
	if err != nil {
		return false, err
	}

	ok, err := h.primitive.VerifySecret(encoded, secret, t)
	switch {
	case err == nil && ok:
		h.logger.Debug().Stringer("type", t).Msg("argon2_verify")
		return true, nil
	case err == nil,
		errors.Is(err, lowlevel.ErrVerifyMismatch),
		errors.Is(err, ErrVerifyMismatch):
		h.logger.Debug().Stringer("type", t).Msg("argon2_verify_mismatch")
		return false, ErrVerifyMismatch
	default:
		h.logger.Warn().Err(err).Stringer("type", t).Msg("argon2_verify_failed")
		return false, &VerificationError{Err: err}
	}
}

// NeedsRehash reports whether hash was produced with anything other than
// Argon2id, the current Argon2 version and this hasher's parameters.  Call it
// after a successful [PasswordHasher.Verify] and store a fresh hash when it
// returns true.
//
// Hashes that cannot be decoded fail with [ErrInvalidHash].
func (h *PasswordHasher) NeedsRehash(hash string) (bool, error) {
	encoded, err := asciiHash(hash)
	if err != nil {
		return false, err
	}
	if _, err := DetectType(encoded); err != nil {
		return false, err
	}
	p, err := lowlevel.ExtractParameters(encoded)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	return p != h.Parameters(), nil
}
