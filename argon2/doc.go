// Package argon2 hashes and verifies passwords with Argon2 while hiding
// parameter management from callers.
//
// # Quick start
//
//	h, err := argon2.New() // Argon2id, t=2, m=512 KiB, p=2, 16-byte hash and salt
//	if err != nil { log.Fatal(err) }
//
//	hash, _ := h.Hash("correct horse battery staple")
//	// $argon2id$v=19$m=512,t=2,p=2$<salt>$<hash>
//
//	if _, err := h.Verify(hash, "correct horse battery staple"); err != nil {
//	    // not verified; see below
//	}
//
// # Encoded hashes
//
// Hashes are self-describing PHC strings that carry the variant, version,
// parameters and salt, so they can be stored as is and verified later by any
// hasher, whatever its own configuration.  [PasswordHasher.Verify] reads only
// the first 9 bytes to choose the variant ($argon2i$, $argon2d$ or
// $argon2id) and leaves everything else to the primitive in package lowlevel.
//
// # Errors
//
// Verification never signals failure with a plain false.  A wrong password is
// [ErrVerifyMismatch], which is distinct from [ErrVerification] (the check
// could not be done) and [ErrInvalidHash] (not an Argon2 hash at all).
// Configuration problems are reported once, at construction, as a
// [*ConfigurationError] listing every bad field.
//
// # Configuration
//
// Use [DefaultConfig] and adjust fields, or load settings with
// [ConfigFromMap], [ConfigFromEnv] or [LoadConfig]:
//
//	cfg, err := argon2.LoadConfig("ARGON2_", "config.env")
//	h, err := argon2.NewPasswordHasher(cfg, argon2.WithLogger(logger))
package argon2
