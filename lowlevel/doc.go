// Package lowlevel is the Argon2 primitive behind the argon2 facade.
//
// It hashes a secret with a caller supplied salt and explicit cost parameters,
// encodes the result in the PHC string format and verifies secrets against
// such strings.  Nothing here picks defaults, generates salts or converts text:
// that is the job of package argon2.
//
// # Hazardous material
//
// Every parameter is taken at face value.  Reusing a salt, choosing a weak
// cost or mixing up [Type] values produces hashes that are valid but unsafe.
// Prefer [github.com/hasbyte1/go-argon2-utils/argon2.PasswordHasher] unless you
// are building your own higher level abstraction.
//
// # Variants
//
// Argon2i and Argon2id are computed with golang.org/x/crypto/argon2.  Argon2d
// is not exported by x/crypto, so it is computed with the go-crypt fork of the
// same code.  All three produce interchangeable PHC strings:
//
//	$argon2id$v=19$m=512,t=2,p=2$<base64 salt>$<base64 hash>
//
// # Errors
//
// Failures are reported as [*Error] values carrying an [ErrorCode] whose
// numbering and messages follow the reference C implementation.  Compare with
// [errors.Is]:
//
//	ok, err := lowlevel.VerifySecret(encoded, secret, lowlevel.TypeID)
//	if errors.Is(err, lowlevel.ErrVerifyMismatch) {
//	    // wrong secret
//	}
package lowlevel
