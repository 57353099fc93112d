package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters used for password hashing.
// Memory-hard settings follow the OWASP recommendation; changing them does
// not invalidate existing digests because every digest carries its own
// parameters in PHC form.
const (
	argonTime    = 3         // iterations
	argonMemory  = 64 * 1024 // 64 MiB
	argonThreads = 1         // parallelism
	argonKeyLen  = 32        // output hash length
	argonSaltLen = 16        // salt length
)

// HashPassword hashes a plaintext password using Argon2id and returns it
// in PHC string format:
//
//	$argon2id$v=19$m=65536,t=3,p=1$<salt>$<hash>
//
// A fresh random salt is generated on every call, so hashing the same
// password twice yields two different digests that both verify.
//
// Parameters:
//
//	password - the plaintext password to hash
//
// Returns:
//
//	string - the PHC-encoded digest ready for storage
//	error  - non-nil only if the system randomness source fails
//
// Example usage:
//
//	digest, err := utils.HashPassword("longenough1")
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating password salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifyPassword checks a plaintext password against an Argon2id PHC digest.
//
// The candidate hash is recomputed with the parameters embedded in the
// digest and compared with [subtle.ConstantTimeCompare] to avoid timing
// side-channels.
//
// VerifyPassword never panics and never returns an error for expected bad
// input: a malformed or truncated digest simply yields false.
//
// Parameters:
//
//	password - the plaintext password to check
//	digest   - the stored PHC-encoded digest
//
// Returns:
//
//	bool - true iff digest was produced from password
//
// Example usage:
//
//	ok := utils.VerifyPassword("longenough1", storedDigest)
func VerifyPassword(password, digest string) bool {
	salt, hash, params, err := decodePHC(digest)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey([]byte(password), salt, params.time, params.memory, params.threads, uint32(len(hash)))

	return subtle.ConstantTimeCompare(hash, candidate) == 1
}

type argonParams struct {
	time    uint32
	memory  uint32
	threads uint8
}

// decodePHC parses an Argon2id PHC string into its salt, hash and parameters.
func decodePHC(encoded string) (salt, hash []byte, params argonParams, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return nil, nil, params, errors.New("malformed argon2id digest")
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, params, fmt.Errorf("malformed argon2id version: %w", err)
	}
	if version != argon2.Version {
		return nil, nil, params, fmt.Errorf("unsupported argon2id version %d", version)
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads); err != nil {
		return nil, nil, params, fmt.Errorf("malformed argon2id parameters: %w", err)
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, params, fmt.Errorf("malformed argon2id salt: %w", err)
	}

	hash, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, params, fmt.Errorf("malformed argon2id hash: %w", err)
	}

	if len(hash) == 0 {
		return nil, nil, params, errors.New("empty argon2id hash")
	}

	return salt, hash, params, nil
}
