package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Password hashes use the werkzeug text format so accounts created by the
// predecessor app keep working:
//
//	pbkdf2:sha256:<iterations>$<salt>$<hex digest>
//
// The salt is 8 characters drawn from saltAlphabet, matching
// generate_password_hash(..., salt_length=8).
const (
	pbkdf2Iterations = 600000
	pbkdf2KeyLen     = 32
	saltLength       = 8
	saltAlphabet     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// HashPassword derives a salted PBKDF2-SHA256 digest of plain and returns
// it in the storable text format. The plaintext is never stored.
func HashPassword(plain string) (string, error) {
	salt, err := randomSalt(saltLength)
	if err != nil {
		return "", err
	}
	digest := pbkdf2.Key([]byte(plain), []byte(salt), pbkdf2Iterations, pbkdf2KeyLen, sha256.New)
	return fmt.Sprintf("pbkdf2:sha256:%d$%s$%s", pbkdf2Iterations, salt, hex.EncodeToString(digest)), nil
}

// VerifyPassword reports whether plain matches the stored hash. Malformed
// hashes simply fail verification.
func VerifyPassword(stored, plain string) bool {
	method, rest, ok := strings.Cut(stored, "$")
	if !ok {
		return false
	}
	salt, wantHex, ok := strings.Cut(rest, "$")
	if !ok || salt == "" {
		return false
	}

	parts := strings.Split(method, ":")
	if len(parts) != 3 || parts[0] != "pbkdf2" || parts[1] != "sha256" {
		return false
	}
	iterations, err := strconv.Atoi(parts[2])
	if err != nil || iterations <= 0 {
		return false
	}

	want, err := hex.DecodeString(wantHex)
	if err != nil {
		return false
	}

	got := pbkdf2.Key([]byte(plain), []byte(salt), iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}

func randomSalt(n int) (string, error) {
	out := make([]byte, n)
	max := big.NewInt(int64(len(saltAlphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = saltAlphabet[idx.Int64()]
	}
	return string(out), nil
}
