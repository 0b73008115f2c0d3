package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

// PasswordScheme identifies how a stored credential is encoded
type PasswordScheme int

const (
	// SchemeLegacyPlaintext covers rows written before hashing was
	// introduced. Supported on read only; never produced on write.
	SchemeLegacyPlaintext PasswordScheme = iota
	SchemeScrypt
	SchemePBKDF2
	SchemeArgon2
)

// Parameters for newly written scrypt hashes. The stored format is
// "scrypt:N:r:p$salt$hexdigest", compatible with the existing seeded data.
const (
	scryptN      = 32768
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltLength   = 16
)

const saltChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DetectPasswordScheme inspects the stored value's tag prefix.
func DetectPasswordScheme(stored string) PasswordScheme {
	switch {
	case strings.HasPrefix(stored, "scrypt:"):
		return SchemeScrypt
	case strings.HasPrefix(stored, "pbkdf2:"):
		return SchemePBKDF2
	case strings.HasPrefix(stored, "argon2:"):
		return SchemeArgon2
	default:
		return SchemeLegacyPlaintext
	}
}

// HashPassword derives a tagged scrypt hash for storage
func HashPassword(password string) (string, error) {
	salt, err := generateSalt()
	if err != nil {
		return "", err
	}
	key, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("failed to derive scrypt key: %w", err)
	}
	return fmt.Sprintf("scrypt:%d:%d:%d$%s$%s", scryptN, scryptR, scryptP, salt, hex.EncodeToString(key)), nil
}

// CheckPassword verifies a submitted password against a stored credential,
// dispatching on the stored value's scheme
func CheckPassword(password, stored string) bool {
	switch DetectPasswordScheme(stored) {
	case SchemeScrypt:
		return checkScrypt(password, stored)
	case SchemePBKDF2:
		return checkPBKDF2(password, stored)
	case SchemeArgon2:
		return checkArgon2(password, stored)
	default:
		return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
	}
}

func generateSalt() (string, error) {
	buf := make([]byte, saltLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	for i, b := range buf {
		buf[i] = saltChars[int(b)%len(saltChars)]
	}
	return string(buf), nil
}

// splitHash separates "method$salt$hexdigest"
func splitHash(stored string) (method, salt, digest string, ok bool) {
	parts := strings.Split(stored, "$")
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}

func checkScrypt(password, stored string) bool {
	method, salt, digest, ok := splitHash(stored)
	if !ok {
		return false
	}
	params := strings.Split(method, ":")
	if len(params) != 4 {
		return false
	}
	n, err1 := strconv.Atoi(params[1])
	r, err2 := strconv.Atoi(params[2])
	p, err3 := strconv.Atoi(params[3])
	want, err4 := hex.DecodeString(digest)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return false
	}
	got, err := scrypt.Key([]byte(password), []byte(salt), n, r, p, len(want))
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(got, want) == 1
}

func checkPBKDF2(password, stored string) bool {
	method, salt, digest, ok := splitHash(stored)
	if !ok {
		return false
	}
	params := strings.Split(method, ":")
	if len(params) < 2 || params[1] != "sha256" {
		return false
	}
	// Older hashes omit the iteration count and used the writer's default.
	iterations := 260000
	if len(params) == 3 {
		n, err := strconv.Atoi(params[2])
		if err != nil {
			return false
		}
		iterations = n
	}
	want, err := hex.DecodeString(digest)
	if err != nil {
		return false
	}
	got := pbkdf2.Key([]byte(password), []byte(salt), iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}

// checkArgon2 verifies "argon2:" followed by a PHC-formatted hash,
// e.g. argon2:$argon2id$v=19$m=65536,t=3,p=4$<b64salt>$<b64hash>
func checkArgon2(password, stored string) bool {
	phc := strings.TrimPrefix(stored, "argon2:")
	parts := strings.Split(phc, "$")
	if len(parts) != 6 || parts[0] != "" {
		return false
	}
	var m, t uint32
	var p uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &m, &t, &p); err != nil {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}
	var got []byte
	switch parts[1] {
	case "argon2id":
		got = argon2.IDKey([]byte(password), salt, t, m, p, uint32(len(want)))
	case "argon2i":
		got = argon2.Key([]byte(password), salt, t, m, p, uint32(len(want)))
	default:
		return false
	}
	return subtle.ConstantTimeCompare(got, want) == 1
}
