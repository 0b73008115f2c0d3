package utils

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

func TestHashPassword(t *testing.T) {
	password := "password123"
	hashedPassword, err := HashPassword(password)

	assert.NoError(t, err)
	assert.NotEmpty(t, hashedPassword)
	assert.NotEqual(t, password, hashedPassword)
	assert.True(t, strings.HasPrefix(hashedPassword, "scrypt:32768:8:1$"))
}

func TestCheckPassword_Scrypt(t *testing.T) {
	password := "password123"
	hashedPassword, _ := HashPassword(password)

	assert.True(t, CheckPassword(password, hashedPassword))
	assert.False(t, CheckPassword("wrongpassword", hashedPassword))
}

func TestCheckPassword_PBKDF2(t *testing.T) {
	salt := "saltsalt"
	iterations := 1000
	digest := pbkdf2.Key([]byte("password123"), []byte(salt), iterations, 32, sha256.New)
	stored := fmt.Sprintf("pbkdf2:sha256:%d$%s$%s", iterations, salt, hex.EncodeToString(digest))

	assert.True(t, CheckPassword("password123", stored))
	assert.False(t, CheckPassword("wrongpassword", stored))
}

func TestCheckPassword_Argon2(t *testing.T) {
	salt := []byte("somesalt16bytes!")
	digest := argon2.IDKey([]byte("password123"), salt, 3, 65536, 4, 32)
	stored := fmt.Sprintf("argon2:$argon2id$v=19$m=65536,t=3,p=4$%s$%s",
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest))

	assert.True(t, CheckPassword("password123", stored))
	assert.False(t, CheckPassword("wrongpassword", stored))
}

// Rows predating hashing store the password as-is; they still verify,
// but only by exact match.
func TestCheckPassword_LegacyPlaintext(t *testing.T) {
	assert.True(t, CheckPassword("password123", "password123"))
	assert.False(t, CheckPassword("password123", "otherpassword"))
}

func TestCheckPassword_MangledHash(t *testing.T) {
	assert.False(t, CheckPassword("password123", "scrypt:32768:8:1$missingdigest"))
	assert.False(t, CheckPassword("password123", "scrypt:notanumber:8:1$salt$abcd"))
	assert.False(t, CheckPassword("password123", "pbkdf2:md5:1000$salt$abcd"))
	assert.False(t, CheckPassword("password123", "argon2:$argon2id$broken"))
}

func TestDetectPasswordScheme(t *testing.T) {
	assert.Equal(t, SchemeScrypt, DetectPasswordScheme("scrypt:32768:8:1$salt$digest"))
	assert.Equal(t, SchemePBKDF2, DetectPasswordScheme("pbkdf2:sha256:260000$salt$digest"))
	assert.Equal(t, SchemeArgon2, DetectPasswordScheme("argon2:$argon2id$v=19$m=65536,t=3,p=4$a$b"))
	assert.Equal(t, SchemeLegacyPlaintext, DetectPasswordScheme("plainoldpassword"))
}
