package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestJWTUtil_IssueAndDecodeToken(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 1)

	tokenString, err := jwtUtil.IssueToken(42, "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	ident, err := jwtUtil.DecodeToken(tokenString)
	assert.NoError(t, err)
	assert.NotNil(t, ident)
	assert.Equal(t, 42, ident.UserID)
	assert.Equal(t, "admin", ident.Role)
}

func TestJWTUtil_DecodeToken_Expired(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", -1) // Token expires in the past

	tokenString, _ := jwtUtil.IssueToken(1, "user")
	time.Sleep(1 * time.Second)

	_, err := jwtUtil.DecodeToken(tokenString)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTUtil_DecodeToken_WrongSecret(t *testing.T) {
	jwtUtil1 := NewJWTUtil("secret1", 1)
	jwtUtil2 := NewJWTUtil("secret2", 1)

	tokenString, _ := jwtUtil1.IssueToken(1, "user")

	_, err := jwtUtil2.DecodeToken(tokenString)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTUtil_DecodeToken_Garbage(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 1)

	_, err := jwtUtil.DecodeToken("not.a.token")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTUtil_DecodeToken_UnsignedAlgorithmRejected(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 1)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "1:user",
		"exp": jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = jwtUtil.DecodeToken(tokenString)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

// Tokens from older issuers carry the identity as a map in the subject
// claim instead of the compound string.
func TestJWTUtil_DecodeToken_MapSubject(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 1)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": map[string]any{"id": 7, "role": "admin"},
		"exp": jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tokenString, err := token.SignedString([]byte("secret"))
	assert.NoError(t, err)

	ident, err := jwtUtil.DecodeToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, 7, ident.UserID)
	assert.Equal(t, "admin", ident.Role)
}

func TestJWTUtil_DecodeToken_MapSubjectStringID(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 1)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": map[string]any{"id": "7", "role": "user"},
		"exp": jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tokenString, _ := token.SignedString([]byte("secret"))

	ident, err := jwtUtil.DecodeToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, 7, ident.UserID)
	assert.Equal(t, "user", ident.Role)
}

func TestJWTUtil_DecodeToken_MalformedSubject(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 1)

	for _, sub := range []any{"noseparator", "abc:admin", map[string]any{"role": "admin"}, 3.14} {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": sub,
			"exp": jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		tokenString, _ := token.SignedString([]byte("secret"))

		_, err := jwtUtil.DecodeToken(tokenString)
		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrTokenMalformed)
	}
}
