package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"inventory_api/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrTokenMalformed = errors.New("token payload not recognized")
)

// JWTUtil issues and decodes signed identity tokens
type JWTUtil struct {
	secretKey       string
	expirationHours int64
}

// NewJWTUtil creates a new JWTUtil
func NewJWTUtil(secretKey string, expirationHours int64) *JWTUtil {
	return &JWTUtil{secretKey: secretKey, expirationHours: expirationHours}
}

// IssueToken signs a token whose subject encodes the identity as "<id>:<role>"
func (ju *JWTUtil) IssueToken(userID int, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": fmt.Sprintf("%d:%s", userID, role),
		"iat": jwt.NewNumericDate(now),
		"exp": jwt.NewNumericDate(now.Add(time.Hour * time.Duration(ju.expirationHours))),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(ju.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// DecodeToken verifies signature and expiry and materializes the identity.
// Older issuers encoded the subject either as the compound string
// "<id>:<role>" or as a map {"id": ..., "role": ...}; both shapes are
// accepted here and never propagate past this boundary.
func (ju *JWTUtil) DecodeToken(tokenString string) (*model.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ju.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return identityFromSubject(claims["sub"])
}

func identityFromSubject(sub any) (*model.Identity, error) {
	switch v := sub.(type) {
	case string:
		parts := strings.SplitN(v, ":", 2)
		if len(parts) != 2 || parts[1] == "" {
			return nil, fmt.Errorf("%w: subject %q", ErrTokenMalformed, v)
		}
		id, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("%w: subject %q", ErrTokenMalformed, v)
		}
		return &model.Identity{UserID: id, Role: parts[1]}, nil
	case map[string]any:
		role, _ := v["role"].(string)
		id, ok := subjectID(v["id"])
		if !ok || role == "" {
			return nil, fmt.Errorf("%w: subject map missing id or role", ErrTokenMalformed)
		}
		return &model.Identity{UserID: id, Role: role}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported subject type %T", ErrTokenMalformed, sub)
	}
}

func subjectID(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case string:
		id, err := strconv.Atoi(n)
		return id, err == nil
	default:
		return 0, false
	}
}
