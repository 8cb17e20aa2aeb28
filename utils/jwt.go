package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenInvalid covers malformed tokens and signature mismatches.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenExpired means the signature checked out but the expiry is past.
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the identity payload embedded in every signed token.
type Claims struct {
	UserID uint   `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies stateless HS256 tokens. Primary and
// refresh tokens are signed with distinct secrets so one class never
// validates against the other.
type TokenService struct {
	secret        []byte
	refreshSecret []byte
	expiry        time.Duration
	refreshExpiry time.Duration
}

func NewTokenService(secret, refreshSecret string, expiry, refreshExpiry time.Duration) *TokenService {
	return &TokenService{
		secret:        []byte(secret),
		refreshSecret: []byte(refreshSecret),
		expiry:        expiry,
		refreshExpiry: refreshExpiry,
	}
}

// Expiry returns the configured primary token lifetime.
func (ts *TokenService) Expiry() time.Duration {
	return ts.expiry
}

// Issue signs a primary token for the given identity.
func (ts *TokenService) Issue(userID uint, role string) (string, error) {
	return ts.sign(ts.secret, ts.expiry, userID, role)
}

// IssueRefresh signs a refresh token for the given identity.
func (ts *TokenService) IssueRefresh(userID uint, role string) (string, error) {
	return ts.sign(ts.refreshSecret, ts.refreshExpiry, userID, role)
}

// Verify validates a primary token and returns its claims.
func (ts *TokenService) Verify(tokenString string) (*Claims, error) {
	return ts.parse(ts.secret, tokenString)
}

// VerifyRefresh validates a refresh token and returns its claims.
func (ts *TokenService) VerifyRefresh(tokenString string) (*Claims, error) {
	return ts.parse(ts.refreshSecret, tokenString)
}

// Refresh exchanges a valid refresh token for a new primary token carrying
// the same subject and role. The payload is taken from the verified claims,
// never from the caller.
func (ts *TokenService) Refresh(refreshToken string) (string, error) {
	claims, err := ts.VerifyRefresh(refreshToken)
	if err != nil {
		return "", err
	}
	return ts.Issue(claims.UserID, claims.Role)
}

func (ts *TokenService) sign(secret []byte, expiry time.Duration, userID uint, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "menu-service",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (ts *TokenService) parse(secret []byte, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
