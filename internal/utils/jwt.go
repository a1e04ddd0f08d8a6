package utils // package utils provides token issuing, verification and hashing helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// Token verification failure kinds. Verification never partially trusts a
// token: any structural, signature or expiry problem maps to exactly one of
// these and the claim is discarded.
var (
	ErrTokenMalformed        = errors.New("malformed token")
	ErrTokenInvalidSignature = errors.New("invalid token signature")
	ErrTokenExpired          = errors.New("token expired")
)

// TraineeClaims is the claim payload carried by an access token: the
// trainee id plus the registered issued-at/expiry claims.
type TraineeClaims struct {
	TraineeID uint64 `json:"traineeId"`
	jwt.RegisteredClaims
}

// AccessToken represents a signed access token along with its expiry.
// Access tokens are self-contained and never stored server-side; the
// expiry window is the only thing that ends a session.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS512 JWT for a trainee.  It takes the
// signing secret, the trainee ID and a TTL in days, and returns the signed
// token together with its expiration time.
func NewAccessToken(secret string, traineeID uint64, ttlDays int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlDays) * 24 * time.Hour)
	claims := TraineeClaims{
		TraineeID: traineeID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// VerifyAccessToken parses and validates a signed token and returns its
// claims. Tokens signed with a different method or secret, structurally
// broken tokens and expired tokens are all rejected with the matching
// sentinel; there is no partial trust.
func VerifyAccessToken(secret, raw string) (TraineeClaims, error) {
	var claims TraineeClaims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		// Type assert the signing method to HMAC; reject others.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalidSignature
		}
		return []byte(secret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return TraineeClaims{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return TraineeClaims{}, ErrTokenInvalidSignature
		default:
			return TraineeClaims{}, ErrTokenMalformed
		}
	}
	if !tok.Valid {
		return TraineeClaims{}, ErrTokenInvalidSignature
	}
	return claims, nil
}
