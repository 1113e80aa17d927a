package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrBadSignature  = errors.New("bad token signature")
	ErrTokenExpired  = errors.New("token expired")
	ErrWrongAudience = errors.New("wrong token issuer or audience")
	ErrInvalidToken  = errors.New("invalid token")
)

// TokenTTL is the lifetime of every issued token.
const TokenTTL = 30 * time.Minute

// leeway absorbs clock skew between issuer and validator.
const leeway = 30 * time.Second

// Claims carries the identity facts embedded in a token: the user's email as
// subject plus a display name.
type Claims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
}

type JWT struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

func NewJWT(secret, issuer, audience string) *JWT {
	return &JWT{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      TokenTTL,
	}
}

// Issue signs a token whose subject is the user's email.
func (j *JWT) Issue(email, name string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    j.issuer,
			Audience:  jwt.ClaimStrings{j.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		Name: name,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(j.secret)
}

// Validate recomputes the signature and checks lifetime, issuer and audience.
// All three checks are mandatory.
func (j *JWT) Validate(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenStr, claims,
		func(t *jwt.Token) (any, error) { return j.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(j.issuer),
		jwt.WithAudience(j.audience),
		jwt.WithLeeway(leeway),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrBadSignature
		case errors.Is(err, jwt.ErrTokenInvalidIssuer), errors.Is(err, jwt.ErrTokenInvalidAudience):
			return nil, ErrWrongAudience
		default:
			return nil, ErrInvalidToken
		}
	}
	if !t.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
