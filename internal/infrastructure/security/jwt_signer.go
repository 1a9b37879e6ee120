package security

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/promobeats/backoffice/internal/core/ports"
)

// JWTSigner issues and inspects HS256 tokens. Expiry is computed through the
// Clock so token lifetimes are testable.
type JWTSigner struct {
	secret []byte
	clock  ports.Clock
}

func NewJWTSigner(secret string, clock ports.Clock) *JWTSigner {
	return &JWTSigner{secret: []byte(secret), clock: clock}
}

func (s *JWTSigner) Sign(claims map[string]any, expiresIn string) (ports.Token, error) {
	now := s.clock.Now()
	exp, err := s.clock.Add(now, expiresIn)
	if err != nil {
		return ports.Token{}, err
	}

	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	mc["iat"] = now.Unix()
	mc["exp"] = exp.Unix()

	value, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(s.secret)
	if err != nil {
		return ports.Token{}, fmt.Errorf("sign token: %w", err)
	}
	return ports.Token{Value: value, ExpiresAt: exp}, nil
}

func (s *JWTSigner) Verify(token string) (map[string]any, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

func (s *JWTSigner) Decode(token string) (map[string]any, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

var _ ports.TokenSigner = (*JWTSigner)(nil)
