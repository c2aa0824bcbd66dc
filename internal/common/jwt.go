package common

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the trusted caller resolved from a token.
type Identity struct {
	UserID int64
	Handle string
}

// Claims represents the data stored in a connection token
type Claims struct {
	UserID int64  `json:"user_id"`
	Handle string `json:"handle"`
	jwt.RegisteredClaims
}

// JWT validates HS256 tokens issued by the auth service.
type JWT struct {
	secret []byte
	issuer string
}

func NewJWT(secret, issuer string) (*JWT, error) {
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	return &JWT{secret: []byte(secret), issuer: issuer}, nil
}

// GenerateToken issues a token for userID. Issuance belongs to the auth
// service; this exists for tooling and tests.
func (j *JWT) GenerateToken(userID int64, handle string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: userID,
		Handle: handle,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    j.issuer,
			Subject:   "user-auth",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

func (j *JWT) ValidToken(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if j.issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return j.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// AuthenticateToken resolves a raw token into an Identity.
func (j *JWT) AuthenticateToken(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, fmt.Errorf("%w: missing token", ErrAuthentication)
	}
	claims, err := j.ValidToken(tokenString)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrAuthentication, err)
	}
	if claims.UserID <= 0 {
		return Identity{}, fmt.Errorf("%w: token has no user", ErrAuthentication)
	}
	return Identity{UserID: claims.UserID, Handle: claims.Handle}, nil
}

// Authenticate reads the token from the Authorization header, or from the
// `token` query parameter for browser websocket clients.
func (j *JWT) Authenticate(r *http.Request) (Identity, error) {
	return j.AuthenticateToken(tokenFromRequest(r))
}

func tokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		parts := strings.Fields(h)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}
	return r.URL.Query().Get("token")
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
