package token

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the input contract of the JWT signer for sessions bound to a
// legacy credential. An ExpireTime of zero tells the signer to apply its own
// default lifetime.
type Claims struct {
	APIKey               int
	APISecret            string
	Role                 Role
	Data                 string
	SessionID            string
	ExpireTime           int64
	InitialLayoutClasses []string
}

// Signer turns assembled token data into a compact JWT. The claim schema and
// the default-lifetime policy belong to the signer, not to the Generator.
type Signer interface {
	// SignSessionClaims signs a session-join token keyed by the legacy API
	// secret (HS256).
	SignSessionClaims(c Claims) (string, error)

	// SignApplicationToken signs a full-access token for the application
	// credential flow (RS256 over the PEM-encoded private key).
	SignApplicationToken(applicationID string, privateKey []byte, sessionID string) (string, error)
}

// defaultTokenTTL is the lifetime the signer applies when the caller does not
// pin an expiry.
const defaultTokenTTL = 24 * time.Hour

// tokenScope is the access scope claim the platform expects on join tokens.
const tokenScope = "session.connect"

type jwtSigner struct {
	now func() time.Time
	ttl time.Duration
}

// NewSigner returns the default JWT signer.
func NewSigner() Signer {
	return &jwtSigner{now: time.Now, ttl: defaultTokenTTL}
}

type sessionClaims struct {
	IssuerType             string `json:"ist"`
	Scope                  string `json:"scope"`
	SessionID              string `json:"session_id"`
	Role                   string `json:"role"`
	ConnectionData         string `json:"connection_data,omitempty"`
	InitialLayoutClassList string `json:"initial_layout_class_list,omitempty"`
	Nonce                  string `json:"nonce"`
	jwt.RegisteredClaims
}

func (s *jwtSigner) SignSessionClaims(c Claims) (string, error) {
	now := s.now()
	expiresAt := c.ExpireTime
	if expiresAt == 0 {
		expiresAt = now.Add(s.ttl).Unix()
	}

	claims := sessionClaims{
		IssuerType:             "project",
		Scope:                  tokenScope,
		SessionID:              c.SessionID,
		Role:                   string(c.Role),
		ConnectionData:         c.Data,
		InitialLayoutClassList: strings.Join(c.InitialLayoutClasses, " "),
		Nonce:                  uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    strconv.Itoa(c.APIKey),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(time.Unix(expiresAt, 0)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(c.APISecret))
}

type applicationClaims struct {
	ApplicationID string `json:"application_id"`
	Scope         string `json:"scope"`
	SessionID     string `json:"session_id"`
	jwt.RegisteredClaims
}

func (s *jwtSigner) SignApplicationToken(applicationID string, privateKey []byte, sessionID string) (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM(privateKey)
	if err != nil {
		return "", fmt.Errorf("parse private key: %w", err)
	}

	now := s.now()
	claims := applicationClaims{
		ApplicationID: applicationID,
		Scope:         tokenScope,
		SessionID:     sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
}
