package token_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/videokit/pkg/session"
	"github.com/dmitrymomot/videokit/pkg/token"
)

func timeNowUnix() int64 { return time.Now().Unix() }

func parseHS256(t *testing.T, tok, secret string) jwt.MapClaims {
	t.Helper()
	parsed, err := jwt.Parse(tok, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestGenerateSessionJWT(t *testing.T) {
	t.Parallel()

	gen := token.NewGenerator()
	tok, err := gen.Generate(legacySession(), token.Options{
		Role:                   token.RoleModerator,
		Data:                   "name=alice",
		InitialLayoutClassList: []string{"full", "focus"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(tok, ".")), "expected a compact JWT")

	claims := parseHS256(t, tok, testSecret)
	assert.Equal(t, "12345", claims["iss"])
	assert.Equal(t, testSessionID, claims["session_id"])
	assert.Equal(t, "moderator", claims["role"])
	assert.Equal(t, "session.connect", claims["scope"])
	assert.Equal(t, "name=alice", claims["connection_data"])
	assert.Equal(t, "full focus", claims["initial_layout_class_list"])
	assert.NotEmpty(t, claims["nonce"])
}

func TestGenerateSessionJWTDefaultLifetime(t *testing.T) {
	t.Parallel()

	tok, err := token.NewGenerator().Generate(legacySession(), token.Options{})
	require.NoError(t, err)

	claims := parseHS256(t, tok, testSecret)
	iat, ok := claims["iat"].(float64)
	require.True(t, ok)
	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.Equal(t, float64(24*60*60), exp-iat, "zero expiry defers to the signer's default lifetime")
	assert.Equal(t, "publisher", claims["role"], "zero role defaults to publisher")
}

func TestGenerateSessionJWTExplicitExpiry(t *testing.T) {
	t.Parallel()

	tok, err := token.NewGenerator().Generate(legacySession(), token.Options{
		ExpireTime: timeNowUnix() + 3600,
	})
	require.NoError(t, err)

	claims := parseHS256(t, tok, testSecret)
	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.InDelta(t, float64(timeNowUnix()+3600), exp, 5)
}

func TestGenerateSessionJWTValidation(t *testing.T) {
	t.Parallel()

	gen := token.NewGenerator()

	_, err := gen.Generate(legacySession(), token.Options{Data: strings.Repeat("a", 1001)})
	require.ErrorIs(t, err, token.ErrConnectionDataTooLong)

	_, err = gen.Generate(legacySession(), token.Options{ExpireTime: 1})
	require.ErrorIs(t, err, token.ErrInvalidExpireTime)
}

func TestGenerateApplicationJWT(t *testing.T) {
	t.Parallel()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pemKey := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})

	sess := session.NewWithApplication(testSessionID, session.ApplicationCredential{
		ApplicationID: "9f2b1c3d",
		PrivateKey:    pemKey,
	})

	tok, err := token.NewGenerator().Generate(sess, token.Options{})
	require.NoError(t, err)

	parsed, err := jwt.Parse(tok, func(*jwt.Token) (any, error) {
		return &key.PublicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}))
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "9f2b1c3d", claims["application_id"])
	assert.Equal(t, testSessionID, claims["session_id"])
	assert.NotEmpty(t, claims["jti"])
	assert.NotContains(t, claims, "role", "application tokens carry implicit full access")
}

func TestGenerateApplicationJWTBadKey(t *testing.T) {
	t.Parallel()

	sess := session.NewWithApplication(testSessionID, session.ApplicationCredential{
		ApplicationID: "app",
		PrivateKey:    []byte("not a pem key"),
	})

	_, err := token.NewGenerator().Generate(sess, token.Options{})
	require.ErrorIs(t, err, token.ErrSigningFailed)
}

type recordingSigner struct {
	err        error
	claims     *token.Claims
	appID      string
	sessionID  string
	privateKey []byte
}

func (r *recordingSigner) SignSessionClaims(c token.Claims) (string, error) {
	r.claims = &c
	if r.err != nil {
		return "", r.err
	}
	return "signed-session", nil
}

func (r *recordingSigner) SignApplicationToken(applicationID string, privateKey []byte, sessionID string) (string, error) {
	r.appID = applicationID
	r.privateKey = privateKey
	r.sessionID = sessionID
	if r.err != nil {
		return "", r.err
	}
	return "signed-application", nil
}

func TestGenerateDelegatesClaims(t *testing.T) {
	t.Parallel()

	rec := &recordingSigner{}
	gen := token.NewGenerator(token.WithSigner(rec))

	tok, err := gen.Generate(legacySession(), token.Options{Role: token.RoleSubscriber, Data: "seat=1"})
	require.NoError(t, err)
	assert.Equal(t, "signed-session", tok)

	require.NotNil(t, rec.claims)
	assert.Equal(t, testAPIKey, rec.claims.APIKey)
	assert.Equal(t, testSecret, rec.claims.APISecret)
	assert.Equal(t, token.RoleSubscriber, rec.claims.Role)
	assert.Equal(t, "seat=1", rec.claims.Data)
	assert.Equal(t, testSessionID, rec.claims.SessionID)
	assert.Zero(t, rec.claims.ExpireTime, "zero expiry passes through as the default marker")
	require.NotNil(t, rec.claims.InitialLayoutClasses, "nil layout list defaults to an empty sequence")
	assert.Empty(t, rec.claims.InitialLayoutClasses)
}

func TestGenerateDelegatesApplicationFlow(t *testing.T) {
	t.Parallel()

	rec := &recordingSigner{}
	gen := token.NewGenerator(token.WithSigner(rec))

	sess := session.NewWithApplication("sid-42", session.ApplicationCredential{
		ApplicationID: "app-42",
		PrivateKey:    []byte("pem"),
	})

	tok, err := gen.Generate(sess, token.Options{Role: token.RoleModerator, Data: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "signed-application", tok)
	assert.Equal(t, "app-42", rec.appID)
	assert.Equal(t, "sid-42", rec.sessionID)
	assert.Equal(t, []byte("pem"), rec.privateKey)
	assert.Nil(t, rec.claims, "application flow never assembles session claims")
}

func TestGenerateSigningFailurePropagates(t *testing.T) {
	t.Parallel()

	cause := errors.New("hsm unavailable")
	gen := token.NewGenerator(token.WithSigner(&recordingSigner{err: cause}))

	tok, err := gen.Generate(legacySession(), token.Options{})
	require.ErrorIs(t, err, token.ErrSigningFailed)
	require.ErrorIs(t, err, cause)
	assert.Empty(t, tok, "no partial token on signing failure")
}
