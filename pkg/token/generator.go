package token

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"math/big"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/videokit/pkg/session"
)

// legacyPrefix marks the legacy token format on the wire.
const legacyPrefix = "T1=="

// Generator mints session tokens. The zero value is not usable; construct
// one with NewGenerator. A Generator is safe for concurrent use as long as
// its clock and nonce source are.
type Generator struct {
	now    func() time.Time
	nonce  func() (int64, error)
	signer Signer
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithClock replaces the wall clock. Used in tests to pin creation time.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithNonceSource replaces the nonce source. The source must be safe for
// concurrent use and should produce unpredictable values.
func WithNonceSource(next func() (int64, error)) GeneratorOption {
	return func(g *Generator) {
		if next != nil {
			g.nonce = next
		}
	}
}

// WithSigner replaces the JWT signer collaborator.
func WithSigner(s Signer) GeneratorOption {
	return func(g *Generator) {
		if s != nil {
			g.signer = s
		}
	}
}

// NewGenerator builds a Generator with the real clock, a crypto/rand nonce
// source and the default JWT signer.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		now:    time.Now,
		nonce:  randomNonce,
		signer: NewSigner(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func randomNonce() (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		return 0, err
	}
	return n.Int64(), nil
}

// GenerateLegacy produces a token in the legacy signed-string format. The
// session must be bound to a LegacyCredential; the newer application
// credential scheme has no legacy representation.
func (g *Generator) GenerateLegacy(sess session.Session, opts Options) (string, error) {
	switch cred := sess.Credential().(type) {
	case session.LegacyCredential:
		return g.legacyToken(cred, sess.ID(), opts)
	case session.ApplicationCredential:
		return "", ErrLegacyCredentialRequired
	default:
		return "", ErrUnsupportedCredential
	}
}

func (g *Generator) legacyToken(cred session.LegacyCredential, sessionID string, opts Options) (string, error) {
	createTime := g.now().Unix()

	// Validate everything up front; a field that fails validation aborts the
	// whole call even when it would have been omitted.
	withExpire, err := validateExpireTime(opts.ExpireTime, createTime, createTime)
	if err != nil {
		return "", err
	}
	withData, err := validateConnectionData(opts.Data)
	if err != nil {
		return "", err
	}

	nonce, err := g.nonce()
	if err != nil {
		return "", errors.Join(ErrNonceSource, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "session_id=%s&create_time=%d&nonce=%d&role=%s",
		sessionID, createTime, nonce, opts.Role.orDefault())
	if opts.InitialLayoutClassList != nil {
		b.WriteString("&initial_layout_class_list=")
		b.WriteString(strings.Join(opts.InitialLayoutClassList, " "))
	}
	if withExpire {
		fmt.Fprintf(&b, "&expire_time=%d", opts.ExpireTime)
	}
	if withData {
		b.WriteString("&connection_data=")
		b.WriteString(url.QueryEscape(opts.Data))
	}
	data := b.String()

	mac := hmac.New(sha1.New, []byte(cred.APISecret))
	mac.Write([]byte(data))
	sig := hex.EncodeToString(mac.Sum(nil))

	inner := fmt.Sprintf("partner_id=%d&sig=%s:%s", cred.APIKey, sig, data)
	return legacyPrefix + base64.StdEncoding.EncodeToString([]byte(inner)), nil
}

// Generate produces a token in the JWT format, branching on the session's
// credential variant. Application credentials yield a token with implicit
// full access; the per-call Options are not consulted for them.
func (g *Generator) Generate(sess session.Session, opts Options) (string, error) {
	switch cred := sess.Credential().(type) {
	case session.ApplicationCredential:
		tok, err := g.signer.SignApplicationToken(cred.ApplicationID, cred.PrivateKey, sess.ID())
		if err != nil {
			return "", errors.Join(ErrSigningFailed, err)
		}
		return tok, nil

	case session.LegacyCredential:
		now := g.now().Unix()
		if _, err := validateExpireTime(opts.ExpireTime, now, now); err != nil {
			return "", err
		}
		if _, err := validateConnectionData(opts.Data); err != nil {
			return "", err
		}
		classes := opts.InitialLayoutClassList
		if classes == nil {
			classes = []string{}
		}
		tok, err := g.signer.SignSessionClaims(Claims{
			APIKey:               cred.APIKey,
			APISecret:            cred.APISecret,
			Role:                 opts.Role.orDefault(),
			Data:                 opts.Data,
			SessionID:            sess.ID(),
			ExpireTime:           opts.ExpireTime,
			InitialLayoutClasses: classes,
		})
		if err != nil {
			return "", errors.Join(ErrSigningFailed, err)
		}
		return tok, nil

	default:
		return "", ErrUnsupportedCredential
	}
}
