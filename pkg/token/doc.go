// Package token issues the signed credentials a client presents to join a
// video session. Two wire formats are supported: the legacy "T1==" signed
// string and the JWT format, selected per call on a shared Generator.
//
// Token format selection interacts with the session's credential scheme:
//
//   - GenerateLegacy produces the legacy format and requires a
//     session.LegacyCredential; application credentials are rejected with
//     ErrLegacyCredentialRequired.
//   - Generate produces a JWT. With a legacy credential it signs a claims
//     set (role, expiry, connection data, layout classes) with HS256; with
//     an application credential it delegates to the RS256 application flow,
//     which grants implicit full access and carries no per-call options.
//
// Legacy token format:
//
//	T1==base64(partner_id=<apiKey>&sig=<hex hmac-sha1>:<data string>)
//
// where the data string is an ampersand-joined field list with fixed order:
// session_id, create_time, nonce, role, then the optional
// initial_layout_class_list, expire_time and connection_data fields.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/videokit/pkg/session"
//	    "github.com/dmitrymomot/videokit/pkg/token"
//	)
//
//	sess := session.New("1_MX4...", session.LegacyCredential{
//	    APIKey:    475629,
//	    APISecret: "super-secret",
//	})
//
//	gen := token.NewGenerator()
//	tok, err := gen.GenerateLegacy(sess, token.Options{
//	    Role:       token.RoleModerator,
//	    ExpireTime: time.Now().Add(2 * time.Hour).Unix(),
//	})
//
// Token generation is pure with respect to process state: it reads the
// immutable Session and the per-call Options, so a single Generator may be
// used from many goroutines. The injected clock and nonce source must
// themselves be safe for concurrent use; the defaults are.
//
// Out-of-range expiry and oversized connection data fail with
// ErrInvalidExpireTime and ErrConnectionDataTooLong before anything is
// signed. Signer failures surface wrapped in ErrSigningFailed. A call either
// returns a complete token or an error, never both.
package token
