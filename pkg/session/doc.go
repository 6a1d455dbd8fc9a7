// Package session models a video-communication session hosted on the remote
// platform: an opaque session identifier bound to exactly one account
// credential plus routing and archiving policy.
//
// A Session is immutable after construction and safe to share between
// goroutines. The two credential schemes the platform supports — the legacy
// API key/secret pair and the newer application id/private key pair — are
// modelled as a sealed Credential interface with exactly two implementations,
// so a session can never carry both or neither.
//
// # Usage
//
//	import "github.com/dmitrymomot/videokit/pkg/session"
//
//	sess := session.New("2_MX40NzU...", session.LegacyCredential{
//	    APIKey:    475629,
//	    APISecret: "super-secret",
//	}, session.WithMediaMode(session.MediaModeRouted))
//
//	// or, with the newer credential scheme:
//	sess = session.NewWithApplication("2_MX40NzU...", session.ApplicationCredential{
//	    ApplicationID: "9f2b...",
//	    PrivateKey:    pemBytes,
//	})
//
// The package performs no credential validation beyond presence; a malformed
// secret or private key surfaces as a signing error in the token package.
package session
