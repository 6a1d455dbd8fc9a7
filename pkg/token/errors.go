package token

import "errors"

var (
	// ErrInvalidExpireTime indicates an expiry before the token's creation
	// time or beyond the 30-day ceiling.
	ErrInvalidExpireTime = errors.New("token: expire time out of range")

	// ErrConnectionDataTooLong indicates connection data over 1000 characters.
	ErrConnectionDataTooLong = errors.New("token: connection data exceeds 1000 characters")

	// ErrLegacyCredentialRequired indicates the legacy token format was
	// requested for a session bound to an application credential.
	ErrLegacyCredentialRequired = errors.New("token: legacy format requires an API key/secret credential")

	// ErrUnsupportedCredential indicates a credential variant the generator
	// does not recognise.
	ErrUnsupportedCredential = errors.New("token: unsupported credential type")

	// ErrSigningFailed indicates the JWT signer rejected the request; the
	// underlying cause is joined and available via errors.Is/As.
	ErrSigningFailed = errors.New("token: signing failed")

	// ErrNonceSource indicates the nonce source failed to produce a value.
	ErrNonceSource = errors.New("token: nonce source failed")
)
