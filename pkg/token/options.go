package token

// Options carries the per-call parameters of one token generation. The zero
// value is valid and produces a publisher token with the platform's default
// lifetime and no metadata.
type Options struct {
	// Role is the permission level baked into the token.
	// Defaults to RolePublisher.
	Role Role

	// ExpireTime is the expiry instant as unix seconds. Zero means "use the
	// platform default lifetime": the legacy format omits the expire_time
	// field entirely and the JWT signer applies its own default duration.
	// Non-zero values must fall after the token's creation time and at most
	// 30 days after now.
	ExpireTime int64

	// Data is opaque connection metadata attached to the token and visible
	// to other session participants. At most 1000 characters; empty means
	// no metadata.
	Data string

	// InitialLayoutClassList is the ordered list of layout class names
	// assigned to the client's streams in archive and broadcast layouts.
	// A nil slice omits the field; a non-nil empty slice emits it with an
	// empty value, which clears any previously assigned classes.
	InitialLayoutClassList []string
}
