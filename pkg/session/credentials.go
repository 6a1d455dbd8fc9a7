package session

// Credential identifies the platform account a session belongs to. It is a
// sealed interface: LegacyCredential and ApplicationCredential are the only
// implementations, and every call site that selects a signing strategy can
// switch over the two exhaustively.
type Credential interface {
	credential()
}

// LegacyCredential is the API key/secret pair issued for legacy projects.
// The secret keys the HMAC signature of legacy tokens and the HS256 signature
// of session JWTs.
type LegacyCredential struct {
	APIKey    int
	APISecret string
}

func (LegacyCredential) credential() {}

// ApplicationCredential is the newer application id plus PEM-encoded RSA
// private key pair. Tokens minted with it carry implicit full access and are
// always JWTs.
type ApplicationCredential struct {
	ApplicationID string
	PrivateKey    []byte
}

func (ApplicationCredential) credential() {}
