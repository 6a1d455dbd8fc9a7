package session

// MediaMode controls whether media is routed through the platform's media
// servers or flows peer-to-peer between clients.
type MediaMode string

const (
	// MediaModeRouted sends streams through the platform's media routers.
	MediaModeRouted MediaMode = "routed"
	// MediaModeRelayed attempts direct peer-to-peer connections between
	// clients, falling back to TURN relay when P2P fails.
	MediaModeRelayed MediaMode = "relayed"
)

// ArchiveMode controls how recordings of the session are started.
type ArchiveMode string

const (
	// ArchiveModeManual requires archives to be started explicitly.
	ArchiveModeManual ArchiveMode = "manual"
	// ArchiveModeAlways archives the session automatically.
	ArchiveModeAlways ArchiveMode = "always"
)

// Session identifies a remote video session and the policy it was created
// with. All fields are fixed at construction; accessors return copies of
// value types, so a Session can be shared between goroutines freely.
type Session struct {
	id          string
	credential  Credential
	location    string
	mediaMode   MediaMode
	archiveMode ArchiveMode
}

// New builds a Session bound to a legacy API key/secret credential.
// Defaults: relayed media, manual archiving, no location hint.
func New(id string, cred LegacyCredential, opts ...Option) Session {
	return build(id, cred, opts)
}

// NewWithApplication builds a Session bound to an application id/private key
// credential. Defaults match New.
func NewWithApplication(id string, cred ApplicationCredential, opts ...Option) Session {
	return build(id, cred, opts)
}

func build(id string, cred Credential, opts []Option) Session {
	s := Session{
		id:          id,
		credential:  cred,
		mediaMode:   MediaModeRelayed,
		archiveMode: ArchiveModeManual,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// ID returns the opaque session identifier assigned by the platform.
func (s Session) ID() string { return s.id }

// Credential returns the account credential the session was created with.
func (s Session) Credential() Credential { return s.credential }

// Location returns the IP hint supplied at creation, if any. Informational
// only; it never influences token generation.
func (s Session) Location() string { return s.location }

// MediaMode reports how media is routed for this session.
func (s Session) MediaMode() MediaMode { return s.mediaMode }

// ArchiveMode reports how archives are started for this session.
func (s Session) ArchiveMode() ArchiveMode { return s.archiveMode }
