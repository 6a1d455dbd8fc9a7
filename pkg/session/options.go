package session

// Option is a functional option applied during session construction.
type Option func(*Session)

// WithLocation records an IP address hint for the session. The platform may
// use it to pick a nearby media server; the SDK treats it as informational.
func WithLocation(ip string) Option {
	return func(s *Session) {
		s.location = ip
	}
}

// WithMediaMode overrides the default relayed media mode.
func WithMediaMode(mode MediaMode) Option {
	return func(s *Session) {
		s.mediaMode = mode
	}
}

// WithArchiveMode overrides the default manual archive mode.
func WithArchiveMode(mode ArchiveMode) Option {
	return func(s *Session) {
		s.archiveMode = mode
	}
}
