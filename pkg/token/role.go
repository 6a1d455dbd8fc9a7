package token

// Role is the permission level granted to the token holder, serialized as
// lowercase text in both token formats.
type Role string

const (
	// RoleSubscriber may only subscribe to streams published by others.
	RoleSubscriber Role = "subscriber"
	// RolePublisher may publish streams as well as subscribe. This is the
	// default when no role is specified.
	RolePublisher Role = "publisher"
	// RoleModerator additionally may force-disconnect other participants
	// and control archiving.
	RoleModerator Role = "moderator"
)

// orDefault resolves the zero value to RolePublisher.
func (r Role) orDefault() Role {
	if r == "" {
		return RolePublisher
	}
	return r
}
